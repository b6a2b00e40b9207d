package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/claude/planfit/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planfit.db")

	if err := RunMigrations(path, "../../migrations"); err != nil {
		t.Fatalf("migrations: %v", err)
	}

	db, err := New(context.Background(), path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testSnapshot(created time.Time) PlanSnapshot {
	return PlanSnapshot{
		ID:        uuid.New(),
		CreatedAt: created,
		Source:    "fallback",
		Profile:   models.UserProfile{Goal: "general_fitness", Experience: "beginner", DaysPerWeek: 3},
		Plan: models.WorkoutPlan{
			PlanName: "Custom Beginner General Fitness Plan",
			Overview: "A 3-day per week workout plan focused on general fitness",
			WeeklySchedule: map[string]models.DaySchedule{
				"day_1": {Focus: "Full Body", Exercises: []models.PlannedExercise{
					{Name: "Push-ups", Sets: 2, Reps: "8-12", Rest: "90 seconds", Notes: "Focus on proper form"},
				}},
				"day_2": {Focus: "Full Body"},
				"day_3": {Focus: "Full Body"},
			},
			ProgressionTips: []string{"a"},
			SuccessTips:     []string{"b"},
		},
	}
}

// TestPlanRoundTrip verifies a saved snapshot loads back with all fields
// intact.
func TestPlanRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	snap := testSnapshot(time.Now().UTC().Truncate(time.Millisecond))
	if err := db.SavePlan(ctx, snap); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	got, err := db.GetPlan(ctx, snap.ID)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if got.ID != snap.ID {
		t.Errorf("id = %s, want %s", got.ID, snap.ID)
	}
	if !got.CreatedAt.Equal(snap.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, snap.CreatedAt)
	}
	if got.Source != "fallback" {
		t.Errorf("source = %q, want fallback", got.Source)
	}
	if got.Profile.Goal != "general_fitness" {
		t.Errorf("profile.goal = %q", got.Profile.Goal)
	}
	if got.Plan.PlanName != snap.Plan.PlanName {
		t.Errorf("plan_name = %q, want %q", got.Plan.PlanName, snap.Plan.PlanName)
	}
	if len(got.Plan.WeeklySchedule) != 3 {
		t.Errorf("schedule has %d entries, want 3", len(got.Plan.WeeklySchedule))
	}
	if got.Plan.WeeklySchedule["day_1"].Exercises[0].Rest != "90 seconds" {
		t.Errorf("day_1 rest = %q", got.Plan.WeeklySchedule["day_1"].Exercises[0].Rest)
	}
}

// TestGetPlanNotFound verifies a missing ID returns ErrNotFound.
func TestGetPlanNotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetPlan(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// TestListPlansOrder verifies summaries come back newest first with the
// limit applied.
func TestListPlansOrder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	base := time.Now().UTC()
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		snap := testSnapshot(base.Add(time.Duration(i) * time.Minute))
		ids = append(ids, snap.ID)
		if err := db.SavePlan(ctx, snap); err != nil {
			t.Fatalf("SavePlan %d: %v", i, err)
		}
	}

	summaries, err := db.ListPlans(ctx, 2)
	if err != nil {
		t.Fatalf("ListPlans: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("len = %d, want 2", len(summaries))
	}
	if summaries[0].ID != ids[2] || summaries[1].ID != ids[1] {
		t.Errorf("order = [%s, %s], want newest first", summaries[0].ID, summaries[1].ID)
	}
	if summaries[0].Days != 3 {
		t.Errorf("days = %d, want 3", summaries[0].Days)
	}
	if summaries[0].PlanName == "" {
		t.Error("summary missing plan name")
	}
}

// TestListPlansEmpty verifies an empty history lists as an empty slice.
func TestListPlansEmpty(t *testing.T) {
	db := testDB(t)

	summaries, err := db.ListPlans(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListPlans: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("len = %d, want 0", len(summaries))
	}
}

// TestLatestPlan verifies the newest snapshot is returned, and ErrNotFound
// on an empty history.
func TestLatestPlan(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	if _, err := db.LatestPlan(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty history err = %v, want ErrNotFound", err)
	}

	base := time.Now().UTC()
	older := testSnapshot(base)
	newer := testSnapshot(base.Add(time.Minute))
	for _, snap := range []PlanSnapshot{older, newer} {
		if err := db.SavePlan(ctx, snap); err != nil {
			t.Fatalf("SavePlan: %v", err)
		}
	}

	latest, err := db.LatestPlan(ctx)
	if err != nil {
		t.Fatalf("LatestPlan: %v", err)
	}
	if latest.ID != newer.ID {
		t.Errorf("latest = %s, want %s", latest.ID, newer.ID)
	}
}

// TestDeletePlan verifies deletion removes the row and a second delete
// reports ErrNotFound.
func TestDeletePlan(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	snap := testSnapshot(time.Now().UTC())
	if err := db.SavePlan(ctx, snap); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	if err := db.DeletePlan(ctx, snap.ID); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}
	if _, err := db.GetPlan(ctx, snap.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete err = %v, want ErrNotFound", err)
	}
	if err := db.DeletePlan(ctx, snap.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}
