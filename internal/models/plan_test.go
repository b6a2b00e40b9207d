package models

import (
	"testing"
	"time"
)

// TestDayKey verifies schedule key formatting.
func TestDayKey(t *testing.T) {
	if got := DayKey(1); got != "day_1" {
		t.Errorf("DayKey(1) = %q, want %q", got, "day_1")
	}
	if got := DayKey(7); got != "day_7" {
		t.Errorf("DayKey(7) = %q, want %q", got, "day_7")
	}
}

// TestExportFilename verifies the download filename embeds the date.
func TestExportFilename(t *testing.T) {
	ts := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)
	if got := ExportFilename(ts); got != "workout_plan_20260824.json" {
		t.Errorf("ExportFilename = %q, want %q", got, "workout_plan_20260824.json")
	}
}

// TestValidateAccepts verifies a well-formed plan passes shape validation.
func TestValidateAccepts(t *testing.T) {
	plan := WorkoutPlan{
		PlanName: "Test Plan",
		WeeklySchedule: map[string]DaySchedule{
			"day_1": {
				Focus: "Full Body",
				Exercises: []PlannedExercise{
					{Name: "Push-ups", Sets: 2, Reps: "8-12", Rest: "90 seconds"},
				},
			},
		},
	}
	if err := plan.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// TestValidateRejects verifies malformed plans are rejected: missing name,
// empty schedule, nameless exercises, negative sets, and days with neither
// focus nor exercises.
func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		plan WorkoutPlan
	}{
		{"missing plan_name", WorkoutPlan{
			WeeklySchedule: map[string]DaySchedule{"day_1": {Focus: "Full Body"}},
		}},
		{"empty schedule", WorkoutPlan{PlanName: "X"}},
		{"empty day", WorkoutPlan{
			PlanName:       "X",
			WeeklySchedule: map[string]DaySchedule{"day_1": {}},
		}},
		{"nameless exercise", WorkoutPlan{
			PlanName: "X",
			WeeklySchedule: map[string]DaySchedule{
				"day_1": {Focus: "Full Body", Exercises: []PlannedExercise{{Sets: 3}}},
			},
		}},
		{"negative sets", WorkoutPlan{
			PlanName: "X",
			WeeklySchedule: map[string]DaySchedule{
				"day_1": {Focus: "Full Body", Exercises: []PlannedExercise{{Name: "Squats", Sets: -1}}},
			},
		}},
	}

	for _, tc := range cases {
		if err := tc.plan.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tc.name)
		}
	}
}

// TestValidateAcceptsFocusOnlyDay verifies a rest day with a focus but no
// exercises is valid.
func TestValidateAcceptsFocusOnlyDay(t *testing.T) {
	plan := WorkoutPlan{
		PlanName: "X",
		WeeklySchedule: map[string]DaySchedule{
			"day_1": {Focus: "Active Recovery"},
		},
	}
	if err := plan.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
