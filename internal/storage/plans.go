package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/claude/planfit/internal/models"
)

// ErrNotFound is returned when a plan snapshot does not exist.
var ErrNotFound = errors.New("plan not found")

// defaultListLimit bounds ListPlans when no limit is given.
const defaultListLimit = 50

// PlanSnapshot is a stored generation result: the profile that requested it,
// the resulting plan, and which path produced it.
type PlanSnapshot struct {
	ID        uuid.UUID          `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Source    string             `json:"source"`
	Profile   models.UserProfile `json:"profile"`
	Plan      models.WorkoutPlan `json:"plan"`
}

// PlanSummary is the listing view of a snapshot.
type PlanSummary struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Source    string    `json:"source"`
	PlanName  string    `json:"plan_name"`
	Days      int       `json:"days"`
}

// SavePlan inserts a snapshot. The caller provides ID and CreatedAt.
func (db *DB) SavePlan(ctx context.Context, snap PlanSnapshot) error {
	profileJSON, err := json.Marshal(snap.Profile)
	if err != nil {
		return fmt.Errorf("storage: encode profile: %w", err)
	}
	planJSON, err := json.Marshal(snap.Plan)
	if err != nil {
		return fmt.Errorf("storage: encode plan: %w", err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO plans (id, created_at, source, profile, plan) VALUES (?, ?, ?, ?, ?)`,
		snap.ID.String(), snap.CreatedAt.UTC().Format(time.RFC3339Nano), snap.Source, profileJSON, planJSON,
	)
	if err != nil {
		return fmt.Errorf("storage: insert plan: %w", err)
	}
	return nil
}

// GetPlan returns the snapshot with the given ID, or ErrNotFound.
func (db *DB) GetPlan(ctx context.Context, id uuid.UUID) (*PlanSnapshot, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, created_at, source, profile, plan FROM plans WHERE id = ?`, id.String())
	return scanSnapshot(row)
}

// LatestPlan returns the most recently stored snapshot, or ErrNotFound when
// the history is empty.
func (db *DB) LatestPlan(ctx context.Context) (*PlanSnapshot, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, created_at, source, profile, plan FROM plans ORDER BY created_at DESC LIMIT 1`)
	return scanSnapshot(row)
}

// ListPlans returns snapshot summaries, newest first. limit <= 0 uses the
// default.
func (db *DB) ListPlans(ctx context.Context, limit int) ([]PlanSummary, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, created_at, source, plan FROM plans ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: list plans: %w", err)
	}
	defer rows.Close()

	summaries := []PlanSummary{}
	for rows.Next() {
		var (
			idStr, createdStr, source string
			planJSON                  []byte
		)
		if err := rows.Scan(&idStr, &createdStr, &source, &planJSON); err != nil {
			return nil, fmt.Errorf("storage: scan plan row: %w", err)
		}

		summary, err := buildSummary(idStr, createdStr, source, planJSON)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: list plans: %w", err)
	}
	return summaries, nil
}

// DeletePlan removes the snapshot with the given ID. Returns ErrNotFound if
// no row was deleted.
func (db *DB) DeletePlan(ctx context.Context, id uuid.UUID) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("storage: delete plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: delete plan: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSnapshot(row *sql.Row) (*PlanSnapshot, error) {
	var (
		idStr, createdStr, source string
		profileJSON, planJSON     []byte
	)
	err := row.Scan(&idStr, &createdStr, &source, &profileJSON, &planJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: scan plan: %w", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("storage: parse plan id %q: %w", idStr, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return nil, fmt.Errorf("storage: parse created_at %q: %w", createdStr, err)
	}

	snap := &PlanSnapshot{ID: id, CreatedAt: createdAt, Source: source}
	if err := json.Unmarshal(profileJSON, &snap.Profile); err != nil {
		return nil, fmt.Errorf("storage: decode profile: %w", err)
	}
	if err := json.Unmarshal(planJSON, &snap.Plan); err != nil {
		return nil, fmt.Errorf("storage: decode plan: %w", err)
	}
	return snap, nil
}

func buildSummary(idStr, createdStr, source string, planJSON []byte) (PlanSummary, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return PlanSummary{}, fmt.Errorf("storage: parse plan id %q: %w", idStr, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, createdStr)
	if err != nil {
		return PlanSummary{}, fmt.Errorf("storage: parse created_at %q: %w", createdStr, err)
	}

	var plan models.WorkoutPlan
	if err := json.Unmarshal(planJSON, &plan); err != nil {
		return PlanSummary{}, fmt.Errorf("storage: decode plan: %w", err)
	}

	return PlanSummary{
		ID:        id,
		CreatedAt: createdAt,
		Source:    source,
		PlanName:  plan.PlanName,
		Days:      len(plan.WeeklySchedule),
	}, nil
}
