package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/claude/planfit/internal/catalog"
	"github.com/claude/planfit/internal/generator"
	"github.com/claude/planfit/internal/models"
	"github.com/claude/planfit/internal/storage"
)

// LocalSource runs the plan pipeline in-process against the local database.
type LocalSource struct {
	catalog *catalog.Client
	gen     *generator.Generator
	db      *storage.DB
	log     *slog.Logger
}

// Compile-time check: LocalSource satisfies DataSource.
var _ DataSource = (*LocalSource)(nil)

// NewLocalSource creates a LocalSource.
func NewLocalSource(cat *catalog.Client, gen *generator.Generator, db *storage.DB, log *slog.Logger) *LocalSource {
	return &LocalSource{catalog: cat, gen: gen, db: db, log: log}
}

func (s *LocalSource) ListExercises(ctx context.Context, muscle string) ([]models.ExerciseRecord, error) {
	return s.catalog.Fetch(ctx, muscle), nil
}

func (s *LocalSource) GeneratePlan(ctx context.Context, profile models.UserProfile) (*storage.PlanSnapshot, error) {
	profile.Normalize()

	exercises := s.catalog.FetchFocusAreas(ctx, profile.FocusAreas)
	plan, source := s.gen.Generate(ctx, profile, exercises)

	snap := &storage.PlanSnapshot{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Source:    string(source),
		Profile:   profile,
		Plan:      plan,
	}
	if err := s.db.SavePlan(ctx, *snap); err != nil {
		s.log.Error("failed to persist plan snapshot", "id", snap.ID, "error", err)
	}
	return snap, nil
}

func (s *LocalSource) ListPlans(ctx context.Context, limit int) ([]storage.PlanSummary, error) {
	return s.db.ListPlans(ctx, limit)
}

func (s *LocalSource) GetPlan(ctx context.Context, id uuid.UUID) (*storage.PlanSnapshot, error) {
	return s.db.GetPlan(ctx, id)
}

func (s *LocalSource) LatestPlan(ctx context.Context) (*storage.PlanSnapshot, error) {
	return s.db.LatestPlan(ctx)
}
