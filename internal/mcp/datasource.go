package mcp

import (
	"context"

	"github.com/google/uuid"

	"github.com/claude/planfit/internal/models"
	"github.com/claude/planfit/internal/storage"
)

// DataSource abstracts the plan pipeline for MCP tools. LocalSource (catalog
// + generator + sqlite in-process) and HTTPClient (remote via REST API) both
// satisfy it.
type DataSource interface {
	ListExercises(ctx context.Context, muscle string) ([]models.ExerciseRecord, error)
	GeneratePlan(ctx context.Context, profile models.UserProfile) (*storage.PlanSnapshot, error)
	ListPlans(ctx context.Context, limit int) ([]storage.PlanSummary, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*storage.PlanSnapshot, error)
	LatestPlan(ctx context.Context) (*storage.PlanSnapshot, error)
}
