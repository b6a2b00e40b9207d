package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/planfit/internal/models"
	"github.com/claude/planfit/internal/storage"
)

// splitList parses a comma-separated tool argument into a cleaned slice.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// --- Tool definitions ---

var toolGeneratePlan = mcp.NewTool("generate_workout_plan",
	mcp.WithDescription("Generate a personalized weekly workout plan from a fitness profile. Returns the stored plan snapshot including its ID and whether the AI or the deterministic fallback produced it."),
	mcp.WithString("goal", mcp.Description("Primary goal (e.g. general_fitness, weight_loss, muscle_gain, strength, endurance, flexibility). Defaults to general_fitness.")),
	mcp.WithString("experience", mcp.Description("Experience level. Defaults to beginner."), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithNumber("days_per_week", mcp.Description("Workout days per week, 2-7. Defaults to 3.")),
	mcp.WithNumber("duration_minutes", mcp.Description("Session duration in minutes, 15-120. Defaults to 45.")),
	mcp.WithString("equipment", mcp.Description("Comma-separated available equipment (e.g. 'body_only, dumbbells'). Defaults to body_only.")),
	mcp.WithString("focus_areas", mcp.Description("Comma-separated focus areas (e.g. 'chest, legs, core'). Defaults to full_body.")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List candidate exercises, optionally filtered by muscle group. Served from the remote catalog when configured, otherwise from the built-in table."),
	mcp.WithString("muscle", mcp.Description("Muscle group filter (e.g. chest, lats, quadriceps). Empty returns everything.")),
)

var toolListPlans = mcp.NewTool("list_plans",
	mcp.WithDescription("List previously generated plan snapshots, newest first."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of snapshots to return. Defaults to 50.")),
)

var toolGetPlan = mcp.NewTool("get_plan",
	mcp.WithDescription("Retrieve a stored plan snapshot by ID, including the profile that requested it."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Plan snapshot UUID")),
)

// --- Tool handlers ---

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile := models.UserProfile{
		Goal:            req.GetString("goal", ""),
		Experience:      req.GetString("experience", ""),
		DaysPerWeek:     req.GetInt("days_per_week", 0),
		DurationMinutes: req.GetInt("duration_minutes", 0),
		Equipment:       splitList(req.GetString("equipment", "")),
		FocusAreas:      splitList(req.GetString("focus_areas", "")),
	}

	snap, err := h.ds.GeneratePlan(ctx, profile)
	if err != nil {
		h.log.Error("mcp generate_workout_plan", "error", err)
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(snap)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	muscle := req.GetString("muscle", "")

	records, err := h.ds.ListExercises(ctx, muscle)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPlans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 0)

	summaries, err := h.ds.ListPlans(ctx, limit)
	if err != nil {
		h.log.Error("mcp list_plans", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summaries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	idStr, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return mcp.NewToolResultError("invalid plan ID: " + idStr), nil
	}

	snap, err := h.ds.GetPlan(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError("plan not found: " + idStr), nil
		}
		h.log.Error("mcp get_plan", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(snap)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
