package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("Planfit", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Planfit workout plan builder. Generate personalized weekly workout plans from a fitness profile, browse the exercise catalog, and retrieve previously generated plans. Plans come from an LLM when configured, with a deterministic fallback otherwise."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGeneratePlan, Handler: h.generatePlan},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolListPlans, Handler: h.listPlans},
		server.ServerTool{Tool: toolGetPlan, Handler: h.getPlan},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resLatestPlan, Handler: h.latestPlan},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"planfit://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All available exercises with muscle group, equipment, difficulty, and instructions"),
	mcp.WithMIMEType("application/json"),
)

var resLatestPlan = mcp.NewResource(
	"planfit://latest_plan",
	"Latest Plan",
	mcp.WithResourceDescription("The most recently generated workout plan snapshot"),
	mcp.WithMIMEType("application/json"),
)
