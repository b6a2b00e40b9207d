package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/planfit/internal/catalog"
	"github.com/claude/planfit/internal/generator"
	"github.com/claude/planfit/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	catalog *catalog.Client
	gen     *generator.Generator
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a Server with all routes configured. An empty apiKey leaves
// the mutating routes unauthenticated.
func New(db *storage.DB, cat *catalog.Client, gen *generator.Generator, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		catalog: cat,
		gen:     gen,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/healthz", s.handleHealthz)
		r.Get("/exercises", s.handleExercises)
		r.Get("/plans", s.handleListPlans)
		r.Get("/plans/{id}", s.handleGetPlan)
		r.Get("/plans/{id}/export", s.handleExportPlan)

		// Mutating routes (API key required when configured)
		r.Group(func(r chi.Router) {
			if s.apiKey != "" {
				r.Use(APIKeyAuth(s.apiKey))
			}
			r.Post("/plans", s.handleGeneratePlan)
			r.Delete("/plans/{id}", s.handleDeletePlan)
		})
	})
}
