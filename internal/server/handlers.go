package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/claude/planfit/internal/models"
	"github.com/claude/planfit/internal/storage"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	muscle := r.URL.Query().Get("muscle")
	records := s.catalog.Fetch(r.Context(), muscle)
	writeJSON(w, http.StatusOK, records)
}

// handleGeneratePlan runs the full pipeline: fetch exercises per focus area,
// merge, generate (AI or fallback), persist a snapshot, return it. A failed
// persist is logged but does not fail the request; plan generation itself
// never fails.
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	profile.Normalize()

	exercises := s.catalog.FetchFocusAreas(r.Context(), profile.FocusAreas)
	plan, source := s.gen.Generate(r.Context(), profile, exercises)

	snap := storage.PlanSnapshot{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Source:    string(source),
		Profile:   profile,
		Plan:      plan,
	}
	if err := s.db.SavePlan(r.Context(), snap); err != nil {
		s.log.Error("failed to persist plan snapshot", "id", snap.ID, "error", err)
	}

	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	summaries, err := s.db.ListPlans(r.Context(), limit)
	if err != nil {
		s.log.Error("list plans", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.lookupPlan(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleExportPlan serves a snapshot's plan as an indented JSON download
// named after the current date, e.g. workout_plan_20260824.json.
func (s *Server) handleExportPlan(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.lookupPlan(w, r)
	if !ok {
		return
	}

	data, err := json.MarshalIndent(snap.Plan, "", "  ")
	if err != nil {
		s.log.Error("export plan", "id", snap.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	filename := models.ExportFilename(time.Now())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid plan ID"})
		return
	}

	if err := s.db.DeletePlan(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
			return
		}
		s.log.Error("delete plan", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// lookupPlan parses the {id} URL param and loads the snapshot, writing the
// error response itself when either step fails.
func (s *Server) lookupPlan(w http.ResponseWriter, r *http.Request) (*storage.PlanSnapshot, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid plan ID"})
		return nil, false
	}

	snap, err := s.db.GetPlan(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
			return nil, false
		}
		s.log.Error("get plan", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return nil, false
	}
	return snap, true
}
