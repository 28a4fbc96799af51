// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballot-admin/metrics"
	"github.com/danielhkuo/ballot-admin/middleware"
	"github.com/danielhkuo/ballot-admin/models"
	"github.com/danielhkuo/ballot-admin/store"
)

type CandidateHandler struct {
	candidates *store.CandidateStore
	metrics    *metrics.Recorder
}

func NewCandidateHandler(candidates *store.CandidateStore, m *metrics.Recorder) *CandidateHandler {
	return &CandidateHandler{candidates: candidates, metrics: m}
}

// List handles GET /candidates
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.candidates.List())
}

// Get handles GET /candidates/{id}
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.metrics, metrics.Candidates, err)
		return
	}

	candidate, err := h.candidates.Get(id)
	if err != nil {
		writeError(w, h.metrics, metrics.Candidates, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, candidate)
}

// Create handles POST /candidates
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.save(w, r, store.CreateIntent())
}

// Update handles PUT /candidates/{id}
func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.metrics, metrics.Candidates, err)
		return
	}
	h.save(w, r, store.UpdateIntent(id))
}

func (h *CandidateHandler) save(w http.ResponseWriter, r *http.Request, intent store.Intent) {
	var form models.CandidateForm
	if err := middleware.ParseJSONBody(r, &form); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidate, created, err := h.candidates.Save(r.Context(), intent, form)
	if err != nil {
		writeError(w, h.metrics, metrics.Candidates, err)
		return
	}
	h.metrics.Mutation(metrics.Candidates, "save", h.candidates.Len())

	slog.Info("candidate saved", "candidate_id", candidate.ID, "intent", intent.String(), "created", created)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	middleware.JSONResponse(w, status, models.SaveCandidateResponse{Candidate: candidate, Created: created})
}

// ToggleStatus handles POST /candidates/{id}/toggle-status
func (h *CandidateHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.metrics, metrics.Candidates, err)
		return
	}

	candidate, err := h.candidates.ToggleStatus(r.Context(), id)
	if err != nil {
		writeError(w, h.metrics, metrics.Candidates, err)
		return
	}
	h.metrics.Mutation(metrics.Candidates, "toggle_status", h.candidates.Len())

	slog.Info("candidate status toggled", "candidate_id", id, "status", candidate.Status)

	middleware.JSONResponse(w, http.StatusOK, candidate)
}
