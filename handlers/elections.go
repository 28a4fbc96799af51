// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ballot-admin/metrics"
	"github.com/danielhkuo/ballot-admin/middleware"
	"github.com/danielhkuo/ballot-admin/models"
	"github.com/danielhkuo/ballot-admin/store"
)

type ElectionHandler struct {
	elections *store.ElectionStore
	metrics   *metrics.Recorder
}

func NewElectionHandler(elections *store.ElectionStore, m *metrics.Recorder) *ElectionHandler {
	return &ElectionHandler{elections: elections, metrics: m}
}

// List handles GET /elections
func (h *ElectionHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.elections.List())
}

// Get handles GET /elections/{id}
func (h *ElectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.metrics, metrics.Elections, err)
		return
	}

	election, err := h.elections.Get(id)
	if err != nil {
		writeError(w, h.metrics, metrics.Elections, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, election)
}

// Create handles POST /elections
func (h *ElectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form models.ElectionForm
	if err := middleware.ParseJSONBody(r, &form); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	election, err := h.elections.Create(r.Context(), form)
	if err != nil {
		writeError(w, h.metrics, metrics.Elections, err)
		return
	}
	h.metrics.Mutation(metrics.Elections, "create", h.elections.Len())

	slog.Info("election created", "election_id", election.ID, "name", election.Name)

	middleware.JSONResponse(w, http.StatusCreated, election)
}

// SetStatus handles PUT /elections/{id}/status
func (h *ElectionHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.metrics, metrics.Elections, err)
		return
	}

	var req models.SetElectionStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	election, err := h.elections.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, h.metrics, metrics.Elections, err)
		return
	}
	h.metrics.Mutation(metrics.Elections, "set_status", h.elections.Len())

	slog.Info("election status changed", "election_id", id, "status", election.Status)

	middleware.JSONResponse(w, http.StatusOK, election)
}

// Report handles GET /elections/{id}/report
func (h *ElectionHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.metrics, metrics.Elections, err)
		return
	}

	election, err := h.elections.Get(id)
	if err != nil {
		writeError(w, h.metrics, metrics.Elections, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="election-%d-report.csv"`, id))
	w.WriteHeader(http.StatusOK)

	if err := writeReport(csv.NewWriter(w), election); err != nil {
		slog.Error("failed to write report", "election_id", id, "error", err)
	}
}

func reportPath(id int) string {
	return "/elections/" + strconv.Itoa(id) + "/report"
}

func writeReport(cw *csv.Writer, e models.Election) error {
	if err := cw.Write([]string{"name", "status", "start_date", "end_date", "total_votes"}); err != nil {
		return err
	}
	if err := cw.Write([]string{e.Name, string(e.Status), e.StartDate, e.EndDate, strconv.Itoa(e.TotalVotes)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
