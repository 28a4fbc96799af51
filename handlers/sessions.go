// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballot-admin/metrics"
	"github.com/danielhkuo/ballot-admin/middleware"
	"github.com/danielhkuo/ballot-admin/models"
	"github.com/danielhkuo/ballot-admin/session"
	"github.com/danielhkuo/ballot-admin/store"
	"github.com/danielhkuo/ballot-admin/ui"
)

// Row menu actions
const (
	ActionPause  = "pause"
	ActionEnd    = "end"
	ActionReport = "report"
)

type RowActionResponse struct {
	Session   session.Session  `json:"session"`
	Election  *models.Election `json:"election,omitempty"`
	ReportURL string           `json:"report_url,omitempty"`
}

type ModalResponse struct {
	Session   session.Session   `json:"session"`
	Candidate *models.Candidate `json:"candidate,omitempty"`
}

type SaveModalResponse struct {
	Session   session.Session   `json:"session"`
	Election  *models.Election  `json:"election,omitempty"`
	Candidate *models.Candidate `json:"candidate,omitempty"`
	Created   bool              `json:"created"`
}

type ConfirmDeleteResponse struct {
	Session session.Session  `json:"session"`
	Deleted models.Candidate `json:"deleted"`
}

// SessionHandler drives the per-client selection state machine. Every
// transition runs inside Registry.Update, so a failed store call leaves the
// session exactly as it was.
type SessionHandler struct {
	sessions   *session.Registry
	elections  *store.ElectionStore
	candidates *store.CandidateStore
	metrics    *metrics.Recorder
}

func NewSessionHandler(sessions *session.Registry, elections *store.ElectionStore, candidates *store.CandidateStore, m *metrics.Recorder) *SessionHandler {
	return &SessionHandler{sessions: sessions, elections: elections, candidates: candidates, metrics: m}
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	h.metrics.Sessions(h.sessions.Len())

	slog.Debug("session created", "session_id", s.ID)

	middleware.JSONResponse(w, http.StatusCreated, s)
}

// Get handles GET /sessions/{sid}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(r.PathValue("sid"))
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s)
}

// Delete handles DELETE /sessions/{sid}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.PathValue("sid")); err != nil {
		writeError(w, h.metrics, "", err)
		return
	}
	h.metrics.Sessions(h.sessions.Len())
	w.WriteHeader(http.StatusNoContent)
}

// ToggleMenu handles POST /sessions/{sid}/rows/{id}/menu
func (h *SessionHandler) ToggleMenu(w http.ResponseWriter, r *http.Request) {
	row, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}
	h.transition(w, r, func(s *session.Session) error {
		s.UI = s.UI.ToggleRowMenu(row)
		return nil
	})
}

// BackgroundClick handles POST /sessions/{sid}/background-click
func (h *SessionHandler) BackgroundClick(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(s *session.Session) error {
		s.UI = s.UI.BackgroundClick()
		return nil
	})
}

// RowAction handles POST /sessions/{sid}/rows/{id}/actions/{action}.
// The row's menu must be open; the action closes it.
func (h *SessionHandler) RowAction(w http.ResponseWriter, r *http.Request) {
	row, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.metrics, metrics.Elections, err)
		return
	}

	var status models.ElectionStatus
	action := r.PathValue("action")
	switch action {
	case ActionPause:
		status = models.ElectionDraft
	case ActionEnd:
		status = models.ElectionEnded
	case ActionReport:
	default:
		writeError(w, h.metrics, metrics.Elections, errUnknownAction)
		return
	}

	var election models.Election
	s, err := h.sessions.Update(r.PathValue("sid"), func(s *session.Session) error {
		next, err := s.UI.MenuAction(row)
		if err != nil {
			return err
		}
		if status != "" {
			election, err = h.elections.SetStatus(r.Context(), row, status)
		} else {
			election, err = h.elections.Get(row)
		}
		if err != nil {
			return err
		}
		s.UI = next
		return nil
	})
	if err != nil {
		writeError(w, h.metrics, metrics.Elections, err)
		return
	}

	resp := RowActionResponse{Session: s, Election: &election}
	if status != "" {
		h.metrics.Mutation(metrics.Elections, "set_status", h.elections.Len())
		slog.Info("election status changed", "election_id", row, "status", status, "session_id", s.ID)
	} else {
		resp.ReportURL = reportPath(row)
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// OpenModal handles POST /sessions/{sid}/modals
func (h *SessionHandler) OpenModal(w http.ResponseWriter, r *http.Request) {
	var req models.OpenModalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	kind, err := ui.ParseModalKind(req.Kind)
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}

	var payload int
	var prefill *models.Candidate
	if kind == ui.ModalCandidateEdit && req.CandidateID > 0 {
		c, err := h.candidates.Get(req.CandidateID)
		if err != nil {
			writeError(w, h.metrics, metrics.Candidates, err)
			return
		}
		payload, prefill = c.ID, &c
	}

	s, err := h.sessions.Update(r.PathValue("sid"), func(s *session.Session) error {
		s.UI = s.UI.OpenModal(kind, payload)
		return nil
	})
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, ModalResponse{Session: s, Candidate: prefill})
}

// SaveModal handles POST /sessions/{sid}/modals/save. The body is the form of
// the open modal. Validation failures keep the modal open.
func (h *SessionHandler) SaveModal(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var resp SaveModalResponse
	collection := ""
	s, err := h.sessions.Update(r.PathValue("sid"), func(s *session.Session) error {
		kind, payload, ok := s.UI.Modal()
		if !ok {
			return ui.ErrNoModal
		}

		switch kind {
		case ui.ModalElectionCreate:
			collection = metrics.Elections
			var form models.ElectionForm
			if err := json.Unmarshal(body, &form); err != nil {
				return errBadBody
			}
			e, err := h.elections.Create(r.Context(), form)
			if err != nil {
				return err
			}
			resp.Election, resp.Created = &e, true
		case ui.ModalCandidateEdit:
			collection = metrics.Candidates
			var form models.CandidateForm
			if err := json.Unmarshal(body, &form); err != nil {
				return errBadBody
			}
			c, created, err := h.candidates.Save(r.Context(), store.IntentFor(payload), form)
			if err != nil {
				return err
			}
			resp.Candidate, resp.Created = &c, created
		}

		next, err := s.UI.SaveModal()
		if err != nil {
			return err
		}
		s.UI = next
		return nil
	})
	if err != nil {
		writeError(w, h.metrics, collection, err)
		return
	}

	switch {
	case resp.Election != nil:
		h.metrics.Mutation(metrics.Elections, "create", h.elections.Len())
		slog.Info("election created", "election_id", resp.Election.ID, "session_id", s.ID)
	case resp.Candidate != nil:
		h.metrics.Mutation(metrics.Candidates, "save", h.candidates.Len())
		slog.Info("candidate saved", "candidate_id", resp.Candidate.ID, "created", resp.Created, "session_id", s.ID)
	}

	resp.Session = s
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// CancelModal handles POST /sessions/{sid}/modals/cancel
func (h *SessionHandler) CancelModal(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(s *session.Session) error {
		next, err := s.UI.CancelModal()
		s.UI = next
		return err
	})
}

// RequestDelete handles POST /sessions/{sid}/candidates/{id}/delete
func (h *SessionHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}
	if _, err := h.candidates.Get(id); err != nil {
		writeError(w, h.metrics, metrics.Candidates, err)
		return
	}

	h.transition(w, r, func(s *session.Session) error {
		s.UI = s.UI.RequestDelete(id)
		return nil
	})
}

// ConfirmDelete handles POST /sessions/{sid}/confirm
func (h *SessionHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	var deleted models.Candidate
	s, err := h.sessions.Update(r.PathValue("sid"), func(s *session.Session) error {
		next, target, err := s.UI.ConfirmDelete()
		if err != nil {
			return err
		}
		deleted, err = h.candidates.Delete(r.Context(), target)
		if err != nil {
			return err
		}
		s.UI = next
		return nil
	})
	if err != nil {
		writeError(w, h.metrics, metrics.Candidates, err)
		return
	}
	h.metrics.Mutation(metrics.Candidates, "delete", h.candidates.Len())

	slog.Info("candidate deleted", "candidate_id", deleted.ID, "session_id", s.ID)

	middleware.JSONResponse(w, http.StatusOK, ConfirmDeleteResponse{Session: s, Deleted: deleted})
}

// CancelDelete handles POST /sessions/{sid}/confirm/cancel
func (h *SessionHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(s *session.Session) error {
		next, err := s.UI.CancelDelete()
		s.UI = next
		return err
	})
}

// transition applies fn to the session named in the path and writes it back
func (h *SessionHandler) transition(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	s, err := h.sessions.Update(r.PathValue("sid"), fn)
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s)
}
