// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ballot-admin/auth"
	"github.com/danielhkuo/ballot-admin/metrics"
	"github.com/danielhkuo/ballot-admin/middleware"
	"github.com/danielhkuo/ballot-admin/session"
	"github.com/danielhkuo/ballot-admin/store"
	"github.com/danielhkuo/ballot-admin/ui"
)

var (
	errInvalidID     = errors.New("id must be a positive integer")
	errBadBody       = errors.New("request body does not match the open form")
	errUnknownAction = errors.New("unknown row action")

	errWalletSuperseded = errors.New("wallet result superseded by a newer one")
)

// pathID reads a positive integer path value
func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// writeError maps domain errors onto HTTP responses. collection labels
// validation failures in metrics and may be empty.
func writeError(w http.ResponseWriter, m *metrics.Recorder, collection string, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		m.ValidationFailure(collection, verr.Result.Codes())
		middleware.ValidationErrorResponse(w, verr.Result.Errors)
	case errors.Is(err, store.ErrNotFound), errors.Is(err, session.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ui.ErrNoModal), errors.Is(err, ui.ErrNoConfirm), errors.Is(err, ui.ErrMenuNotOpen):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, ui.ErrUnknownModal), errors.Is(err, auth.ErrInvalidProfile),
		errors.Is(err, auth.ErrUnknownRole), errors.Is(err, errInvalidID),
		errors.Is(err, errBadBody), errors.Is(err, errUnknownAction):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrNotAuthenticated):
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
