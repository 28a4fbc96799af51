// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballot-admin/auth"
	"github.com/danielhkuo/ballot-admin/metrics"
	"github.com/danielhkuo/ballot-admin/middleware"
	"github.com/danielhkuo/ballot-admin/models"
	"github.com/danielhkuo/ballot-admin/session"
	"github.com/danielhkuo/ballot-admin/wallet"
)

type WalletResponse struct {
	Session      session.Session `json:"session"`
	ShortAddress string          `json:"short_address,omitempty"`
}

// AuthHandler serves the landing page: wallet status, sign-in and the
// admin/voter redirect.
type AuthHandler struct {
	sessions  *session.Registry
	connector *wallet.Connector
	metrics   *metrics.Recorder
}

func NewAuthHandler(sessions *session.Registry, connector *wallet.Connector, m *metrics.Recorder) *AuthHandler {
	return &AuthHandler{sessions: sessions, connector: connector, metrics: m}
}

// WalletConnect handles POST /sessions/{sid}/wallet/connect
func (h *AuthHandler) WalletConnect(w http.ResponseWriter, r *http.Request) {
	h.walletStep(w, r, func(ctx context.Context, prev wallet.Connection) wallet.Connection {
		return h.connector.Connect(ctx, prev)
	})
}

// WalletCheck handles POST /sessions/{sid}/wallet/check
func (h *AuthHandler) WalletCheck(w http.ResponseWriter, r *http.Request) {
	h.walletStep(w, r, func(ctx context.Context, prev wallet.Connection) wallet.Connection {
		return h.connector.Check(ctx, prev)
	})
}

// AccountsChanged handles POST /sessions/{sid}/wallet/accounts
func (h *AuthHandler) AccountsChanged(w http.ResponseWriter, r *http.Request) {
	var req models.AccountsChangedRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.walletStep(w, r, func(_ context.Context, prev wallet.Connection) wallet.Connection {
		return h.connector.AccountsChanged(prev, req.Accounts)
	})
}

// ChainChanged handles POST /sessions/{sid}/wallet/chain
func (h *AuthHandler) ChainChanged(w http.ResponseWriter, r *http.Request) {
	var req models.ChainChangedRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ChainID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "chain_id is required")
		return
	}
	h.walletStep(w, r, func(_ context.Context, prev wallet.Connection) wallet.Connection {
		return h.connector.ChainChanged(prev, req.ChainID)
	})
}

// walletStep runs step against the session's wallet outside the registry
// lock, since providers may block on the network, then stores the result.
// A step that started before another wallet write is stale and is dropped;
// the client gets the newer state.
func (h *AuthHandler) walletStep(w http.ResponseWriter, r *http.Request, step func(context.Context, wallet.Connection) wallet.Connection) {
	sid := r.PathValue("sid")
	current, err := h.sessions.Get(sid)
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}

	conn := step(r.Context(), current.Wallet)

	s, err := h.sessions.Update(sid, func(s *session.Session) error {
		if s.WalletSeq != current.WalletSeq {
			return errWalletSuperseded
		}
		s.Wallet = conn
		s.Identity = linkWallet(s.Identity, conn)
		s.WalletSeq++
		return nil
	})
	if errors.Is(err, errWalletSuperseded) {
		slog.Debug("stale wallet result dropped", "session_id", sid, "address", wallet.ShortenAddress(conn.Address))
		middleware.JSONResponse(w, http.StatusOK, WalletResponse{
			Session:      s,
			ShortAddress: wallet.ShortenAddress(s.Wallet.Address),
		})
		return
	}
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}

	if conn.Status != nil {
		h.metrics.WalletStatus(string(conn.Status.Kind))
	}
	slog.Debug("wallet status", "session_id", sid, "address", wallet.ShortenAddress(conn.Address), "chain_id", conn.ChainID)

	middleware.JSONResponse(w, http.StatusOK, WalletResponse{
		Session:      s,
		ShortAddress: wallet.ShortenAddress(conn.Address),
	})
}

// linkWallet signs the session in with MetaMask when a wallet connects and
// no Google identity is present, and signs it out when that wallet goes away.
func linkWallet(id auth.Identity, conn wallet.Connection) auth.Identity {
	switch id.Method {
	case auth.MethodNone, auth.MethodMetaMask:
		if conn.Connected() {
			return auth.SetAuth(auth.MethodMetaMask, conn.Address, nil)
		}
		return auth.Logout()
	}
	return id
}

// GoogleSignIn handles POST /sessions/{sid}/auth/google
func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req models.GoogleSignInRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	identity, err := auth.GoogleSignIn(req.Name, req.Email, req.Image, req.WalletAddress)
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}

	s, err := h.sessions.Update(r.PathValue("sid"), func(s *session.Session) error {
		s.Identity = identity
		return nil
	})
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}

	slog.Info("google sign-in", "session_id", s.ID)

	middleware.JSONResponse(w, http.StatusOK, s)
}

// Logout handles POST /sessions/{sid}/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Update(r.PathValue("sid"), func(s *session.Session) error {
		s.Identity = auth.Logout()
		return nil
	})
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, s)
}

// Route handles GET /sessions/{sid}/route/{role}. Signed-in sessions and
// sessions with a connected wallet are redirected to the role's view.
func (h *AuthHandler) Route(w http.ResponseWriter, r *http.Request) {
	dest, err := auth.Destination(auth.Role(r.PathValue("role")))
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}

	s, err := h.sessions.Get(r.PathValue("sid"))
	if err != nil {
		writeError(w, h.metrics, "", err)
		return
	}
	if !s.Identity.Authenticated() && !s.Wallet.Connected() {
		writeError(w, h.metrics, "", auth.ErrNotAuthenticated)
		return
	}

	http.Redirect(w, r, dest, http.StatusSeeOther)
}
