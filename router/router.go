// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/ballot-admin/cliparse"
	"github.com/danielhkuo/ballot-admin/handlers"
	"github.com/danielhkuo/ballot-admin/metrics"
	"github.com/danielhkuo/ballot-admin/middleware"
	"github.com/danielhkuo/ballot-admin/session"
	"github.com/danielhkuo/ballot-admin/store"
	"github.com/danielhkuo/ballot-admin/wallet"
)

// Deps are the long-lived services the routes are served from
type Deps struct {
	Elections  *store.ElectionStore
	Candidates *store.CandidateStore
	Sessions   *session.Registry
	Connector  *wallet.Connector
	Metrics    *metrics.Recorder
}

func NewRouter(deps Deps, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(deps.Elections, deps.Metrics)
	candidateHandler := handlers.NewCandidateHandler(deps.Candidates, deps.Metrics)
	sessionHandler := handlers.NewSessionHandler(deps.Sessions, deps.Elections, deps.Candidates, deps.Metrics)
	authHandler := handlers.NewAuthHandler(deps.Sessions, deps.Connector, deps.Metrics)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdminKey(cfg.AdminKey, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", deps.Metrics.Handler())

	// Elections
	mux.HandleFunc("GET /elections", middleware.WithLogging(electionHandler.List))
	mux.HandleFunc("POST /elections", admin(electionHandler.Create))
	mux.HandleFunc("GET /elections/{id}", middleware.WithLogging(electionHandler.Get))
	mux.HandleFunc("PUT /elections/{id}/status", admin(electionHandler.SetStatus))
	mux.HandleFunc("GET /elections/{id}/report", middleware.WithLogging(electionHandler.Report))

	// Candidates (deletion only through a session confirmation)
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.List))
	mux.HandleFunc("POST /candidates", admin(candidateHandler.Create))
	mux.HandleFunc("GET /candidates/{id}", middleware.WithLogging(candidateHandler.Get))
	mux.HandleFunc("PUT /candidates/{id}", admin(candidateHandler.Update))
	mux.HandleFunc("POST /candidates/{id}/toggle-status", admin(candidateHandler.ToggleStatus))

	// Session selection state
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.Create))
	mux.HandleFunc("GET /sessions/{sid}", middleware.WithLogging(sessionHandler.Get))
	mux.HandleFunc("DELETE /sessions/{sid}", middleware.WithLogging(sessionHandler.Delete))
	mux.HandleFunc("POST /sessions/{sid}/rows/{id}/menu", middleware.WithLogging(sessionHandler.ToggleMenu))
	mux.HandleFunc("POST /sessions/{sid}/background-click", middleware.WithLogging(sessionHandler.BackgroundClick))
	mux.HandleFunc("POST /sessions/{sid}/rows/{id}/actions/{action}", admin(sessionHandler.RowAction))
	mux.HandleFunc("POST /sessions/{sid}/modals", middleware.WithLogging(sessionHandler.OpenModal))
	mux.HandleFunc("POST /sessions/{sid}/modals/save", admin(sessionHandler.SaveModal))
	mux.HandleFunc("POST /sessions/{sid}/modals/cancel", middleware.WithLogging(sessionHandler.CancelModal))
	mux.HandleFunc("POST /sessions/{sid}/candidates/{id}/delete", middleware.WithLogging(sessionHandler.RequestDelete))
	mux.HandleFunc("POST /sessions/{sid}/confirm", admin(sessionHandler.ConfirmDelete))
	mux.HandleFunc("POST /sessions/{sid}/confirm/cancel", middleware.WithLogging(sessionHandler.CancelDelete))

	// Wallet and sign-in
	mux.HandleFunc("POST /sessions/{sid}/wallet/connect", middleware.WithLogging(authHandler.WalletConnect))
	mux.HandleFunc("POST /sessions/{sid}/wallet/check", middleware.WithLogging(authHandler.WalletCheck))
	mux.HandleFunc("POST /sessions/{sid}/wallet/accounts", middleware.WithLogging(authHandler.AccountsChanged))
	mux.HandleFunc("POST /sessions/{sid}/wallet/chain", middleware.WithLogging(authHandler.ChainChanged))
	mux.HandleFunc("POST /sessions/{sid}/auth/google", middleware.WithLogging(authHandler.GoogleSignIn))
	mux.HandleFunc("POST /sessions/{sid}/auth/logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /sessions/{sid}/route/{role}", middleware.WithLogging(authHandler.Route))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballot-admin API v1"))
	})

	return mux
}
