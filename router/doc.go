// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Ballot Admin API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(router.Deps{...}, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Elections (mutations require X-Admin-Key when configured):

	GET  /elections              - List
	POST /elections              - Create
	GET  /elections/{id}         - Get
	PUT  /elections/{id}/status  - Set status
	GET  /elections/{id}/report  - CSV report

Candidates:

	GET  /candidates                    - List
	POST /candidates                    - Create
	GET  /candidates/{id}               - Get
	PUT  /candidates/{id}               - Update
	POST /candidates/{id}/toggle-status - Valid ↔ Invalid

Sessions:

	POST   /sessions
	GET    /sessions/{sid}
	DELETE /sessions/{sid}
	POST   /sessions/{sid}/rows/{id}/menu
	POST   /sessions/{sid}/background-click
	POST   /sessions/{sid}/rows/{id}/actions/{action}
	POST   /sessions/{sid}/modals[/save|/cancel]
	POST   /sessions/{sid}/candidates/{id}/delete
	POST   /sessions/{sid}/confirm[/cancel]

Wallet and sign-in:

	POST /sessions/{sid}/wallet/{connect|check|accounts|chain}
	POST /sessions/{sid}/auth/{google|logout}
	GET  /sessions/{sid}/route/{role}
*/
package router
