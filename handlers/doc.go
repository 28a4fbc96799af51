// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Ballot Admin API.

# Handler Types

Each handler is a struct holding the services it needs:

  - ElectionHandler: List, create, status changes and CSV reports
  - CandidateHandler: List, create, update and status toggles
  - SessionHandler: Row menus, modals and delete confirmation
  - AuthHandler: Wallet status, Google sign-in and role redirects

Handlers are created via constructor functions:

	electionHandler := handlers.NewElectionHandler(elections, rec)

# Errors

Failures map onto status codes in one place:

  - validation failures → 400 with a field list
  - unknown record or session → 404
  - a transition the selection state does not allow → 409
  - persistence failures → 500 (the record set is unchanged)

# Session Flow

A client creates a session and drives it like the dashboard does:

	POST /sessions                          → Create
	POST /sessions/{sid}/rows/{id}/menu     → ToggleMenu
	POST /sessions/{sid}/rows/{id}/actions/pause → RowAction (Draft)
	POST /sessions/{sid}/modals             → OpenModal
	POST /sessions/{sid}/modals/save        → SaveModal
	POST /sessions/{sid}/candidates/{id}/delete → RequestDelete
	POST /sessions/{sid}/confirm            → ConfirmDelete

Candidates can only be deleted through the confirmation step.

# Wallet

Wallet endpoints run the configured provider outside the session lock and
store the resulting connection. A connected wallet signs the session in
with MetaMask unless it already holds a Google identity.
*/
package handlers
