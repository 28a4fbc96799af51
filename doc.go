// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ballot Admin API server.

Ballot Admin backs the admin dashboard of a campus voting app: it owns the
election and candidate records, the per-user row menu / modal / delete
confirmation state, and the wallet and sign-in status shown on the landing
page. Votes are not cast or counted here.

# Starting the Server

With no configuration the server keeps the built-in demo records in memory:

	go run .

Or persist them:

	go run . -p 3318 -d ballot.db
	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Snapshot database; empty keeps records in memory
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - ADMIN_KEY (-admin-key): Required X-Admin-Key for admin mutations
  - SEED_FILE (-seed): YAML records loaded at startup
  - WALLET_RPC_URL (-wallet-rpc): Ethereum JSON-RPC wallet endpoint
  - WALLET_CHAIN_ID (-chain-id): Expected chain (default: Sepolia)
  - SESSION_TTL (-session-ttl): Idle session lifetime (default: 30m)
  - DEBUG (-debug): Debug logging

A .env file in the working directory is read first.

# Architecture

  - handlers: HTTP request handlers (elections, candidates, sessions, auth)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin key, JSON helpers
  - store: Snapshot-swapping election and candidate stores
  - validation: Form validation
  - ui: Selection state machine
  - session: Per-client session registry
  - wallet: Wallet provider contract and status banners
  - auth: Identity, routing and admin key check
  - db: Optional SQL persistence
  - seed: Demo records
  - metrics: Prometheus instrumentation
  - models: Records and request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
