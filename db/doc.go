// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists record snapshots to SQL.

# Connections

Open supports sqlite (modernc.org/sqlite, no cgo) and postgres (lib/pq):

	conn, err := db.Open(db.TypeSQLite, "ballot.db")

Safe to call CreateSchema multiple times - uses IF NOT EXISTS.

# Tables

  - election: id, position, name, status, start_date, end_date, total_votes
  - candidate: id, position, name, party, image, status

position keeps the in-memory order (newest first).

# Repository

Repository implements the store sinks. Every save replaces a table's rows
inside one transaction, so a failed save leaves the previous snapshot.
*/
package db
