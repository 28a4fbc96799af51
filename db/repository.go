// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/danielhkuo/ballot-admin/models"
)

// Repository mirrors store snapshots into SQL. Each save replaces the whole
// table inside one transaction so the table always matches a snapshot.
type Repository struct {
	db     *sql.DB
	dbType string
}

func NewRepository(db *sql.DB, dbType string) *Repository {
	return &Repository{db: db, dbType: dbType}
}

func (r *Repository) LoadElections(ctx context.Context) ([]models.Election, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, status, start_date, end_date, total_votes
		FROM election
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query elections: %w", err)
	}
	defer rows.Close()

	elections := []models.Election{}
	for rows.Next() {
		var e models.Election
		if err := rows.Scan(&e.ID, &e.Name, &e.Status, &e.StartDate, &e.EndDate, &e.TotalVotes); err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		elections = append(elections, e)
	}
	return elections, rows.Err()
}

func (r *Repository) LoadCandidates(ctx context.Context) ([]models.Candidate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, party, image, status
		FROM candidate
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.Party, &c.Image, &c.Status); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// SaveElections replaces the election table with the snapshot
func (r *Repository) SaveElections(ctx context.Context, elections []models.Election) error {
	return r.replace(ctx, "election", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, r.rebind(`
			INSERT INTO election (id, position, name, status, start_date, end_date, total_votes)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`))
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, e := range elections {
			if _, err := stmt.ExecContext(ctx, e.ID, i, e.Name, string(e.Status), e.StartDate, e.EndDate, e.TotalVotes); err != nil {
				return fmt.Errorf("failed to insert election %d: %w", e.ID, err)
			}
		}
		return nil
	})
}

// SaveCandidates replaces the candidate table with the snapshot
func (r *Repository) SaveCandidates(ctx context.Context, candidates []models.Candidate) error {
	return r.replace(ctx, "candidate", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, r.rebind(`
			INSERT INTO candidate (id, position, name, party, image, status)
			VALUES (?, ?, ?, ?, ?, ?)
		`))
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, c := range candidates {
			if _, err := stmt.ExecContext(ctx, c.ID, i, c.Name, c.Party, c.Image, string(c.Status)); err != nil {
				return fmt.Errorf("failed to insert candidate %d: %w", c.ID, err)
			}
		}
		return nil
	})
}

func (r *Repository) replace(ctx context.Context, table string, insert func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	if err := insert(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s snapshot: %w", table, err)
	}
	return nil
}

// rebind turns ? placeholders into $n for postgres
func (r *Repository) rebind(query string) string {
	if r.dbType != TypePostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
