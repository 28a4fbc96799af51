// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package session tracks per-client dashboard sessions.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/ballot-admin/auth"
	"github.com/danielhkuo/ballot-admin/ui"
	"github.com/danielhkuo/ballot-admin/wallet"
)

var ErrNotFound = errors.New("session not found")

// Session is the per-client view state
type Session struct {
	ID       string            `json:"id"`
	UI       ui.State          `json:"ui"`
	Identity auth.Identity     `json:"identity"`
	Wallet   wallet.Connection `json:"wallet"`
	LastSeen time.Time         `json:"last_seen"`

	// WalletSeq counts wallet writes. A wallet step started at an older
	// sequence must not overwrite a newer result.
	WalletSeq uint64 `json:"-"`
}

type entry struct {
	mu   sync.Mutex
	s    Session
	gone bool
}

// Registry holds live sessions keyed by id. The map lock only guards
// membership; each session has its own lock so a slow transition on one
// session does not stall the others.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Create starts a new idle session
func (r *Registry) Create() Session {
	e := &entry{s: Session{
		ID:       uuid.NewString(),
		LastSeen: r.now(),
	}}

	r.mu.Lock()
	r.sessions[e.s.ID] = e
	r.mu.Unlock()

	return e.s
}

func (r *Registry) lookup(id string) (*entry, error) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return e, nil
}

func (r *Registry) Get(id string) (Session, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Session{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return Session{}, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return e.s, nil
}

// Update applies fn to a copy of the session and stores the result unless fn
// fails, in which case the unchanged session is returned with the error.
// Updates to one session are serialised.
func (r *Registry) Update(id string, fn func(*Session) error) (Session, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Session{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gone {
		return Session{}, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}

	next := e.s
	if err := fn(&next); err != nil {
		return e.s, err
	}
	next.ID = e.s.ID
	next.LastSeen = r.now()
	e.s = next
	return next, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	e, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}

	e.mu.Lock()
	e.gone = true
	e.mu.Unlock()
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep removes sessions idle for longer than ttl and returns how many went.
// Sessions mid-update are in use and are left alone.
func (r *Registry) Sweep(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.sessions {
		if !e.mu.TryLock() {
			continue
		}
		if e.s.LastSeen.Before(cutoff) {
			e.gone = true
			delete(r.sessions, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is cancelled.
// onSweep, if set, is called with the remaining session count.
func (r *Registry) Run(ctx context.Context, interval, ttl time.Duration, onSweep func(remaining int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := r.Sweep(ttl); removed > 0 {
				slog.Info("expired sessions removed", "count", removed)
			}
			if onSweep != nil {
				onSweep(r.Len())
			}
		}
	}
}
