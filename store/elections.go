// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/danielhkuo/ballot-admin/models"
	"github.com/danielhkuo/ballot-admin/validation"
)

// ElectionSink receives every committed election snapshot
type ElectionSink interface {
	SaveElections(ctx context.Context, elections []models.Election) error
}

// ElectionStore is an ordered in-memory list of elections. Every mutation
// builds a new snapshot and swaps it in whole.
type ElectionStore struct {
	mu        sync.RWMutex
	elections []models.Election
	sink      ElectionSink
}

// NewElectionStore creates a store seeded with initial. sink may be nil.
func NewElectionStore(initial []models.Election, sink ElectionSink) *ElectionStore {
	return &ElectionStore{
		elections: slices.Clone(initial),
		sink:      sink,
	}
}

// List returns a copy of the current snapshot, newest first
func (s *ElectionStore) List() []models.Election {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.elections)
}

func (s *ElectionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.elections)
}

func (s *ElectionStore) Get(id int) (models.Election, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.elections[i], nil
	}
	return models.Election{}, fmt.Errorf("election %d: %w", id, ErrNotFound)
}

// Create validates form and prepends a new election with zero votes
func (s *ElectionStore) Create(ctx context.Context, form models.ElectionForm) (models.Election, error) {
	if res := validation.ValidateElection(form); !res.Valid() {
		return models.Election{}, &ValidationError{Result: res}
	}

	status := form.Status
	if status == "" {
		status = models.ElectionActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	election := models.Election{
		ID:         NextID(s.elections, electionID),
		Name:       strings.TrimSpace(form.Name),
		Status:     status,
		StartDate:  strings.TrimSpace(form.StartDate),
		EndDate:    strings.TrimSpace(form.EndDate),
		TotalVotes: 0,
	}

	next := make([]models.Election, 0, len(s.elections)+1)
	next = append(next, election)
	next = append(next, s.elections...)

	if err := s.commit(ctx, next); err != nil {
		return models.Election{}, err
	}
	return election, nil
}

// SetStatus replaces the status of election id. An absent id returns
// ErrNotFound and leaves the collection untouched.
func (s *ElectionStore) SetStatus(ctx context.Context, id int, status models.ElectionStatus) (models.Election, error) {
	if !status.Valid() {
		return models.Election{}, &ValidationError{Result: validation.Result{Errors: []models.FieldError{{
			Field:   validation.FieldStatus,
			Code:    validation.CodeStatusInvalid,
			Message: "Status must be one of Active, Draft, Ended.",
		}}}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Election{}, fmt.Errorf("election %d: %w", id, ErrNotFound)
	}

	next := slices.Clone(s.elections)
	next[i].Status = status

	if err := s.commit(ctx, next); err != nil {
		return models.Election{}, err
	}
	return next[i], nil
}

func (s *ElectionStore) indexOf(id int) int {
	return slices.IndexFunc(s.elections, func(e models.Election) bool { return e.ID == id })
}

// commit must be called with mu held
func (s *ElectionStore) commit(ctx context.Context, next []models.Election) error {
	if s.sink != nil {
		if err := s.sink.SaveElections(ctx, next); err != nil {
			return fmt.Errorf("failed to persist elections: %w", err)
		}
	}
	s.elections = next
	return nil
}

func electionID(e models.Election) int { return e.ID }
