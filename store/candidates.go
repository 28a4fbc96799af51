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

// CandidateSink receives every committed candidate snapshot
type CandidateSink interface {
	SaveCandidates(ctx context.Context, candidates []models.Candidate) error
}

// Intent says whether a save creates a new candidate or updates an existing one
type Intent struct {
	id int
}

func CreateIntent() Intent { return Intent{} }

// UpdateIntent targets candidate id. Non-positive ids mean create.
func UpdateIntent(id int) Intent {
	if id <= 0 {
		return Intent{}
	}
	return Intent{id: id}
}

// IntentFor maps the form sentinel id (0 = unset) to an Intent
func IntentFor(id int) Intent { return UpdateIntent(id) }

func (i Intent) IsUpdate() bool { return i.id > 0 }
func (i Intent) ID() int        { return i.id }

func (i Intent) String() string {
	if i.IsUpdate() {
		return fmt.Sprintf("update(%d)", i.id)
	}
	return "create"
}

// CandidateStore is an ordered in-memory list of candidates
type CandidateStore struct {
	mu         sync.RWMutex
	candidates []models.Candidate
	sink       CandidateSink
}

// NewCandidateStore creates a store seeded with initial. sink may be nil.
func NewCandidateStore(initial []models.Candidate, sink CandidateSink) *CandidateStore {
	return &CandidateStore{
		candidates: slices.Clone(initial),
		sink:       sink,
	}
}

func (s *CandidateStore) List() []models.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.candidates)
}

func (s *CandidateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candidates)
}

func (s *CandidateStore) Get(id int) (models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.candidates[i], nil
	}
	return models.Candidate{}, fmt.Errorf("candidate %d: %w", id, ErrNotFound)
}

// Save creates or updates a candidate. An update whose id is absent inserts
// the record under that id instead of dropping it. The returned bool is true
// when a new record was added.
func (s *CandidateStore) Save(ctx context.Context, intent Intent, form models.CandidateForm) (models.Candidate, bool, error) {
	if res := validation.ValidateCandidate(form); !res.Valid() {
		return models.Candidate{}, false, &ValidationError{Result: res}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := models.Candidate{
		Name:   strings.TrimSpace(form.Name),
		Party:  strings.TrimSpace(form.Party),
		Image:  strings.TrimSpace(form.Image),
		Status: form.Status,
	}

	i := -1
	if intent.IsUpdate() {
		i = s.indexOf(intent.ID())
	}

	var next []models.Candidate
	created := i < 0
	if created {
		candidate.ID = intent.ID()
		if candidate.ID == 0 {
			candidate.ID = NextID(s.candidates, candidateID)
		}
		if candidate.Image == "" {
			candidate.Image = models.DefaultCandidateImage
		}
		if candidate.Status == "" {
			candidate.Status = models.CandidateValid
		}
		next = make([]models.Candidate, 0, len(s.candidates)+1)
		next = append(next, candidate)
		next = append(next, s.candidates...)
	} else {
		existing := s.candidates[i]
		candidate.ID = existing.ID
		if candidate.Image == "" {
			candidate.Image = existing.Image
		}
		if candidate.Image == "" {
			candidate.Image = models.DefaultCandidateImage
		}
		if candidate.Status == "" {
			candidate.Status = existing.Status
		}
		next = slices.Clone(s.candidates)
		next[i] = candidate
	}

	if err := s.commit(ctx, next); err != nil {
		return models.Candidate{}, false, err
	}
	return candidate, created, nil
}

// ToggleStatus flips Valid and Invalid for candidate id
func (s *CandidateStore) ToggleStatus(ctx context.Context, id int) (models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Candidate{}, fmt.Errorf("candidate %d: %w", id, ErrNotFound)
	}

	next := slices.Clone(s.candidates)
	next[i].Status = next[i].Status.Toggled()

	if err := s.commit(ctx, next); err != nil {
		return models.Candidate{}, err
	}
	return next[i], nil
}

// Delete removes candidate id. Callers are expected to have confirmed the
// deletion first; see the ui package.
func (s *CandidateStore) Delete(ctx context.Context, id int) (models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Candidate{}, fmt.Errorf("candidate %d: %w", id, ErrNotFound)
	}

	removed := s.candidates[i]
	next := slices.Delete(slices.Clone(s.candidates), i, i+1)

	if err := s.commit(ctx, next); err != nil {
		return models.Candidate{}, err
	}
	return removed, nil
}

func (s *CandidateStore) indexOf(id int) int {
	return slices.IndexFunc(s.candidates, func(c models.Candidate) bool { return c.ID == id })
}

// commit must be called with mu held
func (s *CandidateStore) commit(ctx context.Context, next []models.Candidate) error {
	if s.sink != nil {
		if err := s.sink.SaveCandidates(ctx, next); err != nil {
			return fmt.Errorf("failed to persist candidates: %w", err)
		}
	}
	s.candidates = next
	return nil
}

func candidateID(c models.Candidate) int { return c.ID }
