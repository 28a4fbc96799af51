// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNoModal      = errors.New("no modal is open")
	ErrNoConfirm    = errors.New("no delete confirmation is open")
	ErrMenuNotOpen  = errors.New("row menu is not open")
	ErrUnknownModal = errors.New("unknown modal kind")
)

// Kind tags the variant held by a State
type Kind int

const (
	Idle Kind = iota
	RowMenuOpen
	ModalOpen
	ConfirmOpen
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case RowMenuOpen:
		return "row_menu_open"
	case ModalOpen:
		return "modal_open"
	case ConfirmOpen:
		return "confirm_open"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ModalKind names the modal that is open
type ModalKind string

const (
	ModalElectionCreate ModalKind = "election_create"
	ModalCandidateEdit  ModalKind = "candidate_edit"
)

func ParseModalKind(s string) (ModalKind, error) {
	switch k := ModalKind(s); k {
	case ModalElectionCreate, ModalCandidateEdit:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModal, s)
}

// State is the whole selection state of one admin view. Only the fields
// belonging to the current Kind are meaningful, so at most one menu, modal,
// or confirmation can be open. The zero value is Idle.
type State struct {
	kind    Kind
	row     int
	modal   ModalKind
	payload int
	target  int
}

func (s State) Kind() Kind { return s.kind }

// Row is the row whose menu is open
func (s State) Row() (int, bool) { return s.row, s.kind == RowMenuOpen }

// Modal returns the open modal and its payload (candidate id, 0 for a new one)
func (s State) Modal() (ModalKind, int, bool) { return s.modal, s.payload, s.kind == ModalOpen }

// Target is the record awaiting delete confirmation
func (s State) Target() (int, bool) { return s.target, s.kind == ConfirmOpen }

// ToggleRowMenu opens row's menu, or closes it if it is already open.
// It does nothing while a modal or confirmation is showing.
func (s State) ToggleRowMenu(row int) State {
	switch s.kind {
	case Idle:
		return State{kind: RowMenuOpen, row: row}
	case RowMenuOpen:
		if s.row == row {
			return State{}
		}
		return State{kind: RowMenuOpen, row: row}
	}
	return s
}

// BackgroundClick closes an open row menu
func (s State) BackgroundClick() State {
	if s.kind == RowMenuOpen {
		return State{}
	}
	return s
}

// MenuAction consumes the open menu of row, as when a menu item is clicked
func (s State) MenuAction(row int) (State, error) {
	if s.kind != RowMenuOpen || s.row != row {
		return s, fmt.Errorf("row %d: %w", row, ErrMenuNotOpen)
	}
	return State{}, nil
}

// OpenModal shows a modal, closing any row menu or other modal
func (s State) OpenModal(kind ModalKind, payload int) State {
	return State{kind: ModalOpen, modal: kind, payload: payload}
}

// SaveModal returns to Idle after a successful save
func (s State) SaveModal() (State, error) {
	if s.kind != ModalOpen {
		return s, ErrNoModal
	}
	return State{}, nil
}

func (s State) CancelModal() (State, error) {
	if s.kind != ModalOpen {
		return s, ErrNoModal
	}
	return State{}, nil
}

// RequestDelete asks for confirmation before deleting target
func (s State) RequestDelete(target int) State {
	return State{kind: ConfirmOpen, target: target}
}

// ConfirmDelete returns to Idle and yields the id to delete
func (s State) ConfirmDelete() (State, int, error) {
	if s.kind != ConfirmOpen {
		return s, 0, ErrNoConfirm
	}
	return State{}, s.target, nil
}

func (s State) CancelDelete() (State, error) {
	if s.kind != ConfirmOpen {
		return s, ErrNoConfirm
	}
	return State{}, nil
}

type stateJSON struct {
	Kind      string    `json:"kind"`
	RowID     int       `json:"row_id,omitempty"`
	Modal     ModalKind `json:"modal,omitempty"`
	PayloadID int       `json:"payload_id,omitempty"`
	TargetID  int       `json:"target_id,omitempty"`
}

func (s State) MarshalJSON() ([]byte, error) {
	out := stateJSON{Kind: s.kind.String()}
	switch s.kind {
	case RowMenuOpen:
		out.RowID = s.row
	case ModalOpen:
		out.Modal = s.modal
		out.PayloadID = s.payload
	case ConfirmOpen:
		out.TargetID = s.target
	}
	return json.Marshal(out)
}
