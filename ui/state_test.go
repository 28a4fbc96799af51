// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleRowMenu_SameRowTwiceCloses(t *testing.T) {
	var s State

	s = s.ToggleRowMenu(5)
	row, open := s.Row()
	require.True(t, open)
	assert.Equal(t, 5, row)

	s = s.ToggleRowMenu(5)
	assert.Equal(t, Idle, s.Kind())
}

func TestToggleRowMenu_OtherRowMovesMenu(t *testing.T) {
	s := State{}.ToggleRowMenu(1).ToggleRowMenu(2)

	row, open := s.Row()
	assert.True(t, open)
	assert.Equal(t, 2, row)
}

func TestToggleRowMenu_IgnoredWhileModalOpen(t *testing.T) {
	s := State{}.OpenModal(ModalElectionCreate, 0)

	assert.Equal(t, s, s.ToggleRowMenu(3))

	c := State{}.RequestDelete(4)
	assert.Equal(t, c, c.ToggleRowMenu(3))
}

func TestBackgroundClick(t *testing.T) {
	assert.Equal(t, Idle, State{}.ToggleRowMenu(2).BackgroundClick().Kind())
	assert.Equal(t, Idle, State{}.BackgroundClick().Kind())

	m := State{}.OpenModal(ModalCandidateEdit, 2)
	assert.Equal(t, m, m.BackgroundClick(), "background click does not close modals")
}

func TestOpenModalClosesRowMenu(t *testing.T) {
	s := State{}.ToggleRowMenu(7).OpenModal(ModalCandidateEdit, 3)

	_, open := s.Row()
	assert.False(t, open)
	kind, payload, ok := s.Modal()
	require.True(t, ok)
	assert.Equal(t, ModalCandidateEdit, kind)
	assert.Equal(t, 3, payload)
}

func TestRequestDeleteClosesRowMenu(t *testing.T) {
	s := State{}.ToggleRowMenu(7).RequestDelete(9)

	target, ok := s.Target()
	require.True(t, ok)
	assert.Equal(t, 9, target)
	assert.Equal(t, ConfirmOpen, s.Kind())
}

func TestModalSaveAndCancel(t *testing.T) {
	s := State{}.OpenModal(ModalElectionCreate, 0)

	saved, err := s.SaveModal()
	require.NoError(t, err)
	assert.Equal(t, Idle, saved.Kind())

	cancelled, err := s.CancelModal()
	require.NoError(t, err)
	assert.Equal(t, Idle, cancelled.Kind())

	_, err = State{}.SaveModal()
	assert.ErrorIs(t, err, ErrNoModal)
	_, err = State{}.CancelModal()
	assert.ErrorIs(t, err, ErrNoModal)
}

func TestConfirmDelete(t *testing.T) {
	s := State{}.RequestDelete(4)

	next, id, err := s.ConfirmDelete()
	require.NoError(t, err)
	assert.Equal(t, 4, id)
	assert.Equal(t, Idle, next.Kind())

	cancelled, err := s.CancelDelete()
	require.NoError(t, err)
	assert.Equal(t, Idle, cancelled.Kind())

	_, _, err = State{}.ConfirmDelete()
	assert.ErrorIs(t, err, ErrNoConfirm)
	_, err = State{}.OpenModal(ModalElectionCreate, 0).CancelDelete()
	assert.ErrorIs(t, err, ErrNoConfirm)
}

func TestMenuAction(t *testing.T) {
	s := State{}.ToggleRowMenu(2)

	next, err := s.MenuAction(2)
	require.NoError(t, err)
	assert.Equal(t, Idle, next.Kind())

	same, err := s.MenuAction(3)
	assert.ErrorIs(t, err, ErrMenuNotOpen)
	assert.Equal(t, s, same)
}

func TestParseModalKind(t *testing.T) {
	k, err := ParseModalKind("candidate_edit")
	require.NoError(t, err)
	assert.Equal(t, ModalCandidateEdit, k)

	_, err = ParseModalKind("settings")
	assert.ErrorIs(t, err, ErrUnknownModal)
}

func TestStateJSON(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"idle", State{}, `{"kind":"idle"}`},
		{"row menu", State{}.ToggleRowMenu(5), `{"kind":"row_menu_open","row_id":5}`},
		{"modal", State{}.OpenModal(ModalCandidateEdit, 2), `{"kind":"modal_open","modal":"candidate_edit","payload_id":2}`},
		{"confirm", State{}.RequestDelete(8), `{"kind":"confirm_open","target_id":8}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.state)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}
