// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ui models the admin dashboard's selection state.

State is a small value type: Idle, RowMenuOpen, ModalOpen or ConfirmOpen.
Transitions return a new State and never mutate the receiver, so callers can
try a transition and discard it on error.

	s := ui.State{}.ToggleRowMenu(2)   // row 2 menu open
	s = s.OpenModal(ui.ModalCandidateEdit, 4)
	s, err := s.SaveModal()            // Idle

Transitions that need a particular state return ErrNoModal, ErrNoConfirm or
ErrMenuNotOpen when called from another one.
*/
package ui
