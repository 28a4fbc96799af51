// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the election and candidate collections.

# Snapshots

Each store keeps an ordered slice, newest first. A mutation builds a new
slice, hands it to the optional sink, and only then swaps it in:

	elections := store.NewElectionStore(initial, repo)
	e, err := elections.Create(ctx, form)

A failed validation returns *ValidationError, a missing id wraps
ErrNotFound, and a failed sink returns its error. In every case the
collection is left as it was.

# Identifiers

NextID returns 1 for an empty collection and max+1 otherwise. It is computed
from the snapshot on every create, so a freed top id may be handed out again.

# Candidates

Save takes an Intent instead of a magic id:

	store.CreateIntent()     // always inserts
	store.UpdateIntent(3)    // replaces 3 in place, or inserts it if absent
	store.IntentFor(formID)  // 0 means create

Candidates are only deleted after a confirmation in the ui package; the
store itself does not check.
*/
package store
