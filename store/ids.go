// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

// NextID returns 1 for an empty collection, otherwise one more than the largest id.
// It is recomputed from the snapshot on every create so deleted top ids may be reused.
func NextID[T any](items []T, idOf func(T) int) int {
	highest := 0
	for _, item := range items {
		if id := idOf(item); id > highest {
			highest = id
		}
	}
	return highest + 1
}
