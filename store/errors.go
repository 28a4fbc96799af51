// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/ballot-admin/validation"
)

var ErrNotFound = errors.New("record not found")

// ValidationError wraps a failed form validation. The store is left unchanged.
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Result.Codes(), ", "))
}
