// Package theory holds the static music theory tables used by the pattern
// generators: note names, chord templates, inversions, scales and note
// durations.
package theory

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned (wrapped in a *LookupError) when a table has no
// entry for the requested key.
var ErrNotFound = errors.New("not found")

// LookupError describes a table miss
type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Table, e.Key, ErrNotFound)
}

// Unwrap lets errors.Is match ErrNotFound
func (e *LookupError) Unwrap() error {
	return ErrNotFound
}

func miss(table, key string) error {
	return &LookupError{Table: table, Key: key}
}

func clone(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)
	return out
}
