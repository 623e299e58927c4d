// ABOUTME: Sentinel errors shared by all storage backends.
// ABOUTME: Callers classify failures with errors.Is.
package storage

import "errors"

var (
	// ErrEmptyName is returned when a baby name is empty after trimming.
	ErrEmptyName = errors.New("baby name cannot be empty")

	// ErrNotFound is returned when an operation references a row that
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a uniqueness violation could not be
	// resolved by upsert or retry-as-lookup semantics.
	ErrConflict = errors.New("uniqueness conflict")
)
