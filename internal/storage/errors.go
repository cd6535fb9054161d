package storage

import "errors"

// Store errors. Issued records are append-only.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when a record with the same key was already stored.
	ErrDuplicateKey = errors.New("duplicate key: issued records cannot be replaced")

	// ErrInvalidInput is returned when a record is missing its keys.
	ErrInvalidInput = errors.New("invalid input")
)
