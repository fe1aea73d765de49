package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique field collides with an existing entity
	ErrDuplicate = errors.New("duplicate")
)
