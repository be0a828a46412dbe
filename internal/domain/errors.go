package domain

import "errors"

// Storage level errors shared by repositories and use cases.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)
