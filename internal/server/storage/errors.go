package storage

import "errors"

// Common storage errors
var (
	// ErrNoteNotFound indicates that note was not found in storage
	ErrNoteNotFound = errors.New("note not found")

	// ErrNoteExists indicates that a note with this ID already exists
	ErrNoteExists = errors.New("note already exists")
)
