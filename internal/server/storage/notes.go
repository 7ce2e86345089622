package storage

import (
	"context"

	"github.com/iudanet/gophnotes/pkg/api"
)

//go:generate moq -out notestorage_mock.go . NoteStorage

// NoteStorage defines interface for server-side note persistence.
// Conflicts are resolved last-writer-wins by UpdatedAt.
type NoteStorage interface {
	// CreateNote inserts a new note
	// Returns ErrNoteExists if the ID is already taken
	CreateNote(ctx context.Context, note *api.Note) error

	// UpsertNote stores the note unless the stored version is newer or equal.
	// Returns the version that is stored after the call and whether the
	// incoming note was applied
	UpsertNote(ctx context.Context, note *api.Note) (*api.Note, bool, error)

	// GetNote retrieves a note by ID
	// Returns ErrNoteNotFound if note doesn't exist
	GetNote(ctx context.Context, id string) (*api.Note, error)

	// ListNotes returns all notes ordered by UpdatedAt descending
	// Returns empty slice if no notes found
	ListNotes(ctx context.Context) ([]*api.Note, error)

	// DeleteNote removes a note
	// Returns ErrNoteNotFound if note doesn't exist
	DeleteNote(ctx context.Context, id string) error

	// Ping checks that the database is reachable
	Ping(ctx context.Context) error
}
