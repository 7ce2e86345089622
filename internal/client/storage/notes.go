package storage

import (
	"context"

	"github.com/iudanet/gophnotes/internal/models"
)

//go:generate moq -out notestorage_mock.go . NoteStorage

// NoteStorage defines durable CRUD over notes keyed by ID.
// Implementations must make every write durable before returning success.
type NoteStorage interface {
	// SaveNote stores or replaces a note (upsert). Idempotent.
	SaveNote(ctx context.Context, note *models.Note) error

	// GetNote retrieves a note by ID
	// Returns ErrNoteNotFound if note doesn't exist
	GetNote(ctx context.Context, id string) (*models.Note, error)

	// GetAllNotes returns a snapshot of all notes ordered by UpdatedAt descending
	GetAllNotes(ctx context.Context) ([]*models.Note, error)

	// DeleteNote removes a note. Deleting an absent ID is not an error.
	DeleteNote(ctx context.Context, id string) error

	// GetUnsyncedNotes returns notes whose sync state is not synced,
	// in the same order as GetAllNotes
	GetUnsyncedNotes(ctx context.Context) ([]*models.Note, error)
}

//go:generate moq -out tombstonestorage_mock.go . TombstoneStorage

// TombstoneStorage tracks notes deleted locally whose deletion was not yet
// confirmed by the remote service.
type TombstoneStorage interface {
	// GetPendingDeletes returns IDs of locally deleted notes awaiting remote delete
	GetPendingDeletes(ctx context.Context) ([]string, error)

	// ClearPendingDelete forgets a tombstone after the remote confirmed the delete
	ClearPendingDelete(ctx context.Context, id string) error
}
