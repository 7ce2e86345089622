package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophnotes/internal/server/storage"
	"github.com/iudanet/gophnotes/pkg/api"
)

// CreateNote inserts a new note
// Returns ErrNoteExists if the ID is already taken
func (s *Storage) CreateNote(ctx context.Context, note *api.Note) error {
	query := `
		INSERT INTO notes (id, title, body, updated_at, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`

	res, err := s.db.ExecContext(ctx, query,
		note.ID,
		note.Title,
		note.Body,
		note.UpdatedAt.UnixNano(),
		time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNoteExists
	}

	return nil
}

// UpsertNote stores the note unless the stored version is newer or equal.
// Returns the stored version and whether the incoming note was applied.
func (s *Storage) UpsertNote(ctx context.Context, note *api.Note) (*api.Note, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Last-writer-wins: равная или более старая версия не перезаписывает запись
	query := `
		INSERT INTO notes (id, title, body, updated_at, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE
		SET title = excluded.title,
		    body = excluded.body,
		    updated_at = excluded.updated_at
		WHERE excluded.updated_at > notes.updated_at
	`

	res, err := tx.ExecContext(ctx, query,
		note.ID,
		note.Title,
		note.Body,
		note.UpdatedAt.UnixNano(),
		time.Now().UnixNano(),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	stored, err := getNote(ctx, tx, note.ID)
	if err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return stored, affected > 0, nil
}

// GetNote retrieves a note by ID
// Returns ErrNoteNotFound if note doesn't exist
func (s *Storage) GetNote(ctx context.Context, id string) (*api.Note, error) {
	return getNote(ctx, s.db, id)
}

// ListNotes returns all notes ordered by UpdatedAt descending
func (s *Storage) ListNotes(ctx context.Context) ([]*api.Note, error) {
	query := `
		SELECT id, title, body, updated_at
		FROM notes
		ORDER BY updated_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*api.Note, 0)
	for rows.Next() {
		note := &api.Note{}
		var updatedAt int64
		if err := rows.Scan(&note.ID, &note.Title, &note.Body, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		note.UpdatedAt = nanosToTime(updatedAt)
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// DeleteNote removes a note
// Returns ErrNoteNotFound if note doesn't exist
func (s *Storage) DeleteNote(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNoteNotFound
	}

	return nil
}

// queryer общий интерфейс *sql.DB и *sql.Tx для чтения
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getNote(ctx context.Context, q queryer, id string) (*api.Note, error) {
	query := `
		SELECT id, title, body, updated_at
		FROM notes
		WHERE id = ?
	`

	note := &api.Note{}
	var updatedAt int64

	err := q.QueryRowContext(ctx, query, id).Scan(
		&note.ID,
		&note.Title,
		&note.Body,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	note.UpdatedAt = nanosToTime(updatedAt)
	return note, nil
}

func nanosToTime(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}
