package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophnotes/internal/server/storage"
	"github.com/iudanet/gophnotes/pkg/api"
)

var base = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func newNote(title string, updatedAt time.Time) *api.Note {
	return &api.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      "body of " + title,
		UpdatedAt: updatedAt,
	}
}

func TestNoteStorage_CreateNote(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	note := newNote("first", base)
	require.NoError(t, s.CreateNote(ctx, note))

	got, err := s.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.ID, got.ID)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, "body of first", got.Body)
	assert.True(t, base.Equal(got.UpdatedAt))

	// Повторное создание с тем же ID отклоняется и не меняет запись
	dup := &api.Note{ID: note.ID, Title: "other", UpdatedAt: base.Add(time.Hour)}
	err = s.CreateNote(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrNoteExists)

	got, err = s.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
}

func TestNoteStorage_UpsertNote_LastWriterWins(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	note := newNote("v1", base)

	tests := []struct {
		name        string
		title       string
		updatedAt   time.Time
		wantTitle   string
		wantApplied bool
	}{
		{name: "insert new", title: "v1", updatedAt: base, wantTitle: "v1", wantApplied: true},
		{name: "newer wins", title: "v2", updatedAt: base.Add(time.Second), wantTitle: "v2", wantApplied: true},
		{name: "older loses", title: "stale", updatedAt: base, wantTitle: "v2", wantApplied: false},
		{name: "equal is no-op", title: "same time", updatedAt: base.Add(time.Second), wantTitle: "v2", wantApplied: false},
		{name: "nanosecond newer wins", title: "v3", updatedAt: base.Add(time.Second + time.Nanosecond), wantTitle: "v3", wantApplied: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incoming := &api.Note{ID: note.ID, Title: tt.title, UpdatedAt: tt.updatedAt}

			stored, applied, err := s.UpsertNote(ctx, incoming)
			require.NoError(t, err)
			assert.Equal(t, tt.wantApplied, applied)
			assert.Equal(t, tt.wantTitle, stored.Title)

			got, err := s.GetNote(ctx, note.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, got.Title)
		})
	}
}

func TestNoteStorage_ListNotes(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Пустая таблица возвращает пустой слайс, не nil
	notes, err := s.ListNotes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)

	oldest := newNote("oldest", base)
	newest := newNote("newest", base.Add(2*time.Minute))
	middle := newNote("middle", base.Add(time.Minute))
	for _, n := range []*api.Note{oldest, newest, middle} {
		_, _, err := s.UpsertNote(ctx, n)
		require.NoError(t, err)
	}

	notes, err = s.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "newest", notes[0].Title)
	assert.Equal(t, "middle", notes[1].Title)
	assert.Equal(t, "oldest", notes[2].Title)
}

func TestNoteStorage_DeleteNote(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	note := newNote("to delete", base)
	require.NoError(t, s.CreateNote(ctx, note))

	require.NoError(t, s.DeleteNote(ctx, note.ID))

	_, err := s.GetNote(ctx, note.ID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	err = s.DeleteNote(ctx, note.ID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestNoteStorage_GetNote_NotFound(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetNote(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestStorage_PingAndClose(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Close())
	assert.Error(t, s.Ping(ctx))
}

func TestStorage_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "server.db")

	s, err := New(ctx, path)
	require.NoError(t, err)
	note := newNote("durable", base)
	require.NoError(t, s.CreateNote(ctx, note))
	require.NoError(t, s.Close())

	// Повторный запуск миграций на существующей базе ничего не ломает
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "durable", got.Title)
	assert.True(t, base.Equal(got.UpdatedAt))
}
