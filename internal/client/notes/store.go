package notes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophnotes/internal/client/storage"
	syncsvc "github.com/iudanet/gophnotes/internal/client/sync"
	"github.com/iudanet/gophnotes/internal/clock"
	"github.com/iudanet/gophnotes/internal/models"
)

// ErrStoreClosed returned by commands issued after Close.
var ErrStoreClosed = errors.New("record store is closed")

// Snapshot is a read-only view of the store state at one moment.
// Notes are copies ordered by UpdatedAt descending.
type Snapshot struct {
	Status   models.SyncStatus
	Selected string
	Notes    []*models.Note
	Online   bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used for UpdatedAt.
func WithClock(c *clock.MonotonicClock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithIDGenerator overrides UUID generation for new notes.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithOnline sets the initial connectivity flag (default true).
func WithOnline(online bool) Option {
	return func(s *Store) {
		s.online = online
	}
}

// Store is the single owner of in-memory note state.
// Every mutation is written to the local storage before it becomes visible.
type Store struct {
	local  storage.NoteStorage
	syncer syncsvc.Service
	clock  *clock.MonotonicClock
	logger *slog.Logger
	newID  func() string

	subs     map[int]chan Snapshot
	notes    []*models.Note // от новых к старым
	status   models.SyncStatus
	selected string
	nextSub  int
	mu       sync.Mutex
	online   bool
	closed   bool
}

var _ syncsvc.Tracker = (*Store)(nil)

// New loads all notes from local storage and restores the last sync time.
func New(
	ctx context.Context,
	local storage.NoteStorage,
	metadata storage.MetadataStorage,
	syncer syncsvc.Service,
	opts ...Option,
) (*Store, error) {
	s := &Store{
		local:  local,
		syncer: syncer,
		clock:  clock.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID:  func() string { return uuid.New().String() },
		subs:   make(map[int]chan Snapshot),
		online: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	notes, err := local.GetAllNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	s.notes = notes

	// Метки после перезапуска не должны быть меньше сохраненных
	for _, n := range notes {
		s.clock.Observe(n.UpdatedAt)
	}

	var lastSync *time.Time
	ts, err := metadata.GetLastSyncTimestamp(ctx)
	if err != nil {
		s.logger.Warn("Failed to get last sync timestamp", "error", err)
	} else if ts != 0 {
		t := time.Unix(0, ts).UTC()
		lastSync = &t
	}
	s.status = models.IdleStatus(lastSync)

	s.logger.Debug("Record store loaded", "notes", len(notes))

	return s, nil
}

// Create adds an empty pending note and returns its ID.
func (s *Store) Create(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrStoreClosed
	}

	note := &models.Note{
		ID:        s.newID(),
		Title:     models.DefaultNoteTitle,
		UpdatedAt: s.clock.Tick(),
		SyncState: models.SyncStatePending,
	}
	if err := s.local.SaveNote(ctx, note); err != nil {
		return "", fmt.Errorf("failed to save note: %w", err)
	}

	s.notes = append([]*models.Note{note}, s.notes...)
	s.publishLocked()

	s.logger.Debug("Note created", "note_id", note.ID)
	return note.ID, nil
}

// Update merges upd into the note, makes it pending and moves it to the
// front. Updating an unknown ID is a no-op.
func (s *Store) Update(ctx context.Context, id string, upd models.NoteUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil
	}

	next := s.notes[idx].Clone()
	next.Apply(upd)
	next.UpdatedAt = s.clock.Tick()
	next.SyncState = models.SyncStatePending
	next.SyncError = ""

	if err := s.local.SaveNote(ctx, next); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	// Самая свежая заметка всегда в начале
	rest := append(s.notes[:idx:idx], s.notes[idx+1:]...)
	s.notes = append([]*models.Note{next}, rest...)
	s.publishLocked()

	s.logger.Debug("Note updated", "note_id", id)
	return nil
}

// Delete removes the note and clears the selection if it pointed at it.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if err := s.local.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if idx := s.indexLocked(id); idx >= 0 {
		s.notes = append(s.notes[:idx:idx], s.notes[idx+1:]...)
	}
	if s.selected == id {
		s.selected = ""
	}
	s.publishLocked()

	s.logger.Debug("Note deleted", "note_id", id)
	return nil
}

// Select makes id the current selection; an empty id clears it.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && s.indexLocked(id) < 0 {
		return storage.ErrNoteNotFound
	}
	if s.selected == id {
		return nil
	}
	s.selected = id
	s.publishLocked()
	return nil
}

// SetOnline mirrors the connectivity signal into snapshots.
func (s *Store) SetOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.online == online {
		return
	}
	s.online = online
	s.publishLocked()
}

// RequestSync runs a sync pass. sync.ErrSyncSkipped is returned unchanged
// and leaves the sync status as it was.
func (s *Store) RequestSync(ctx context.Context) (*syncsvc.Result, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, ErrStoreClosed
	}

	// Мьютекс не удерживается во время сетевых запросов
	return s.syncer.Run(ctx, s)
}

// Note returns a copy of the note with the given ID.
func (s *Store) Note(id string) (*models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, false
	}
	return s.notes[idx].Clone(), true
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Subscribe returns a channel receiving a snapshot after every state change,
// starting with the current one. A slow reader only sees the latest
// snapshot. The channel is closed by cancel or Close.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	ch <- s.snapshotLocked()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

// Close detaches all subscribers. The local storage is owned by the caller.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	return nil
}

// SetSyncStatus implements sync.Tracker.
func (s *Store) SetSyncStatus(status models.SyncStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = status
	s.publishLocked()
}

// MarkSynced implements sync.Tracker.
func (s *Store) MarkSynced(ctx context.Context, id string, snapshot, syncedAt time.Time) (bool, error) {
	return s.mark(ctx, id, snapshot, func(n *models.Note) {
		n.SyncState = models.SyncStateSynced
		n.SyncError = ""
		n.SyncedAt = &syncedAt
	})
}

// MarkFailed implements sync.Tracker.
func (s *Store) MarkFailed(ctx context.Context, id string, snapshot time.Time, diagnostic string) (bool, error) {
	return s.mark(ctx, id, snapshot, func(n *models.Note) {
		n.SyncState = models.SyncStateError
		n.SyncError = diagnostic
	})
}

// mark применяет результат синхронизации, только если заметка не менялась
// с момента снимка (compare-and-set по UpdatedAt)
func (s *Store) mark(ctx context.Context, id string, snapshot time.Time, apply func(*models.Note)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrStoreClosed
	}

	idx := s.indexLocked(id)
	if idx < 0 || !s.notes[idx].UpdatedAt.Equal(snapshot) {
		return false, nil
	}

	next := s.notes[idx].Clone()
	apply(next)
	if err := s.local.SaveNote(ctx, next); err != nil {
		return false, fmt.Errorf("failed to save sync outcome: %w", err)
	}

	// UpdatedAt не меняется, позиция в списке остается прежней
	s.notes[idx] = next
	s.publishLocked()
	return true, nil
}

func (s *Store) indexLocked(id string) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() Snapshot {
	notes := make([]*models.Note, len(s.notes))
	for i, n := range s.notes {
		notes[i] = n.Clone()
	}
	status := s.status
	if status.LastSync != nil {
		lastSync := *status.LastSync
		status.LastSync = &lastSync
	}
	return Snapshot{
		Notes:    notes,
		Selected: s.selected,
		Status:   status,
		Online:   s.online,
	}
}

// publishLocked рассылает новый снимок, вытесняя непрочитанный
func (s *Store) publishLocked() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}
