package notes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophnotes/internal/client/api"
	"github.com/iudanet/gophnotes/internal/client/storage"
	"github.com/iudanet/gophnotes/internal/client/storage/boltdb"
	syncsvc "github.com/iudanet/gophnotes/internal/client/sync"
	"github.com/iudanet/gophnotes/internal/clock"
	"github.com/iudanet/gophnotes/internal/models"
)

var frozen = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

// createBoltStorage создает локальное хранилище во временном каталоге
func createBoltStorage(t *testing.T) *boltdb.Storage {
	t.Helper()

	local, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, local.Close())
	})
	return local
}

// sequentialIDs выдает предсказуемые идентификаторы n1, n2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
}

func skippingSyncer() *syncsvc.ServiceMock {
	return &syncsvc.ServiceMock{
		RunFunc: func(ctx context.Context, tracker syncsvc.Tracker) (*syncsvc.Result, error) {
			return nil, syncsvc.ErrSyncSkipped
		},
	}
}

// newTestStore собирает Store поверх bbolt с замороженными часами
func newTestStore(t *testing.T, local *boltdb.Storage, syncer syncsvc.Service) *Store {
	t.Helper()

	if syncer == nil {
		syncer = skippingSyncer()
	}
	s, err := New(context.Background(), local, local, syncer,
		WithClock(clock.NewWithSource(func() time.Time { return frozen })),
		WithIDGenerator(sequentialIDs()),
		WithLogger(testLogger()),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// newSyncingStore подключает настоящий sync.Service с моком сервера
func newSyncingStore(t *testing.T, local *boltdb.Storage, remote *syncsvc.RemoteClientMock, online bool) *Store {
	t.Helper()

	conn := &syncsvc.ConnectivityMock{OnlineFunc: func() bool { return online }}
	svc := syncsvc.NewService(remote, local, local, local, conn, syncsvc.Options{Concurrency: 2}, testLogger())
	return newTestStore(t, local, svc)
}

func okRemote() *syncsvc.RemoteClientMock {
	return &syncsvc.RemoteClientMock{
		CreateNoteFunc: func(ctx context.Context, note *models.Note) error { return nil },
		UpdateNoteFunc: func(ctx context.Context, note *models.Note) error { return nil },
		DeleteNoteFunc: func(ctx context.Context, id string) error { return nil },
	}
}

func snapshotIDs(snap Snapshot) []string {
	ids := make([]string, 0, len(snap.Notes))
	for _, n := range snap.Notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestNew_LoadsNotesAndLastSync(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)

	older := &models.Note{ID: "old", Title: "old", UpdatedAt: frozen.Add(-time.Hour), SyncState: models.SyncStateSynced}
	newer := &models.Note{ID: "new", Title: "new", UpdatedAt: frozen.Add(time.Hour), SyncState: models.SyncStatePending}
	require.NoError(t, local.SaveNote(ctx, older))
	require.NoError(t, local.SaveNote(ctx, newer))

	lastSync := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, local.SaveLastSyncTimestamp(ctx, lastSync.UnixNano()))

	s := newTestStore(t, local, nil)
	snap := s.Snapshot()

	assert.Equal(t, []string{"new", "old"}, snapshotIDs(snap))
	assert.Equal(t, models.SyncStatusIdle, snap.Status.State)
	require.NotNil(t, snap.Status.LastSync)
	assert.True(t, lastSync.Equal(*snap.Status.LastSync))
	assert.True(t, snap.Online)
	assert.Empty(t, snap.Selected)

	// Часы продолжают с самой свежей сохраненной метки
	id, err := s.Create(ctx)
	require.NoError(t, err)
	created, ok := s.Note(id)
	require.True(t, ok)
	assert.True(t, created.UpdatedAt.After(newer.UpdatedAt))
}

func TestNew_FreshStoreIsIdleWithoutLastSync(t *testing.T) {
	s := newTestStore(t, createBoltStorage(t), nil)

	snap := s.Snapshot()
	assert.Empty(t, snap.Notes)
	assert.Equal(t, models.IdleStatus(nil), snap.Status)
}

func TestNew_LoadFailure(t *testing.T) {
	local := &storage.NoteStorageMock{
		GetAllNotesFunc: func(ctx context.Context) ([]*models.Note, error) {
			return nil, storage.Fault("get all notes", errors.New("corrupt"))
		},
	}
	meta := &storage.MetadataStorageMock{}

	s, err := New(context.Background(), local, meta, skippingSyncer())
	assert.ErrorIs(t, err, storage.ErrStorageFault)
	assert.Nil(t, s)
}

func TestNew_MetadataFailureIsNotFatal(t *testing.T) {
	local := &storage.NoteStorageMock{
		GetAllNotesFunc: func(ctx context.Context) ([]*models.Note, error) { return nil, nil },
	}
	meta := &storage.MetadataStorageMock{
		GetLastSyncTimestampFunc: func(ctx context.Context) (int64, error) {
			return 0, storage.ErrStorageClosed
		},
	}

	s, err := New(context.Background(), local, meta, skippingSyncer())
	require.NoError(t, err)
	assert.Nil(t, s.Snapshot().Status.LastSync)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)
	s := newTestStore(t, local, nil)

	first, err := s.Create(ctx)
	require.NoError(t, err)
	second, err := s.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, "n1", first)
	assert.Equal(t, "n2", second)

	snap := s.Snapshot()
	// Новая заметка в начале списка
	assert.Equal(t, []string{"n2", "n1"}, snapshotIDs(snap))

	note := snap.Notes[0]
	assert.Equal(t, models.DefaultNoteTitle, note.Title)
	assert.Empty(t, note.Body)
	assert.Equal(t, models.SyncStatePending, note.SyncState)
	assert.Nil(t, note.SyncedAt)
	assert.True(t, snap.Notes[0].UpdatedAt.After(snap.Notes[1].UpdatedAt))

	// Запись сразу в локальном хранилище
	stored, err := local.GetNote(ctx, "n2")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultNoteTitle, stored.Title)
}

func TestCreate_DefaultIDIsUUID(t *testing.T) {
	local := createBoltStorage(t)
	s, err := New(context.Background(), local, local, skippingSyncer())
	require.NoError(t, err)

	id, err := s.Create(context.Background())
	require.NoError(t, err)
	assert.Len(t, id, 36)
}

func TestCreate_StorageFault_MemoryUnchanged(t *testing.T) {
	local := &storage.NoteStorageMock{
		GetAllNotesFunc: func(ctx context.Context) ([]*models.Note, error) { return nil, nil },
		SaveNoteFunc: func(ctx context.Context, note *models.Note) error {
			return storage.Fault("save note", errors.New("disk full"))
		},
	}
	meta := &storage.MetadataStorageMock{
		GetLastSyncTimestampFunc: func(ctx context.Context) (int64, error) { return 0, nil },
	}
	s, err := New(context.Background(), local, meta, skippingSyncer())
	require.NoError(t, err)

	id, err := s.Create(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageFault)
	assert.Empty(t, id)
	assert.Empty(t, s.Snapshot().Notes)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)
	s := newTestStore(t, local, nil)

	a, err := s.Create(ctx)
	require.NoError(t, err)
	_, err = s.Create(ctx)
	require.NoError(t, err)

	before, _ := s.Note(a)
	require.NoError(t, s.Update(ctx, a, models.NoteUpdate{Title: strPtr("Groceries")}))

	snap := s.Snapshot()
	assert.Equal(t, []string{"n1", "n2"}, snapshotIDs(snap), "updated note moves to the front")

	after := snap.Notes[0]
	assert.Equal(t, "Groceries", after.Title)
	assert.Empty(t, after.Body, "body untouched by partial update")
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, models.SyncStatePending, after.SyncState)

	require.NoError(t, s.Update(ctx, a, models.NoteUpdate{Body: strPtr("milk")}))
	stored, err := local.GetNote(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", stored.Title)
	assert.Equal(t, "milk", stored.Body)
}

func TestUpdate_ClearsSyncError(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)
	s := newTestStore(t, local, nil)

	id, err := s.Create(ctx)
	require.NoError(t, err)
	note, _ := s.Note(id)

	applied, err := s.MarkFailed(ctx, id, note.UpdatedAt, "network error: timeout")
	require.NoError(t, err)
	require.True(t, applied)

	require.NoError(t, s.Update(ctx, id, models.NoteUpdate{Body: strPtr("retry")}))
	note, _ = s.Note(id)
	assert.Equal(t, models.SyncStatePending, note.SyncState)
	assert.Empty(t, note.SyncError)
}

func TestUpdate_UnknownID_NoOp(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, createBoltStorage(t), nil)

	_, err := s.Create(ctx)
	require.NoError(t, err)
	before := s.Snapshot()

	require.NoError(t, s.Update(ctx, "missing", models.NoteUpdate{Title: strPtr("x")}))
	assert.Equal(t, before, s.Snapshot())
}

func TestUpdate_StorageFault_MemoryUnchanged(t *testing.T) {
	saves := 0
	local := &storage.NoteStorageMock{
		GetAllNotesFunc: func(ctx context.Context) ([]*models.Note, error) { return nil, nil },
		SaveNoteFunc: func(ctx context.Context, note *models.Note) error {
			saves++
			if saves > 1 {
				return storage.Fault("save note", errors.New("disk full"))
			}
			return nil
		},
	}
	meta := &storage.MetadataStorageMock{
		GetLastSyncTimestampFunc: func(ctx context.Context) (int64, error) { return 0, nil },
	}
	s, err := New(context.Background(), local, meta, skippingSyncer())
	require.NoError(t, err)

	id, err := s.Create(context.Background())
	require.NoError(t, err)
	before := s.Snapshot()

	err = s.Update(context.Background(), id, models.NoteUpdate{Title: strPtr("lost")})
	assert.ErrorIs(t, err, storage.ErrStorageFault)
	assert.Equal(t, before, s.Snapshot())
}

// TestUpdate_StrictlyIncreasing проверяет метки при замороженных системных часах
func TestUpdate_StrictlyIncreasing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, createBoltStorage(t), nil)

	id, err := s.Create(ctx)
	require.NoError(t, err)

	prev, _ := s.Note(id)
	for i := 0; i < 20; i++ {
		require.NoError(t, s.Update(ctx, id, models.NoteUpdate{Body: strPtr(fmt.Sprint(i))}))
		cur, _ := s.Note(id)
		require.True(t, cur.UpdatedAt.After(prev.UpdatedAt))
		prev = cur
	}
}

func TestDelete_SelectionHandling(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)
	s := newTestStore(t, local, nil)

	a, _ := s.Create(ctx)
	b, _ := s.Create(ctx)
	c, _ := s.Create(ctx)

	require.NoError(t, s.Select(a))

	// Удаление не выбранной заметки не трогает выбор
	require.NoError(t, s.Delete(ctx, b))
	snap := s.Snapshot()
	assert.Equal(t, a, snap.Selected)
	assert.Equal(t, []string{c, a}, snapshotIDs(snap))

	// Удаление выбранной заметки сбрасывает выбор
	require.NoError(t, s.Delete(ctx, a))
	snap = s.Snapshot()
	assert.Empty(t, snap.Selected)
	assert.Equal(t, []string{c}, snapshotIDs(snap))

	_, err := local.GetNote(ctx, a)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	pending, err := local.GetPendingDeletes(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, pending)
}

func TestDelete_UnknownID(t *testing.T) {
	s := newTestStore(t, createBoltStorage(t), nil)
	assert.NoError(t, s.Delete(context.Background(), "missing"))
}

func TestDelete_StorageFault(t *testing.T) {
	local := &storage.NoteStorageMock{
		GetAllNotesFunc: func(ctx context.Context) ([]*models.Note, error) {
			return []*models.Note{{ID: "a", UpdatedAt: frozen, SyncState: models.SyncStatePending}}, nil
		},
		DeleteNoteFunc: func(ctx context.Context, id string) error {
			return storage.Fault("delete note", errors.New("io"))
		},
	}
	meta := &storage.MetadataStorageMock{
		GetLastSyncTimestampFunc: func(ctx context.Context) (int64, error) { return 0, nil },
	}
	s, err := New(context.Background(), local, meta, skippingSyncer())
	require.NoError(t, err)
	require.NoError(t, s.Select("a"))

	err = s.Delete(context.Background(), "a")
	assert.ErrorIs(t, err, storage.ErrStorageFault)
	snap := s.Snapshot()
	assert.Equal(t, []string{"a"}, snapshotIDs(snap))
	assert.Equal(t, "a", snap.Selected)
}

func TestSelect(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, createBoltStorage(t), nil)
	id, _ := s.Create(ctx)

	assert.ErrorIs(t, s.Select("missing"), storage.ErrNoteNotFound)
	require.NoError(t, s.Select(id))
	assert.Equal(t, id, s.Snapshot().Selected)
	require.NoError(t, s.Select(""))
	assert.Empty(t, s.Snapshot().Selected)
}

func TestSetOnline(t *testing.T) {
	s := newTestStore(t, createBoltStorage(t), nil)

	s.SetOnline(false)
	assert.False(t, s.Snapshot().Online)
	s.SetOnline(true)
	assert.True(t, s.Snapshot().Online)
}

func TestRequestSync_Offline_Skipped(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)
	remote := okRemote()
	s := newSyncingStore(t, local, remote, false)

	_, err := s.Create(ctx)
	require.NoError(t, err)
	before := s.Snapshot().Status

	result, err := s.RequestSync(ctx)
	assert.ErrorIs(t, err, syncsvc.ErrSyncSkipped)
	assert.Nil(t, result)
	assert.Equal(t, before, s.Snapshot().Status)
	assert.Empty(t, remote.UpdateNoteCalls())
}

func TestRequestSync_NoUnsynced(t *testing.T) {
	s := newSyncingStore(t, createBoltStorage(t), okRemote(), true)

	result, err := s.RequestSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Attempted)

	status := s.Snapshot().Status
	assert.Equal(t, models.SyncStatusIdle, status.State)
	assert.NotNil(t, status.LastSync)
}

// TestRequestSync_Isolation ошибка на одной заметке не мешает остальным
func TestRequestSync_Isolation(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)
	remote := okRemote()
	remote.UpdateNoteFunc = func(ctx context.Context, note *models.Note) error {
		if note.ID == "n3" {
			return &api.RejectedError{StatusCode: http.StatusBadRequest, Message: "invalid note"}
		}
		return nil
	}
	s := newSyncingStore(t, local, remote, true)

	for i := 0; i < 5; i++ {
		_, err := s.Create(ctx)
		require.NoError(t, err)
	}

	result, err := s.RequestSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Attempted)
	assert.Equal(t, 4, result.Synced)
	assert.Equal(t, 1, result.Failed)

	snap := s.Snapshot()
	assert.Equal(t, models.SyncStatusIdle, snap.Status.State)
	for _, n := range snap.Notes {
		if n.ID == "n3" {
			assert.Equal(t, models.SyncStateError, n.SyncState)
			assert.Equal(t, "rejected by server (status 400): invalid note", n.SyncError)
			continue
		}
		assert.Equal(t, models.SyncStateSynced, n.SyncState, n.ID)
		assert.NotNil(t, n.SyncedAt)
	}

	// Локальное хранилище согласовано с памятью
	unsynced, err := local.GetUnsyncedNotes(ctx)
	require.NoError(t, err)
	require.Len(t, unsynced, 1)
	assert.Equal(t, "n3", unsynced[0].ID)
}

// TestRequestSync_StaleOverwrite заметка, измененная во время прохода, остается pending
func TestRequestSync_StaleOverwrite(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)
	remote := okRemote()

	var s *Store
	remote.UpdateNoteFunc = func(ctx context.Context, note *models.Note) error {
		// Снимок уже сделан с t0, локально появляется t1 > t0
		assert.NoError(t, s.Update(ctx, note.ID, models.NoteUpdate{Body: strPtr("edited mid-pass")}))
		return nil
	}
	s = newSyncingStore(t, local, remote, true)

	id, err := s.Create(ctx)
	require.NoError(t, err)
	t0, _ := s.Note(id)

	result, err := s.RequestSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stale)
	assert.Equal(t, 0, result.Synced)

	note, _ := s.Note(id)
	assert.True(t, note.UpdatedAt.After(t0.UpdatedAt))
	assert.Equal(t, models.SyncStatePending, note.SyncState)
	assert.Equal(t, "edited mid-pass", note.Body)

	stored, err := local.GetNote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatePending, stored.SyncState)
}

func TestRequestSync_UnsyncedAfterSyncAndUpdate(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)
	s := newSyncingStore(t, local, okRemote(), true)

	a, err := s.Create(ctx)
	require.NoError(t, err)
	_, err = s.RequestSync(ctx)
	require.NoError(t, err)

	b, err := s.Create(ctx)
	require.NoError(t, err)
	_, err = s.RequestSync(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, a, models.NoteUpdate{Title: strPtr("changed")}))

	unsynced, err := local.GetUnsyncedNotes(ctx)
	require.NoError(t, err)
	require.Len(t, unsynced, 1)
	assert.Equal(t, a, unsynced[0].ID)

	other, _ := s.Note(b)
	assert.Equal(t, models.SyncStateSynced, other.SyncState)
}

func TestRequestSync_DrainsDeletes(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)
	remote := okRemote()
	s := newSyncingStore(t, local, remote, true)

	id, _ := s.Create(ctx)
	_, err := s.RequestSync(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, id))

	result, err := s.RequestSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Deleted)

	deletes := remote.DeleteNoteCalls()
	require.Len(t, deletes, 1)
	assert.Equal(t, id, deletes[0].ID)

	pending, err := local.GetPendingDeletes(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestMarkSynced_CompareAndSet(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)
	s := newTestStore(t, local, nil)

	id, _ := s.Create(ctx)
	note, _ := s.Note(id)
	syncedAt := frozen.Add(time.Minute)

	// Чужой снимок не применяется
	applied, err := s.MarkSynced(ctx, id, note.UpdatedAt.Add(-time.Nanosecond), syncedAt)
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = s.MarkSynced(ctx, "missing", note.UpdatedAt, syncedAt)
	require.NoError(t, err)
	assert.False(t, applied)

	applied, err = s.MarkSynced(ctx, id, note.UpdatedAt, syncedAt)
	require.NoError(t, err)
	assert.True(t, applied)

	got, _ := s.Note(id)
	assert.Equal(t, models.SyncStateSynced, got.SyncState)
	require.NotNil(t, got.SyncedAt)
	assert.True(t, syncedAt.Equal(*got.SyncedAt))
	assert.True(t, note.UpdatedAt.Equal(got.UpdatedAt), "marks never touch UpdatedAt")

	stored, err := local.GetNote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateSynced, stored.SyncState)
}

func TestMarkFailed_WriteThrough(t *testing.T) {
	ctx := context.Background()
	local := createBoltStorage(t)
	s := newTestStore(t, local, nil)

	id, _ := s.Create(ctx)
	note, _ := s.Note(id)

	applied, err := s.MarkFailed(ctx, id, note.UpdatedAt, "network error: refused")
	require.NoError(t, err)
	assert.True(t, applied)

	stored, err := local.GetNote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateError, stored.SyncState)
	assert.Equal(t, "network error: refused", stored.SyncError)
}

func TestSetSyncStatus(t *testing.T) {
	s := newTestStore(t, createBoltStorage(t), nil)

	s.SetSyncStatus(models.ErrorStatus(nil, "boom"))
	assert.Equal(t, models.ErrorStatus(nil, "boom"), s.Snapshot().Status)
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, createBoltStorage(t), nil)

	ch, cancel := s.Subscribe()

	// Первым приходит текущее состояние
	initial := <-ch
	assert.Empty(t, initial.Notes)

	_, err := s.Create(ctx)
	require.NoError(t, err)
	snap := <-ch
	assert.Len(t, snap.Notes, 1)

	// Медленный подписчик видит только последний снимок
	_, _ = s.Create(ctx)
	_, _ = s.Create(ctx)
	s.SetOnline(false)
	latest := <-ch
	assert.Len(t, latest.Notes, 3)
	assert.False(t, latest.Online)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected snapshot: %+v", extra)
	default:
	}

	cancel()
	_, ok := <-ch
	assert.False(t, ok)
	// Повторная отмена безопасна
	cancel()
}

func TestSubscribe_SnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, createBoltStorage(t), nil)
	id, _ := s.Create(ctx)

	snap := s.Snapshot()
	snap.Notes[0].Title = "mutated"

	note, _ := s.Note(id)
	assert.Equal(t, models.DefaultNoteTitle, note.Title)
}

func TestClose(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, createBoltStorage(t), nil)
	ch, _ := s.Subscribe()
	<-ch

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, ok := <-ch
	assert.False(t, ok)

	_, err := s.Create(ctx)
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Update(ctx, "n1", models.NoteUpdate{}), ErrStoreClosed)
	assert.ErrorIs(t, s.Delete(ctx, "n1"), ErrStoreClosed)
	_, err = s.RequestSync(ctx)
	assert.ErrorIs(t, err, ErrStoreClosed)

	late, _ := s.Subscribe()
	_, ok = <-late
	assert.False(t, ok)
}

func TestStore_RestartRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "notes.db")

	local, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	s, err := New(ctx, local, local, skippingSyncer(), WithIDGenerator(sequentialIDs()))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		id, err := s.Create(ctx)
		require.NoError(t, err)
		require.NoError(t, s.Update(ctx, id, models.NoteUpdate{Body: strPtr("body " + id)}))
	}
	want := snapshotIDs(s.Snapshot())
	require.NoError(t, s.Close())
	require.NoError(t, local.Close())

	reopened, err := boltdb.New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	s2, err := New(ctx, reopened, reopened, skippingSyncer())
	require.NoError(t, err)
	defer func() {
		_ = s2.Close()
	}()

	snap := s2.Snapshot()
	assert.Equal(t, want, snapshotIDs(snap))
	for _, n := range snap.Notes {
		assert.Equal(t, "body "+n.ID, n.Body)
		assert.Equal(t, models.SyncStatePending, n.SyncState)
	}
}
