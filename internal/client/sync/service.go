package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	gosync "sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/iudanet/gophnotes/internal/client/api"
	"github.com/iudanet/gophnotes/internal/client/storage"
	"github.com/iudanet/gophnotes/internal/models"
)

// DefaultConcurrency ограничивает число одновременных запросов к серверу за проход
const DefaultConcurrency = 4

// ErrSyncSkipped возвращается, когда проход не запускался из-за отсутствия сети.
// Это не ошибка синхронизации: SyncStatus не меняется.
var ErrSyncSkipped = errors.New("sync skipped: offline")

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс для sync.Service
type Service interface {
	// Run выполняет один проход синхронизации
	Run(ctx context.Context, tracker Tracker) (*Result, error)

	// GetPendingSyncCount возвращает количество изменений, ожидающих синхронизации
	GetPendingSyncCount(ctx context.Context) (int, error)
}

//go:generate moq -out remote_mock.go . RemoteClient

// RemoteClient is the part of the remote service a pass talks to.
type RemoteClient interface {
	CreateNote(ctx context.Context, note *models.Note) error
	UpdateNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, id string) error
}

//go:generate moq -out connectivity_mock.go . Connectivity

// Connectivity reports whether the remote service is believed reachable.
type Connectivity interface {
	Online() bool
}

//go:generate moq -out tracker_mock.go . Tracker

// Tracker applies pass outcomes to the owner of note state.
// Mark methods are compare-and-set on UpdatedAt: they report false and
// change nothing when the note was modified (or deleted) after snapshot.
type Tracker interface {
	SetSyncStatus(status models.SyncStatus)
	MarkSynced(ctx context.Context, id string, snapshot, syncedAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, id string, snapshot time.Time, diagnostic string) (bool, error)
}

// Options tunes a pass.
type Options struct {
	// Concurrency число заметок, отправляемых одновременно; <= 0 означает DefaultConcurrency
	Concurrency int
	// ExplicitCreate отправляет ранее не синхронизированные заметки через CreateNote
	ExplicitCreate bool
}

// Result contains sync pass results
type Result struct {
	Attempted int // количество заметок в снимке
	Synced    int // подтверждены сервером и помечены synced
	Failed    int // ошибка сервера, сети или локального хранилища
	Stale     int // заметка изменилась во время прохода, результат отброшен
	Deleted   int // подтвержденные удаления на сервере
}

type service struct {
	remote       RemoteClient
	notes        storage.NoteStorage
	tombstones   storage.TombstoneStorage
	metadata     storage.MetadataStorage
	connectivity Connectivity
	logger       *slog.Logger
	now          func() time.Time
	inflight     *flight
	group        singleflight.Group
	opts         Options
	mu           gosync.Mutex
}

// flight общий проход и число вызовов, которые его ждут
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	waiters int
}

const passKey = "pass"

// NewService creates a new sync service. connectivity may be nil, in which
// case the remote is assumed reachable.
func NewService(
	remote RemoteClient,
	notes storage.NoteStorage,
	tombstones storage.TombstoneStorage,
	metadata storage.MetadataStorage,
	connectivity Connectivity,
	opts Options,
	logger *slog.Logger,
) Service {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	return &service{
		remote:       remote,
		notes:        notes,
		tombstones:   tombstones,
		metadata:     metadata,
		connectivity: connectivity,
		opts:         opts,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Run performs one reconciliation pass.
// Concurrent callers share the result of the pass already in flight. The
// shared pass does not inherit any single caller's cancellation: a caller
// whose ctx ends gets ctx.Err() back right away, and the pass is cancelled
// only when every caller waiting on it has gone.
func (s *service) Run(ctx context.Context, tracker Tracker) (*Result, error) {
	if s.connectivity != nil && !s.connectivity.Online() {
		s.logger.Debug("Sync skipped: offline")
		return nil, ErrSyncSkipped
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sync interrupted: %w", err)
	}

	f, ch := s.join(ctx, tracker)

	select {
	case res := <-ch:
		s.leave(f)
		if res.Shared {
			s.logger.Debug("Joined in-flight sync pass")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Result), nil

	case <-ctx.Done():
		if s.leave(f) {
			// Последний ожидающий отменил проход: дожидаемся его остановки
			<-ch
		}
		return nil, fmt.Errorf("sync interrupted: %w", ctx.Err())
	}
}

// join присоединяет вызов к текущему проходу или запускает новый.
// Уже отмененный проход не подхватывается: ждем его завершения.
func (s *service) join(ctx context.Context, tracker Tracker) (*flight, <-chan singleflight.Result) {
	for {
		s.mu.Lock()
		f := s.inflight
		if f != nil && f.ctx.Err() != nil {
			s.mu.Unlock()
			<-f.done
			continue
		}
		if f == nil {
			passCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
			f = &flight{ctx: passCtx, cancel: cancel, done: make(chan struct{})}
			s.inflight = f
		}
		f.waiters++

		// DoChan не блокирует, поэтому вызов под мьютексом безопасен
		ch := s.group.DoChan(passKey, func() (interface{}, error) {
			defer s.finish(f)
			return s.run(f.ctx, tracker)
		})
		s.mu.Unlock()
		return f, ch
	}
}

// leave снимает ожидающего; возвращает true, если проход отменен
func (s *service) leave(f *flight) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.waiters--
	if f.waiters == 0 && f.ctx.Err() == nil && s.inflight == f {
		f.cancel()
		return true
	}
	return false
}

// finish вызывается по завершении прохода. Forget под мьютексом гарантирует,
// что следующий join начнет новый проход с новым flight.
func (s *service) finish(f *flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight == f {
		s.inflight = nil
	}
	s.group.Forget(passKey)
	f.cancel()
	close(f.done)
}

func (s *service) run(ctx context.Context, tracker Tracker) (*Result, error) {
	lastSync := s.lastSync(ctx)
	tracker.SetSyncStatus(models.SyncingStatus(lastSync))

	s.logger.Info("Starting synchronization")

	notes, err := s.notes.GetUnsyncedNotes(ctx)
	if err != nil {
		s.logger.Error("Failed to get unsynced notes", "error", err)
		tracker.SetSyncStatus(models.ErrorStatus(lastSync, err.Error()))
		return nil, fmt.Errorf("failed to get unsynced notes: %w", err)
	}

	result := &Result{Attempted: len(notes)}
	var synced, failed, stale atomic.Int32

	g := new(errgroup.Group)
	g.SetLimit(s.opts.Concurrency)
	for _, note := range notes {
		g.Go(func() error {
			switch s.pushNote(ctx, tracker, note) {
			case outcomeSynced:
				synced.Add(1)
			case outcomeStale:
				stale.Add(1)
			default:
				failed.Add(1)
			}
			// Ошибка одной заметки не прерывает остальные
			return nil
		})
	}
	_ = g.Wait()

	result.Synced = int(synced.Load())
	result.Failed = int(failed.Load())
	result.Stale = int(stale.Load())

	if err := ctx.Err(); err != nil {
		s.logger.Error("Synchronization interrupted", "error", err)
		tracker.SetSyncStatus(models.ErrorStatus(lastSync, "sync interrupted: "+err.Error()))
		return nil, fmt.Errorf("sync interrupted: %w", err)
	}

	result.Deleted = s.drainDeletes(ctx)

	finished := s.now()
	tracker.SetSyncStatus(models.IdleStatus(&finished))

	// Не прерываем синхронизацию из-за ошибки сохранения timestamp
	if err := s.metadata.SaveLastSyncTimestamp(ctx, finished.UnixNano()); err != nil {
		s.logger.Warn("Failed to save last sync timestamp", "error", err)
	}

	s.logger.Info("Synchronization completed",
		"attempted", result.Attempted,
		"synced", result.Synced,
		"failed", result.Failed,
		"stale", result.Stale,
		"deleted", result.Deleted)

	return result, nil
}

type outcome int

const (
	outcomeFailed outcome = iota
	outcomeSynced
	outcomeStale
)

// pushNote отправляет одну заметку и применяет результат через tracker
func (s *service) pushNote(ctx context.Context, tracker Tracker, note *models.Note) outcome {
	snapshot := note.UpdatedAt

	var err error
	if s.opts.ExplicitCreate && note.SyncedAt == nil {
		err = s.remote.CreateNote(ctx, note)
		// 409: сервер уже принял заметку раньше, но отметка synced не сохранилась
		if api.IsRejected(err, http.StatusConflict) {
			s.logger.Debug("Note already exists on server, updating", "note_id", note.ID)
			err = s.remote.UpdateNote(ctx, note)
		}
	} else {
		err = s.remote.UpdateNote(ctx, note)
	}

	if err != nil {
		if ctx.Err() != nil {
			// Проход отменен: заметка остается pending
			return outcomeFailed
		}
		diag := Diagnostic(err)
		s.logger.Warn("Failed to sync note", "note_id", note.ID, "error", diag)

		applied, markErr := tracker.MarkFailed(ctx, note.ID, snapshot, diag)
		if markErr != nil {
			s.logger.Warn("Failed to record sync failure", "note_id", note.ID, "error", markErr)
		} else if !applied {
			return outcomeStale
		}
		return outcomeFailed
	}

	applied, err := tracker.MarkSynced(ctx, note.ID, snapshot, s.now())
	if err != nil {
		s.logger.Warn("Failed to mark note synced", "note_id", note.ID, "error", err)
		return outcomeFailed
	}
	if !applied {
		s.logger.Debug("Note changed during sync, left pending", "note_id", note.ID)
		return outcomeStale
	}

	s.logger.Debug("Note synced", "note_id", note.ID)
	return outcomeSynced
}

// drainDeletes отправляет на сервер удаления, сделанные локально.
// Неудачные удаления остаются в tombstones до следующего прохода.
func (s *service) drainDeletes(ctx context.Context) int {
	ids, err := s.tombstones.GetPendingDeletes(ctx)
	if err != nil {
		s.logger.Warn("Failed to get pending deletes", "error", err)
		return 0
	}

	var deleted atomic.Int32
	g := new(errgroup.Group)
	g.SetLimit(s.opts.Concurrency)
	for _, id := range ids {
		g.Go(func() error {
			if err := s.remote.DeleteNote(ctx, id); err != nil {
				s.logger.Warn("Failed to delete note on server", "note_id", id, "error", Diagnostic(err))
				return nil
			}
			if err := s.tombstones.ClearPendingDelete(ctx, id); err != nil {
				s.logger.Warn("Failed to clear pending delete", "note_id", id, "error", err)
				return nil
			}
			deleted.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(deleted.Load())
}

// lastSync читает время последнего прохода; ошибка не мешает синхронизации
func (s *service) lastSync(ctx context.Context) *time.Time {
	ts, err := s.metadata.GetLastSyncTimestamp(ctx)
	if err != nil {
		s.logger.Warn("Failed to get last sync timestamp", "error", err)
		return nil
	}
	if ts == 0 {
		return nil
	}
	t := time.Unix(0, ts).UTC()
	return &t
}

// GetPendingSyncCount возвращает количество заметок и удалений, ожидающих синхронизации
func (s *service) GetPendingSyncCount(ctx context.Context) (int, error) {
	notes, err := s.notes.GetUnsyncedNotes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get unsynced notes: %w", err)
	}

	ids, err := s.tombstones.GetPendingDeletes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending deletes: %w", err)
	}

	return len(notes) + len(ids), nil
}

// Diagnostic renders a remote failure for SyncError:
// "network error: ..." or "rejected by server (status N): ...".
func Diagnostic(err error) string {
	var rejected *api.RejectedError
	if errors.As(err, &rejected) {
		return rejected.Error()
	}

	msg := err.Error()
	if errors.Is(err, api.ErrNetwork) {
		if i := strings.Index(msg, api.ErrNetwork.Error()); i >= 0 {
			return msg[i:]
		}
		return api.ErrNetwork.Error() + ": " + msg
	}
	return msg
}
