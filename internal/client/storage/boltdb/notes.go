package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophnotes/internal/client/storage"
	"github.com/iudanet/gophnotes/internal/models"
)

// SaveNote stores or replaces a note and keeps the updated_at index in step
func (s *Storage) SaveNote(ctx context.Context, note *models.Note) error {
	// Сериализуем note в JSON
	data, err := json.Marshal(note)
	if err != nil {
		return storage.Fault("marshal note", err)
	}

	err = s.update(func(tx *bbolt.Tx) error {
		notes := tx.Bucket(bucketNotes)
		index := tx.Bucket(bucketByUpdated)

		// Если запись уже есть - удаляем старый ключ индекса
		if existing := notes.Get([]byte(note.ID)); existing != nil {
			var old models.Note
			if err := json.Unmarshal(existing, &old); err != nil {
				return fmt.Errorf("failed to unmarshal existing note: %w", err)
			}
			if err := index.Delete(indexKey(old.UpdatedAt, old.ID)); err != nil {
				return fmt.Errorf("failed to delete index key: %w", err)
			}
		}

		if err := notes.Put([]byte(note.ID), data); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}
		if err := index.Put(indexKey(note.UpdatedAt, note.ID), []byte(note.ID)); err != nil {
			return fmt.Errorf("failed to save index key: %w", err)
		}

		// Заметка с этим ID снова существует - удаление на сервере больше не нужно
		return tx.Bucket(bucketTombstones).Delete([]byte(note.ID))
	})

	return storage.Fault("save note", err)
}

// GetNote retrieves a note by ID
func (s *Storage) GetNote(ctx context.Context, id string) (*models.Note, error) {
	var note *models.Note

	err := s.view(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketNotes).Get([]byte(id))
		if data == nil {
			return storage.ErrNoteNotFound
		}

		// Десериализуем
		note = &models.Note{}
		if err := json.Unmarshal(data, note); err != nil {
			return fmt.Errorf("failed to unmarshal note: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			return nil, err
		}
		return nil, storage.Fault("get note", err)
	}

	return note, nil
}

// GetAllNotes returns all notes, most recently updated first
func (s *Storage) GetAllNotes(ctx context.Context) ([]*models.Note, error) {
	return s.scan(ctx, "get all notes", func(*models.Note) bool { return true })
}

// GetUnsyncedNotes returns notes that still need to reach the server
func (s *Storage) GetUnsyncedNotes(ctx context.Context) ([]*models.Note, error) {
	return s.scan(ctx, "get unsynced notes", func(n *models.Note) bool {
		return n.SyncState != models.SyncStateSynced
	})
}

// scan обходит индекс по updated_at от новых к старым
func (s *Storage) scan(ctx context.Context, op string, keep func(*models.Note) bool) ([]*models.Note, error) {
	notes := make([]*models.Note, 0)

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketNotes)
		c := tx.Bucket(bucketByUpdated).Cursor()

		for k, id := c.Last(); k != nil; k, id = c.Prev() {
			if err := ctx.Err(); err != nil {
				return err
			}

			data := bucket.Get(id)
			if data == nil {
				return fmt.Errorf("index points to missing note %q", id)
			}

			var note models.Note
			if err := json.Unmarshal(data, &note); err != nil {
				return fmt.Errorf("failed to unmarshal note: %w", err)
			}

			if keep(&note) {
				notes = append(notes, &note)
			}
		}

		return nil
	})

	if err != nil {
		return nil, storage.Fault(op, err)
	}

	return notes, nil
}

// DeleteNote removes a note and records a tombstone for the remote delete
func (s *Storage) DeleteNote(ctx context.Context, id string) error {
	err := s.update(func(tx *bbolt.Tx) error {
		notes := tx.Bucket(bucketNotes)

		data := notes.Get([]byte(id))
		if data == nil {
			// Нет записи - удалять нечего
			return nil
		}

		var note models.Note
		if err := json.Unmarshal(data, &note); err != nil {
			return fmt.Errorf("failed to unmarshal note: %w", err)
		}

		if err := tx.Bucket(bucketByUpdated).Delete(indexKey(note.UpdatedAt, note.ID)); err != nil {
			return fmt.Errorf("failed to delete index key: %w", err)
		}
		if err := notes.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}

		deletedAt := encodeUint64(uint64(time.Now().UnixNano()))
		if err := tx.Bucket(bucketTombstones).Put([]byte(id), deletedAt); err != nil {
			return fmt.Errorf("failed to save tombstone: %w", err)
		}

		return nil
	})

	return storage.Fault("delete note", err)
}

// GetPendingDeletes returns IDs of notes deleted locally but not yet on the server
func (s *Storage) GetPendingDeletes(ctx context.Context) ([]string, error) {
	var ids []string

	err := s.view(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTombstones).ForEach(func(k, _ []byte) error {
			ids = append(ids, string(k))
			return nil
		})
	})

	if err != nil {
		return nil, storage.Fault("get pending deletes", err)
	}

	return ids, nil
}

// ClearPendingDelete removes a tombstone
func (s *Storage) ClearPendingDelete(ctx context.Context, id string) error {
	err := s.update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTombstones).Delete([]byte(id))
	})

	return storage.Fault("clear pending delete", err)
}

// indexKey строит ключ вторичного индекса: 8 байт времени (big-endian) + ID.
// Знаковый бит инвертирован, чтобы время до 1970 года тоже сортировалось правильно.
func indexKey(ts time.Time, id string) []byte {
	key := make([]byte, 8+len(id))
	binary.BigEndian.PutUint64(key, uint64(ts.UnixNano())^(1<<63))
	copy(key[8:], id)
	return key
}
