package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophnotes/internal/client/storage"
)

const (
	keyLastSyncTimestamp = "last_sync_timestamp"
)

// SaveLastSyncTimestamp saves the time of the last completed sync pass
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Сохраняем timestamp
		if err := bucket.Put([]byte(keyLastSyncTimestamp), encodeUint64(uint64(timestamp))); err != nil {
			return fmt.Errorf("failed to save last sync timestamp: %w", err)
		}

		return nil
	})

	return storage.Fault("save last sync timestamp", err)
}

// GetLastSyncTimestamp retrieves the time of the last completed sync pass
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	var timestamp int64

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		timestampBytes := bucket.Get([]byte(keyLastSyncTimestamp))
		if timestampBytes == nil {
			// Если timestamp не найден, возвращаем 0 (первая синхронизация)
			return nil
		}

		// Конвертируем bytes в int64
		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	if err != nil {
		return 0, storage.Fault("get last sync timestamp", err)
	}

	return timestamp, nil
}
