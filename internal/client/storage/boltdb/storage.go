package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophnotes/internal/client/storage"
)

// SchemaVersion is the layout version written into new databases.
const SchemaVersion uint64 = 1

var (
	// BoltDB bucket names
	bucketNotes      = []byte("notes")
	bucketByUpdated  = []byte("notes_by_updated")
	bucketTombstones = []byte("tombstones")
	bucketMetadata   = []byte("metadata")

	keySchemaVersion = []byte("schema_version")
)

// Storage represents BoltDB storage implementation for client
// Транзакции держат mu на чтение, Close берет его на запись
// и дожидается их завершения.
type Storage struct {
	db *bbolt.DB
	mu sync.RWMutex
}

var (
	_ storage.NoteStorage      = (*Storage)(nil)
	_ storage.TombstoneStorage = (*Storage)(nil)
	_ storage.MetadataStorage  = (*Storage)(nil)
)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB; таймаут не дает зависнуть, если файл держит другой процесс
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, storage.Fault("open boltdb", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets и проверяем версию схемы
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
// In-flight transactions finish first; later calls get ErrStorageClosed.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database file path
func (s *Storage) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return ""
	}
	return s.db.Path()
}

// view выполняет транзакцию чтения, если хранилище открыто
func (s *Storage) view(fn func(tx *bbolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(fn)
}

// update выполняет транзакцию записи, если хранилище открыто
func (s *Storage) update(fn func(tx *bbolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(fn)
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	err := s.update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketNotes, bucketByUpdated, bucketTombstones, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}

		meta := tx.Bucket(bucketMetadata)
		raw := meta.Get(keySchemaVersion)
		if raw == nil {
			// Новая база - записываем текущую версию схемы
			return meta.Put(keySchemaVersion, encodeUint64(SchemaVersion))
		}

		if len(raw) != 8 {
			return fmt.Errorf("%w: malformed version value", storage.ErrSchemaVersion)
		}
		if version := binary.BigEndian.Uint64(raw); version != SchemaVersion {
			return fmt.Errorf("%w: got %d, want %d", storage.ErrSchemaVersion, version, SchemaVersion)
		}

		return nil
	})

	return storage.Fault("init buckets", err)
}

func encodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
