package storage

import (
	"errors"
	"fmt"
)

// Common client storage errors
var (
	// ErrNoteNotFound indicates that note was not found
	ErrNoteNotFound = errors.New("note not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrStorageFault indicates that local persistence failed.
	// Every error returned by a storage implementation, except ErrNoteNotFound, wraps it.
	ErrStorageFault = errors.New("storage fault")

	// ErrSchemaVersion indicates that the database was created by an incompatible version
	ErrSchemaVersion = errors.New("unsupported schema version")
)

// Fault wraps err as a storage fault for operation op.
func Fault(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStorageFault) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorageFault, err)
}
