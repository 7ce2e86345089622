package models

import "time"

// DefaultNoteTitle заголовок новой заметки
const DefaultNoteTitle = "Untitled Note"

// SyncState describes where a note stands relative to the remote service.
type SyncState string

const (
	SyncStatePending SyncState = "pending" // есть локальные изменения, не подтвержденные сервером
	SyncStateSynced  SyncState = "synced"  // сервер подтвердил именно эту версию
	SyncStateError   SyncState = "error"   // последняя попытка синхронизации провалилась
)

// Note представляет заметку пользователя вместе с метаданными синхронизации.
type Note struct {
	UpdatedAt time.Time  `json:"updated_at"`           // UpdatedAt время последнего локального изменения
	SyncedAt  *time.Time `json:"synced_at,omitempty"`  // SyncedAt время последнего успешного push на сервер
	ID        string     `json:"id"`                   // ID уникальный идентификатор (UUID), генерируется на клиенте
	Title     string     `json:"title"`                // Title заголовок заметки
	Body      string     `json:"body"`                 // Body текст заметки
	SyncState SyncState  `json:"sync_state"`           // SyncState состояние синхронизации
	SyncError string     `json:"sync_error,omitempty"` // SyncError диагностика последней неудачной попытки
}

// NoteUpdate carries a partial update; nil fields are left untouched.
type NoteUpdate struct {
	Title *string
	Body  *string
}

// IsNewerThan reports whether n was modified after other (last-writer-wins).
// Equal timestamps are not newer, so re-sending the same version is a no-op.
func (n *Note) IsNewerThan(other *Note) bool {
	return n.UpdatedAt.After(other.UpdatedAt)
}

// Clone создает копию заметки
func (n *Note) Clone() *Note {
	clone := *n
	if n.SyncedAt != nil {
		syncedAt := *n.SyncedAt
		clone.SyncedAt = &syncedAt
	}
	return &clone
}

// Apply merges the non-nil fields of upd into the note.
// Sync metadata is not touched.
func (n *Note) Apply(upd NoteUpdate) {
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Body != nil {
		n.Body = *upd.Body
	}
}
