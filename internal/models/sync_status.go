package models

import "time"

// SyncStatusState is the process-wide state of synchronization.
type SyncStatusState string

const (
	SyncStatusIdle    SyncStatusState = "idle"
	SyncStatusSyncing SyncStatusState = "syncing"
	SyncStatusError   SyncStatusState = "error"
)

// SyncStatus описывает результат последнего прохода синхронизации целиком.
// Ошибки отдельных заметок хранятся в самих заметках и сюда не попадают.
type SyncStatus struct {
	LastSync *time.Time      `json:"last_sync,omitempty"` // LastSync время последнего завершенного прохода
	State    SyncStatusState `json:"state"`
	Error    string          `json:"error,omitempty"` // Error диагностика, только для State == error
}

// IdleStatus returns an idle status carrying lastSync (may be nil).
func IdleStatus(lastSync *time.Time) SyncStatus {
	return SyncStatus{State: SyncStatusIdle, LastSync: lastSync}
}

// SyncingStatus keeps lastSync so consumers can still show it while a pass runs.
func SyncingStatus(lastSync *time.Time) SyncStatus {
	return SyncStatus{State: SyncStatusSyncing, LastSync: lastSync}
}

// ErrorStatus returns a pass-level error status.
func ErrorStatus(lastSync *time.Time, msg string) SyncStatus {
	return SyncStatus{State: SyncStatusError, LastSync: lastSync, Error: msg}
}
