package service

import (
	"fmt"
)

// Step names carried by PartialFailureError and the audit rows.
const (
	StepFetchSession            = "fetch_session"
	StepFetchParticipants       = "fetch_participants"
	StepWriteSessionBackup      = "write_session_backup"
	StepWriteParticipantBackups = "write_participant_backups"
	StepDeleteParticipants      = "delete_participants"
	StepDeleteSession           = "delete_session"
	StepInsertSession           = "insert_session"
	StepInsertParticipants      = "insert_participants"
	StepCompensateSession       = "compensate_delete_session"
	StepConsumeBackup           = "consume_backup"
)

// NotFoundError: the requested session or backup does not exist.
// Safe to show to the user as-is.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// AlreadyRestoredError: restore attempted on a consumed backup.
type AlreadyRestoredError struct {
	BackupID int64
}

func (e *AlreadyRestoredError) Error() string {
	return fmt.Sprintf("backup %d has already been restored", e.BackupID)
}

// SoftDeletedError: the operation needs an active session but the
// target is soft-deleted. Hard delete is deliberately not allowed on
// soft-deleted sessions; restore them first.
type SoftDeletedError struct {
	SessionID int64
}

func (e *SoftDeletedError) Error() string {
	return fmt.Sprintf("training session %d is soft-deleted", e.SessionID)
}

// IncompleteBackupError: the backup row exists and is flagged
// restorable, but its participant snapshots are missing (leftover of a
// hard delete that aborted before destroying anything). Restoring from
// it would silently drop enrollments.
type IncompleteBackupError struct {
	BackupID int64
}

func (e *IncompleteBackupError) Error() string {
	return fmt.Sprintf("backup %d is incomplete: participant snapshots are missing", e.BackupID)
}

// PartialFailureError: destructive steps were taken but the operation
// did not fully commit. Operators may need manual follow-up; never
// reported as plain success.
type PartialFailureError struct {
	SessionID int64
	Step      string
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("partial failure on session %d at step %s: %v", e.SessionID, e.Step, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }

// StorageError wraps any data-access failure not covered above,
// including per-step timeouts.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
