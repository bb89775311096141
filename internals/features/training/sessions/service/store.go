package service

import (
	"context"
	"time"

	"traininghub_backend/internals/features/training/sessions/model"
)

// Actor identifies who performed a deletion/restore.
type Actor struct {
	ID   int64
	Name string
}

// ListSessionsQuery narrows paged session listing.
type ListSessionsQuery struct {
	Status      SessionStatus // empty = all
	WithDeleted bool          // include soft-deleted rows
	Limit       int
	Offset      int
}

// SessionStore is the live-store access the coordinator depends on.
// Implementations return *NotFoundError for missing rows and wrap all
// other failures in *StorageError.
type SessionStore interface {
	GetSession(ctx context.Context, id int64) (*model.TrainingSessionModel, error)
	InsertSession(ctx context.Context, s *model.TrainingSessionModel) error
	UpdateSessionFields(ctx context.Context, id int64, fields map[string]any) error
	DeleteSession(ctx context.Context, id int64) error
	ListSessions(ctx context.Context, q ListSessionsQuery) ([]model.TrainingSessionModel, int64, error)

	SetDeleteMarkers(ctx context.Context, id int64, deletedAt time.Time, actor Actor, reason string) error
	ClearDeleteMarkers(ctx context.Context, id int64) error

	ListParticipants(ctx context.Context, sessionID int64) ([]model.TrainingParticipantModel, error)
	InsertParticipants(ctx context.Context, ps []*model.TrainingParticipantModel) error
	DeleteParticipantsBySession(ctx context.Context, sessionID int64) error
}

// BackupStore is the backup-table access. Same error contract as
// SessionStore.
type BackupStore interface {
	InsertSessionBackup(ctx context.Context, b *model.SessionBackupModel) error
	InsertParticipantBackups(ctx context.Context, pbs []*model.ParticipantBackupModel) error
	GetSessionBackup(ctx context.Context, id int64) (*model.SessionBackupModel, error)
	ListSessionBackups(ctx context.Context, limit, offset int) ([]model.SessionBackupModel, int64, error)
	ListParticipantBackups(ctx context.Context, backupID int64) ([]model.ParticipantBackupModel, error)
	SetRestorable(ctx context.Context, backupID int64, restorable bool) error
}

// AuditRecorder persists one row per coordinator operation.
// Best-effort only: the coordinator logs and moves on when it fails.
type AuditRecorder interface {
	Record(ctx context.Context, row *model.DeletionAuditModel) error
}
