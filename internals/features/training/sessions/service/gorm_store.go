package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"traininghub_backend/internals/features/training/sessions/model"
)

/* =========================================================
   GORM-backed SessionStore
   ========================================================= */

type GormSessionStore struct {
	DB *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{DB: db}
}

func (s *GormSessionStore) GetSession(ctx context.Context, id int64) (*model.TrainingSessionModel, error) {
	var m model.TrainingSessionModel
	err := s.DB.WithContext(ctx).
		Where("training_session_id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "training session", ID: id}
		}
		return nil, &StorageError{Op: "get session", Err: err}
	}
	return &m, nil
}

func (s *GormSessionStore) InsertSession(ctx context.Context, m *model.TrainingSessionModel) error {
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return &StorageError{Op: "insert session", Err: err}
	}
	return nil
}

func (s *GormSessionStore) UpdateSessionFields(ctx context.Context, id int64, fields map[string]any) error {
	res := s.DB.WithContext(ctx).
		Model(&model.TrainingSessionModel{}).
		Where("training_session_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return &StorageError{Op: "update session", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "training session", ID: id}
	}
	return nil
}

func (s *GormSessionStore) DeleteSession(ctx context.Context, id int64) error {
	res := s.DB.WithContext(ctx).
		Where("training_session_id = ?", id).
		Delete(&model.TrainingSessionModel{})
	if res.Error != nil {
		return &StorageError{Op: "delete session", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "training session", ID: id}
	}
	return nil
}

func (s *GormSessionStore) ListSessions(ctx context.Context, q ListSessionsQuery) ([]model.TrainingSessionModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.TrainingSessionModel{})
	if !q.WithDeleted {
		tx = tx.Where("training_session_deleted_at IS NULL")
	}
	if cond, ok := StatusWhereClause(q.Status); ok {
		tx = tx.Where(cond)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, &StorageError{Op: "count sessions", Err: err}
	}

	var rows []model.TrainingSessionModel
	if err := tx.
		Order("training_session_start_date DESC, training_session_id DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, &StorageError{Op: "list sessions", Err: err}
	}
	return rows, total, nil
}

func (s *GormSessionStore) SetDeleteMarkers(ctx context.Context, id int64, deletedAt time.Time, actor Actor, reason string) error {
	res := s.DB.WithContext(ctx).
		Model(&model.TrainingSessionModel{}).
		Where("training_session_id = ? AND training_session_deleted_at IS NULL", id).
		Updates(map[string]any{
			"training_session_deleted_at":      deletedAt,
			"training_session_deleted_by_id":   actor.ID,
			"training_session_deleted_by_name": actor.Name,
			"training_session_delete_reason":   reason,
		})
	if res.Error != nil {
		return &StorageError{Op: "set delete markers", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "training session", ID: id}
	}
	return nil
}

func (s *GormSessionStore) ClearDeleteMarkers(ctx context.Context, id int64) error {
	res := s.DB.WithContext(ctx).
		Model(&model.TrainingSessionModel{}).
		Where("training_session_id = ?", id).
		Updates(map[string]any{
			"training_session_deleted_at":      nil,
			"training_session_deleted_by_id":   nil,
			"training_session_deleted_by_name": nil,
			"training_session_delete_reason":   nil,
		})
	if res.Error != nil {
		return &StorageError{Op: "clear delete markers", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "training session", ID: id}
	}
	return nil
}

func (s *GormSessionStore) ListParticipants(ctx context.Context, sessionID int64) ([]model.TrainingParticipantModel, error) {
	var rows []model.TrainingParticipantModel
	if err := s.DB.WithContext(ctx).
		Where("training_participant_session_id = ?", sessionID).
		Order("training_participant_id ASC").
		Find(&rows).Error; err != nil {
		return nil, &StorageError{Op: "list participants", Err: err}
	}
	return rows, nil
}

func (s *GormSessionStore) InsertParticipants(ctx context.Context, ps []*model.TrainingParticipantModel) error {
	if len(ps) == 0 {
		return nil
	}
	if err := s.DB.WithContext(ctx).Create(ps).Error; err != nil {
		return &StorageError{Op: "insert participants", Err: err}
	}
	return nil
}

// DeleteParticipantsBySession is idempotent: zero affected rows is not
// an error, a session may simply have no enrollments.
func (s *GormSessionStore) DeleteParticipantsBySession(ctx context.Context, sessionID int64) error {
	if err := s.DB.WithContext(ctx).
		Where("training_participant_session_id = ?", sessionID).
		Delete(&model.TrainingParticipantModel{}).Error; err != nil {
		return &StorageError{Op: "delete participants", Err: err}
	}
	return nil
}

/* =========================================================
   GORM-backed BackupStore
   ========================================================= */

type GormBackupStore struct {
	DB *gorm.DB
}

func NewGormBackupStore(db *gorm.DB) *GormBackupStore {
	return &GormBackupStore{DB: db}
}

func (s *GormBackupStore) InsertSessionBackup(ctx context.Context, b *model.SessionBackupModel) error {
	if err := s.DB.WithContext(ctx).Create(b).Error; err != nil {
		return &StorageError{Op: "insert session backup", Err: err}
	}
	return nil
}

func (s *GormBackupStore) InsertParticipantBackups(ctx context.Context, pbs []*model.ParticipantBackupModel) error {
	if len(pbs) == 0 {
		return nil
	}
	if err := s.DB.WithContext(ctx).Create(pbs).Error; err != nil {
		return &StorageError{Op: "insert participant backups", Err: err}
	}
	return nil
}

func (s *GormBackupStore) GetSessionBackup(ctx context.Context, id int64) (*model.SessionBackupModel, error) {
	var b model.SessionBackupModel
	err := s.DB.WithContext(ctx).
		Where("session_backup_id = ?", id).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "session backup", ID: id}
		}
		return nil, &StorageError{Op: "get session backup", Err: err}
	}
	return &b, nil
}

func (s *GormBackupStore) ListSessionBackups(ctx context.Context, limit, offset int) ([]model.SessionBackupModel, int64, error) {
	tx := s.DB.WithContext(ctx).Model(&model.SessionBackupModel{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, &StorageError{Op: "count session backups", Err: err}
	}

	var rows []model.SessionBackupModel
	if err := tx.
		Order("session_backup_created_at DESC, session_backup_id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, &StorageError{Op: "list session backups", Err: err}
	}
	return rows, total, nil
}

func (s *GormBackupStore) ListParticipantBackups(ctx context.Context, backupID int64) ([]model.ParticipantBackupModel, error) {
	var rows []model.ParticipantBackupModel
	if err := s.DB.WithContext(ctx).
		Where("participant_backup_session_backup_id = ?", backupID).
		Order("participant_backup_id ASC").
		Find(&rows).Error; err != nil {
		return nil, &StorageError{Op: "list participant backups", Err: err}
	}
	return rows, nil
}

func (s *GormBackupStore) SetRestorable(ctx context.Context, backupID int64, restorable bool) error {
	res := s.DB.WithContext(ctx).
		Model(&model.SessionBackupModel{}).
		Where("session_backup_id = ?", backupID).
		Update("session_backup_can_restore", restorable)
	if res.Error != nil {
		return &StorageError{Op: "set restorable", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "session backup", ID: backupID}
	}
	return nil
}

/* =========================================================
   GORM-backed AuditRecorder
   ========================================================= */

type GormAuditRecorder struct {
	DB *gorm.DB
}

func NewGormAuditRecorder(db *gorm.DB) *GormAuditRecorder {
	return &GormAuditRecorder{DB: db}
}

func (s *GormAuditRecorder) Record(ctx context.Context, row *model.DeletionAuditModel) error {
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return &StorageError{Op: "insert deletion audit", Err: err}
	}
	return nil
}
