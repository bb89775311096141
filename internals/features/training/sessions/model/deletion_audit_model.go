package model

import (
	"time"

	"gorm.io/datatypes"
)

// Audit op names
const (
	AuditOpSoftDelete        = "soft_delete"
	AuditOpRestoreSoft       = "restore_soft_deleted"
	AuditOpHardDelete        = "hard_delete_with_backup"
	AuditOpRestoreFromBackup = "restore_from_backup"
)

// Audit outcomes
const (
	AuditOutcomeOK             = "ok"
	AuditOutcomeFailed         = "failed"
	AuditOutcomePartialFailure = "partial_failure"
)

// DeletionAuditModel records one coordinator operation. Written
// best-effort: a failed audit write is logged and never fails the
// operation it describes.
type DeletionAuditModel struct {
	DeletionAuditID        int64  `gorm:"primaryKey;autoIncrement;column:deletion_audit_id" json:"deletion_audit_id"`
	DeletionAuditOp        string `gorm:"not null;column:deletion_audit_op" json:"deletion_audit_op"`
	DeletionAuditSessionID int64  `gorm:"not null;index;column:deletion_audit_session_id" json:"deletion_audit_session_id"`
	DeletionAuditBackupID  *int64 `gorm:"column:deletion_audit_backup_id" json:"deletion_audit_backup_id,omitempty"`

	DeletionAuditActorID   int64  `gorm:"column:deletion_audit_actor_id" json:"deletion_audit_actor_id"`
	DeletionAuditActorName string `gorm:"column:deletion_audit_actor_name" json:"deletion_audit_actor_name"`
	DeletionAuditReason    string `gorm:"column:deletion_audit_reason" json:"deletion_audit_reason"`

	DeletionAuditOutcome    string         `gorm:"not null;column:deletion_audit_outcome" json:"deletion_audit_outcome"`
	DeletionAuditFailedStep *string        `gorm:"column:deletion_audit_failed_step" json:"deletion_audit_failed_step,omitempty"`
	DeletionAuditDetail     datatypes.JSON `gorm:"column:deletion_audit_detail" json:"deletion_audit_detail,omitempty"`

	DeletionAuditCreatedAt time.Time `gorm:"column:deletion_audit_created_at;autoCreateTime" json:"deletion_audit_created_at"`
}

func (DeletionAuditModel) TableName() string { return "training_deletion_audits" }
