package model

import (
	"time"
)

// SessionBackupModel is the point-in-time snapshot written as the first
// step of a hard delete. It carries its own identity; the original
// session id is provenance only (no live FK, the original row is
// purged). CanRestore starts true and is flipped false exactly once by
// a successful restore — restore is single-use.
type SessionBackupModel struct {
	SessionBackupID                int64 `gorm:"primaryKey;autoIncrement;column:session_backup_id" json:"session_backup_id"`
	SessionBackupOriginalSessionID int64 `gorm:"not null;index;column:session_backup_original_session_id" json:"session_backup_original_session_id"`

	SessionBackupName      string     `gorm:"not null;column:session_backup_name" json:"session_backup_name"`
	SessionBackupStartDate time.Time  `gorm:"type:date;not null;column:session_backup_start_date" json:"session_backup_start_date"`
	SessionBackupEndDate   *time.Time `gorm:"type:date;column:session_backup_end_date" json:"session_backup_end_date,omitempty"`

	SessionBackupProvince string `gorm:"column:session_backup_province" json:"session_backup_province"`
	SessionBackupCity     string `gorm:"column:session_backup_city" json:"session_backup_city"`
	SessionBackupAddress  string `gorm:"column:session_backup_address" json:"session_backup_address"`

	SessionBackupCapacity      int `gorm:"not null;column:session_backup_capacity" json:"session_backup_capacity"`
	SessionBackupEnrolledCount int `gorm:"not null;default:0;column:session_backup_enrolled_count" json:"session_backup_enrolled_count"`

	SessionBackupInstructorID   *int64 `gorm:"column:session_backup_instructor_id" json:"session_backup_instructor_id,omitempty"`
	SessionBackupInstructorName string `gorm:"column:session_backup_instructor_name" json:"session_backup_instructor_name"`
	SessionBackupOwnerID        *int64 `gorm:"column:session_backup_owner_id" json:"session_backup_owner_id,omitempty"`
	SessionBackupOwnerName      string `gorm:"column:session_backup_owner_name" json:"session_backup_owner_name"`

	SessionBackupPrice           float64 `gorm:"not null;default:0;column:session_backup_price" json:"session_backup_price"`
	SessionBackupExpectedRevenue float64 `gorm:"not null;default:0;column:session_backup_expected_revenue" json:"session_backup_expected_revenue"`
	SessionBackupActualRevenue   float64 `gorm:"not null;default:0;column:session_backup_actual_revenue" json:"session_backup_actual_revenue"`

	// deletion metadata (who/when/why)
	SessionBackupDeletedAt     time.Time `gorm:"not null;column:session_backup_deleted_at" json:"session_backup_deleted_at"`
	SessionBackupDeletedByID   int64     `gorm:"not null;column:session_backup_deleted_by_id" json:"session_backup_deleted_by_id"`
	SessionBackupDeletedByName string    `gorm:"column:session_backup_deleted_by_name" json:"session_backup_deleted_by_name"`
	SessionBackupDeleteReason  string    `gorm:"column:session_backup_delete_reason" json:"session_backup_delete_reason"`

	SessionBackupCanRestore bool      `gorm:"not null;default:true;column:session_backup_can_restore" json:"session_backup_can_restore"`
	SessionBackupCreatedAt  time.Time `gorm:"column:session_backup_created_at;autoCreateTime" json:"session_backup_created_at"`
}

func (SessionBackupModel) TableName() string { return "training_session_backups" }

// ParticipantBackupModel is the snapshot of one enrollment, linked to
// its session backup by the backup-scoped key. The original participant
// id is not carried: restore mints fresh identities.
type ParticipantBackupModel struct {
	ParticipantBackupID              int64 `gorm:"primaryKey;autoIncrement;column:participant_backup_id" json:"participant_backup_id"`
	ParticipantBackupSessionBackupID int64 `gorm:"not null;index;column:participant_backup_session_backup_id" json:"participant_backup_session_backup_id"`

	ParticipantBackupCustomerID *int64 `gorm:"column:participant_backup_customer_id" json:"participant_backup_customer_id,omitempty"`

	ParticipantBackupName  string  `gorm:"not null;column:participant_backup_name" json:"participant_backup_name"`
	ParticipantBackupPhone string  `gorm:"column:participant_backup_phone" json:"participant_backup_phone"`
	ParticipantBackupEmail *string `gorm:"column:participant_backup_email" json:"participant_backup_email,omitempty"`

	ParticipantBackupMode string `gorm:"not null;default:offline;column:participant_backup_mode" json:"participant_backup_mode"`

	ParticipantBackupActualPrice   float64 `gorm:"not null;default:0;column:participant_backup_actual_price" json:"participant_backup_actual_price"`
	ParticipantBackupDiscountRate  float64 `gorm:"not null;default:0;column:participant_backup_discount_rate" json:"participant_backup_discount_rate"`
	ParticipantBackupPaymentAmount float64 `gorm:"not null;default:0;column:participant_backup_payment_amount" json:"participant_backup_payment_amount"`
	ParticipantBackupPaymentStatus string  `gorm:"not null;default:unpaid;column:participant_backup_payment_status" json:"participant_backup_payment_status"`

	ParticipantBackupSalespersonName string    `gorm:"column:participant_backup_salesperson_name" json:"participant_backup_salesperson_name"`
	ParticipantBackupRegisteredAt    time.Time `gorm:"not null;column:participant_backup_registered_at" json:"participant_backup_registered_at"`

	ParticipantBackupCreatedAt time.Time `gorm:"column:participant_backup_created_at;autoCreateTime" json:"participant_backup_created_at"`
}

func (ParticipantBackupModel) TableName() string { return "training_participant_backups" }
