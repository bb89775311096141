package model

import (
	"time"
)

// TrainingSessionModel is the live row for a scheduled training event.
// A session is visible/active iff DeletedAt is NULL; the three delete
// markers are set together by soft delete and cleared together by the
// soft-delete restore. Status (upcoming/ongoing/completed) is never
// stored here, it is derived from the dates on the way out.
type TrainingSessionModel struct {
	TrainingSessionID int64 `gorm:"primaryKey;autoIncrement;column:training_session_id" json:"training_session_id"`

	TrainingSessionName      string     `gorm:"not null;column:training_session_name" json:"training_session_name"`
	TrainingSessionStartDate time.Time  `gorm:"type:date;not null;column:training_session_start_date" json:"training_session_start_date"`
	TrainingSessionEndDate   *time.Time `gorm:"type:date;column:training_session_end_date" json:"training_session_end_date,omitempty"`

	TrainingSessionProvince string `gorm:"column:training_session_province" json:"training_session_province"`
	TrainingSessionCity     string `gorm:"column:training_session_city" json:"training_session_city"`
	TrainingSessionAddress  string `gorm:"column:training_session_address" json:"training_session_address"`

	TrainingSessionCapacity      int `gorm:"not null;column:training_session_capacity" json:"training_session_capacity"`
	TrainingSessionEnrolledCount int `gorm:"not null;default:0;column:training_session_enrolled_count" json:"training_session_enrolled_count"`

	TrainingSessionInstructorID   *int64 `gorm:"column:training_session_instructor_id" json:"training_session_instructor_id,omitempty"`
	TrainingSessionInstructorName string `gorm:"column:training_session_instructor_name" json:"training_session_instructor_name"`
	TrainingSessionOwnerID        *int64 `gorm:"column:training_session_owner_id" json:"training_session_owner_id,omitempty"`
	TrainingSessionOwnerName      string `gorm:"column:training_session_owner_name" json:"training_session_owner_name"`

	TrainingSessionPrice           float64 `gorm:"not null;default:0;column:training_session_price" json:"training_session_price"`
	TrainingSessionExpectedRevenue float64 `gorm:"not null;default:0;column:training_session_expected_revenue" json:"training_session_expected_revenue"`
	TrainingSessionActualRevenue   float64 `gorm:"not null;default:0;column:training_session_actual_revenue" json:"training_session_actual_revenue"`

	// soft-delete markers, set/cleared together
	TrainingSessionDeletedAt     *time.Time `gorm:"column:training_session_deleted_at;index" json:"training_session_deleted_at,omitempty"`
	TrainingSessionDeletedByID   *int64     `gorm:"column:training_session_deleted_by_id" json:"training_session_deleted_by_id,omitempty"`
	TrainingSessionDeletedByName *string    `gorm:"column:training_session_deleted_by_name" json:"training_session_deleted_by_name,omitempty"`
	TrainingSessionDeleteReason  *string    `gorm:"column:training_session_delete_reason" json:"training_session_delete_reason,omitempty"`

	TrainingSessionCreatedAt time.Time  `gorm:"column:training_session_created_at;autoCreateTime" json:"training_session_created_at"`
	TrainingSessionUpdatedAt *time.Time `gorm:"column:training_session_updated_at;autoUpdateTime" json:"training_session_updated_at,omitempty"`
}

func (TrainingSessionModel) TableName() string { return "training_sessions" }

// IsSoftDeleted reports whether the soft-delete markers are set.
func (m *TrainingSessionModel) IsSoftDeleted() bool {
	return m.TrainingSessionDeletedAt != nil
}
