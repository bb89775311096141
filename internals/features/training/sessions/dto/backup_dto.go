package dto

import (
	"time"

	m "traininghub_backend/internals/features/training/sessions/model"
)

type SessionBackupResponse struct {
	BackupID          int64 `json:"session_backup_id"`
	OriginalSessionID int64 `json:"session_backup_original_session_id"`

	Name      string     `json:"session_backup_name"`
	StartDate time.Time  `json:"session_backup_start_date"`
	EndDate   *time.Time `json:"session_backup_end_date,omitempty"`

	Province string `json:"session_backup_province"`
	City     string `json:"session_backup_city"`
	Address  string `json:"session_backup_address"`

	Capacity      int `json:"session_backup_capacity"`
	EnrolledCount int `json:"session_backup_enrolled_count"`

	InstructorName string `json:"session_backup_instructor_name"`
	OwnerName      string `json:"session_backup_owner_name"`

	DeletedAt     time.Time `json:"session_backup_deleted_at"`
	DeletedByID   int64     `json:"session_backup_deleted_by_id"`
	DeletedByName string    `json:"session_backup_deleted_by_name"`
	DeleteReason  string    `json:"session_backup_delete_reason"`

	CanRestore bool      `json:"session_backup_can_restore"`
	CreatedAt  time.Time `json:"session_backup_created_at"`

	// filled on the detail endpoint only
	ParticipantCount *int `json:"session_backup_participant_count,omitempty"`
}

func FromSessionBackupModel(b m.SessionBackupModel) SessionBackupResponse {
	return SessionBackupResponse{
		BackupID:          b.SessionBackupID,
		OriginalSessionID: b.SessionBackupOriginalSessionID,

		Name:      b.SessionBackupName,
		StartDate: b.SessionBackupStartDate,
		EndDate:   b.SessionBackupEndDate,

		Province: b.SessionBackupProvince,
		City:     b.SessionBackupCity,
		Address:  b.SessionBackupAddress,

		Capacity:      b.SessionBackupCapacity,
		EnrolledCount: b.SessionBackupEnrolledCount,

		InstructorName: b.SessionBackupInstructorName,
		OwnerName:      b.SessionBackupOwnerName,

		DeletedAt:     b.SessionBackupDeletedAt,
		DeletedByID:   b.SessionBackupDeletedByID,
		DeletedByName: b.SessionBackupDeletedByName,
		DeleteReason:  b.SessionBackupDeleteReason,

		CanRestore: b.SessionBackupCanRestore,
		CreatedAt:  b.SessionBackupCreatedAt,
	}
}

func FromSessionBackupModels(rows []m.SessionBackupModel) []SessionBackupResponse {
	out := make([]SessionBackupResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromSessionBackupModel(rows[i]))
	}
	return out
}
