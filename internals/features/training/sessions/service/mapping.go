package service

import (
	"time"

	"traininghub_backend/internals/features/training/sessions/model"
)

// Symmetric, typed field mapping between live rows and their backup
// snapshots. Adding a business field to a model without extending the
// functions here is a compile error on the struct literal below, which
// is the point: no map-based copying.

// SnapshotSession copies all session business fields into a backup row
// and stamps the deletion metadata. The backup gets its own identity on
// insert; the original id is kept as provenance only.
func SnapshotSession(s *model.TrainingSessionModel, actor Actor, reason string, deletedAt time.Time) *model.SessionBackupModel {
	return &model.SessionBackupModel{
		SessionBackupOriginalSessionID: s.TrainingSessionID,

		SessionBackupName:      s.TrainingSessionName,
		SessionBackupStartDate: s.TrainingSessionStartDate,
		SessionBackupEndDate:   s.TrainingSessionEndDate,

		SessionBackupProvince: s.TrainingSessionProvince,
		SessionBackupCity:     s.TrainingSessionCity,
		SessionBackupAddress:  s.TrainingSessionAddress,

		SessionBackupCapacity:      s.TrainingSessionCapacity,
		SessionBackupEnrolledCount: s.TrainingSessionEnrolledCount,

		SessionBackupInstructorID:   s.TrainingSessionInstructorID,
		SessionBackupInstructorName: s.TrainingSessionInstructorName,
		SessionBackupOwnerID:        s.TrainingSessionOwnerID,
		SessionBackupOwnerName:      s.TrainingSessionOwnerName,

		SessionBackupPrice:           s.TrainingSessionPrice,
		SessionBackupExpectedRevenue: s.TrainingSessionExpectedRevenue,
		SessionBackupActualRevenue:   s.TrainingSessionActualRevenue,

		SessionBackupDeletedAt:     deletedAt,
		SessionBackupDeletedByID:   actor.ID,
		SessionBackupDeletedByName: actor.Name,
		SessionBackupDeleteReason:  reason,

		SessionBackupCanRestore: true,
	}
}

// SessionFromBackup builds the restored live row: fresh identity (left
// zero for the store to assign), delete markers explicitly nil, and the
// creation timestamp set to restore time, not the original one.
func SessionFromBackup(b *model.SessionBackupModel, now time.Time) *model.TrainingSessionModel {
	return &model.TrainingSessionModel{
		TrainingSessionName:      b.SessionBackupName,
		TrainingSessionStartDate: b.SessionBackupStartDate,
		TrainingSessionEndDate:   b.SessionBackupEndDate,

		TrainingSessionProvince: b.SessionBackupProvince,
		TrainingSessionCity:     b.SessionBackupCity,
		TrainingSessionAddress:  b.SessionBackupAddress,

		TrainingSessionCapacity:      b.SessionBackupCapacity,
		TrainingSessionEnrolledCount: b.SessionBackupEnrolledCount,

		TrainingSessionInstructorID:   b.SessionBackupInstructorID,
		TrainingSessionInstructorName: b.SessionBackupInstructorName,
		TrainingSessionOwnerID:        b.SessionBackupOwnerID,
		TrainingSessionOwnerName:      b.SessionBackupOwnerName,

		TrainingSessionPrice:           b.SessionBackupPrice,
		TrainingSessionExpectedRevenue: b.SessionBackupExpectedRevenue,
		TrainingSessionActualRevenue:   b.SessionBackupActualRevenue,

		TrainingSessionDeletedAt:     nil,
		TrainingSessionDeletedByID:   nil,
		TrainingSessionDeletedByName: nil,
		TrainingSessionDeleteReason:  nil,

		TrainingSessionCreatedAt: now,
	}
}

// SnapshotParticipant copies one enrollment into a backup row linked to
// the session backup. The original participant id is dropped.
func SnapshotParticipant(p *model.TrainingParticipantModel, sessionBackupID int64) *model.ParticipantBackupModel {
	return &model.ParticipantBackupModel{
		ParticipantBackupSessionBackupID: sessionBackupID,

		ParticipantBackupCustomerID: p.TrainingParticipantCustomerID,

		ParticipantBackupName:  p.TrainingParticipantName,
		ParticipantBackupPhone: p.TrainingParticipantPhone,
		ParticipantBackupEmail: p.TrainingParticipantEmail,

		ParticipantBackupMode: p.TrainingParticipantMode,

		ParticipantBackupActualPrice:   p.TrainingParticipantActualPrice,
		ParticipantBackupDiscountRate:  p.TrainingParticipantDiscountRate,
		ParticipantBackupPaymentAmount: p.TrainingParticipantPaymentAmount,
		ParticipantBackupPaymentStatus: p.TrainingParticipantPaymentStatus,

		ParticipantBackupSalespersonName: p.TrainingParticipantSalespersonName,
		ParticipantBackupRegisteredAt:    p.TrainingParticipantRegisteredAt,
	}
}

// ParticipantFromBackup builds the restored enrollment pointing at the
// new session id, with a fresh identity.
func ParticipantFromBackup(pb *model.ParticipantBackupModel, newSessionID int64) *model.TrainingParticipantModel {
	return &model.TrainingParticipantModel{
		TrainingParticipantSessionID:  newSessionID,
		TrainingParticipantCustomerID: pb.ParticipantBackupCustomerID,

		TrainingParticipantName:  pb.ParticipantBackupName,
		TrainingParticipantPhone: pb.ParticipantBackupPhone,
		TrainingParticipantEmail: pb.ParticipantBackupEmail,

		TrainingParticipantMode: pb.ParticipantBackupMode,

		TrainingParticipantActualPrice:   pb.ParticipantBackupActualPrice,
		TrainingParticipantDiscountRate:  pb.ParticipantBackupDiscountRate,
		TrainingParticipantPaymentAmount: pb.ParticipantBackupPaymentAmount,
		TrainingParticipantPaymentStatus: pb.ParticipantBackupPaymentStatus,

		TrainingParticipantSalespersonName: pb.ParticipantBackupSalespersonName,
		TrainingParticipantRegisteredAt:    pb.ParticipantBackupRegisteredAt,
	}
}
