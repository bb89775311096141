package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traininghub_backend/internals/features/training/sessions/model"
)

var fixedNow = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestService(sessions *fakeSessionStore, backups *fakeBackupStore, audit *fakeAuditRecorder) *DeletionService {
	var rec AuditRecorder
	if audit != nil {
		rec = audit
	}
	svc := NewDeletionService(sessions, backups, rec)
	svc.Clock = func() time.Time { return fixedNow }
	return svc
}

func seedSession(store *fakeSessionStore, participantCount int) int64 {
	end := day(2024, 1, 12)
	instructorID := int64(7)
	id := store.addSession(model.TrainingSessionModel{
		TrainingSessionName:            "Go Fundamentals",
		TrainingSessionStartDate:       day(2024, 1, 10),
		TrainingSessionEndDate:         &end,
		TrainingSessionProvince:        "Ontario",
		TrainingSessionCity:            "Toronto",
		TrainingSessionAddress:         "100 King St W",
		TrainingSessionCapacity:        30,
		TrainingSessionEnrolledCount:   participantCount,
		TrainingSessionInstructorID:    &instructorID,
		TrainingSessionInstructorName:  "Dana Cole",
		TrainingSessionOwnerName:       "Sam Park",
		TrainingSessionPrice:           499,
		TrainingSessionExpectedRevenue: 14970,
		TrainingSessionActualRevenue:   998,
		TrainingSessionCreatedAt:       day(2023, 12, 1),
	})
	for i := 0; i < participantCount; i++ {
		email := "p@example.com"
		store.addParticipant(model.TrainingParticipantModel{
			TrainingParticipantSessionID:       id,
			TrainingParticipantName:            "Participant",
			TrainingParticipantPhone:           "555-0100",
			TrainingParticipantEmail:           &email,
			TrainingParticipantMode:            model.ParticipationModeOffline,
			TrainingParticipantActualPrice:     499,
			TrainingParticipantDiscountRate:    10,
			TrainingParticipantPaymentAmount:   449,
			TrainingParticipantPaymentStatus:   model.PaymentStatusPaid,
			TrainingParticipantSalespersonName: "Sam Park",
			TrainingParticipantRegisteredAt:    day(2024, 1, 2),
		})
	}
	return id
}

/* =========================================================
   SoftDelete / RestoreSoftDeleted
   ========================================================= */

func TestSoftDeleteThenRestoreRoundTrip(t *testing.T) {
	store := newFakeSessionStore()
	backups := newFakeBackupStore()
	audit := &fakeAuditRecorder{}
	svc := newTestService(store, backups, audit)

	id := seedSession(store, 2)
	before := store.sessions[id]
	actor := Actor{ID: 42, Name: "admin"}

	require.NoError(t, svc.SoftDelete(context.Background(), id, actor, "cleanup"))

	after := store.sessions[id]
	require.NotNil(t, after.TrainingSessionDeletedAt)
	assert.Equal(t, fixedNow, *after.TrainingSessionDeletedAt)
	assert.Equal(t, int64(42), *after.TrainingSessionDeletedByID)
	assert.Equal(t, "admin", *after.TrainingSessionDeletedByName)
	assert.Equal(t, "cleanup", *after.TrainingSessionDeleteReason)

	// participants untouched by soft delete
	assert.Len(t, store.participants, 2)

	require.NoError(t, svc.RestoreSoftDeleted(context.Background(), id))

	restored := store.sessions[id]
	assert.Nil(t, restored.TrainingSessionDeletedAt)
	assert.Nil(t, restored.TrainingSessionDeletedByID)
	assert.Nil(t, restored.TrainingSessionDeletedByName)
	assert.Nil(t, restored.TrainingSessionDeleteReason)

	// visible fields unchanged across the round trip
	assert.Equal(t, before.TrainingSessionName, restored.TrainingSessionName)
	assert.Equal(t, before.TrainingSessionStartDate, restored.TrainingSessionStartDate)
	assert.Equal(t, before.TrainingSessionCapacity, restored.TrainingSessionCapacity)
	assert.Equal(t, before.TrainingSessionEnrolledCount, restored.TrainingSessionEnrolledCount)
	assert.Len(t, store.participants, 2)
}

func TestSoftDeleteDefaultsReason(t *testing.T) {
	store := newFakeSessionStore()
	svc := newTestService(store, newFakeBackupStore(), nil)
	id := seedSession(store, 0)

	require.NoError(t, svc.SoftDelete(context.Background(), id, Actor{ID: 1, Name: "admin"}, "   "))
	assert.Equal(t, DefaultDeleteReason, *store.sessions[id].TrainingSessionDeleteReason)
}

func TestSoftDeleteNotFound(t *testing.T) {
	svc := newTestService(newFakeSessionStore(), newFakeBackupStore(), nil)

	err := svc.SoftDelete(context.Background(), 999, Actor{ID: 1}, "")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(999), nf.ID)
}

func TestSoftDeleteTwiceRejected(t *testing.T) {
	store := newFakeSessionStore()
	svc := newTestService(store, newFakeBackupStore(), nil)
	id := seedSession(store, 0)

	require.NoError(t, svc.SoftDelete(context.Background(), id, Actor{ID: 1, Name: "admin"}, ""))

	err := svc.SoftDelete(context.Background(), id, Actor{ID: 1, Name: "admin"}, "")
	var sd *SoftDeletedError
	require.ErrorAs(t, err, &sd)
}

func TestRestoreSoftDeletedNotFound(t *testing.T) {
	svc := newTestService(newFakeSessionStore(), newFakeBackupStore(), nil)

	err := svc.RestoreSoftDeleted(context.Background(), 12)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

/* =========================================================
   HardDeleteWithBackup
   ========================================================= */

// Scenario A: session with 2 participants, hard delete. Live rows gone,
// one restorable backup with provenance, two linked participant backups.
func TestHardDeleteWithBackup(t *testing.T) {
	store := newFakeSessionStore()
	backups := newFakeBackupStore()
	audit := &fakeAuditRecorder{}
	svc := newTestService(store, backups, audit)

	id := seedSession(store, 2)
	actor := Actor{ID: 42, Name: "admin"}

	require.NoError(t, svc.HardDeleteWithBackup(context.Background(), id, actor, "test"))

	assert.NotContains(t, store.sessions, id)
	assert.Empty(t, store.participants)

	require.Len(t, backups.sessionBackups, 1)
	var b model.SessionBackupModel
	for _, row := range backups.sessionBackups {
		b = row
	}
	assert.Equal(t, id, b.SessionBackupOriginalSessionID)
	assert.True(t, b.SessionBackupCanRestore)
	assert.Equal(t, "Go Fundamentals", b.SessionBackupName)
	assert.Equal(t, 30, b.SessionBackupCapacity)
	assert.Equal(t, "test", b.SessionBackupDeleteReason)
	assert.Equal(t, int64(42), b.SessionBackupDeletedByID)
	assert.Equal(t, fixedNow, b.SessionBackupDeletedAt)

	pbs, err := backups.ListParticipantBackups(context.Background(), b.SessionBackupID)
	require.NoError(t, err)
	assert.Len(t, pbs, 2)

	require.Len(t, audit.rows, 1)
	assert.Equal(t, model.AuditOpHardDelete, audit.rows[0].DeletionAuditOp)
	assert.Equal(t, model.AuditOutcomeOK, audit.rows[0].DeletionAuditOutcome)
}

func TestHardDeleteNotFound(t *testing.T) {
	svc := newTestService(newFakeSessionStore(), newFakeBackupStore(), nil)

	err := svc.HardDeleteWithBackup(context.Background(), 5, Actor{ID: 1}, "")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestHardDeleteOnSoftDeletedRejected(t *testing.T) {
	store := newFakeSessionStore()
	svc := newTestService(store, newFakeBackupStore(), nil)
	id := seedSession(store, 1)

	require.NoError(t, svc.SoftDelete(context.Background(), id, Actor{ID: 1, Name: "admin"}, ""))

	err := svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 1, Name: "admin"}, "")
	var sd *SoftDeletedError
	require.ErrorAs(t, err, &sd)

	// nothing destroyed, no backup written
	assert.Contains(t, store.sessions, id)
	assert.Len(t, store.participants, 1)
}

func TestHardDeleteFailsFastWhenSessionBackupFails(t *testing.T) {
	store := newFakeSessionStore()
	backups := newFakeBackupStore()
	backups.failOn["InsertSessionBackup"] = errInjected
	svc := newTestService(store, backups, nil)

	id := seedSession(store, 2)

	err := svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 1}, "")
	var se *StorageError
	require.ErrorAs(t, err, &se)

	// session fully intact, no destructive step ran
	assert.Contains(t, store.sessions, id)
	assert.Len(t, store.participants, 2)
	assert.Empty(t, backups.sessionBackups)
}

func TestHardDeleteAbortsWhenParticipantBackupFails(t *testing.T) {
	store := newFakeSessionStore()
	backups := newFakeBackupStore()
	backups.failOn["InsertParticipantBackups"] = errInjected
	svc := newTestService(store, backups, nil)

	id := seedSession(store, 2)

	err := svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 1}, "")
	var se *StorageError
	require.ErrorAs(t, err, &se)

	// live data untouched; the orphan session backup is acceptable
	// leftover and stays behind
	assert.Contains(t, store.sessions, id)
	assert.Len(t, store.participants, 2)
	assert.Len(t, backups.sessionBackups, 1)
	assert.Empty(t, backups.participantBackups)
}

func TestHardDeletePartialFailureWhenSessionDeleteFails(t *testing.T) {
	store := newFakeSessionStore()
	store.failOn["DeleteSession"] = errInjected
	backups := newFakeBackupStore()
	audit := &fakeAuditRecorder{}
	svc := newTestService(store, backups, audit)

	id := seedSession(store, 2)

	err := svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 1, Name: "admin"}, "")
	var pf *PartialFailureError
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, StepDeleteSession, pf.Step)
	assert.Equal(t, id, pf.SessionID)

	// recoverable inconsistency: participants gone, session row alive
	assert.Contains(t, store.sessions, id)
	assert.Empty(t, store.participants)
	assert.Len(t, backups.sessionBackups, 1)

	require.Len(t, audit.rows, 1)
	assert.Equal(t, model.AuditOutcomePartialFailure, audit.rows[0].DeletionAuditOutcome)
	require.NotNil(t, audit.rows[0].DeletionAuditFailedStep)
	assert.Equal(t, StepDeleteSession, *audit.rows[0].DeletionAuditFailedStep)
}

// Retrying the hard delete after a PartialFailure completes the purge:
// the surviving zero-participant session is re-snapshotted and deleted.
func TestHardDeleteRetryAfterPartialFailure(t *testing.T) {
	store := newFakeSessionStore()
	store.failOn["DeleteSession"] = errInjected
	backups := newFakeBackupStore()
	svc := newTestService(store, backups, nil)

	id := seedSession(store, 2)
	var pf *PartialFailureError
	require.ErrorAs(t, svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 1}, ""), &pf)

	delete(store.failOn, "DeleteSession")
	require.NoError(t, svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 1}, ""))
	assert.NotContains(t, store.sessions, id)
}

/* =========================================================
   RestoreFromBackup
   ========================================================= */

// Scenario B: restore after a hard delete. New session under a fresh
// id with equal business fields, participants re-minted against the new
// id, backup consumed.
func TestRestoreFromBackup(t *testing.T) {
	store := newFakeSessionStore()
	backups := newFakeBackupStore()
	svc := newTestService(store, backups, nil)

	id := seedSession(store, 2)
	original := store.sessions[id]
	originalParticipants, _ := store.ListParticipants(context.Background(), id)

	require.NoError(t, svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 42, Name: "admin"}, "test"))

	var backupID int64
	for bid := range backups.sessionBackups {
		backupID = bid
	}

	newID, err := svc.RestoreFromBackup(context.Background(), backupID)
	require.NoError(t, err)
	require.NotEqual(t, id, newID)

	restored, ok := store.sessions[newID]
	require.True(t, ok)
	assert.Equal(t, original.TrainingSessionName, restored.TrainingSessionName)
	assert.Equal(t, original.TrainingSessionStartDate, restored.TrainingSessionStartDate)
	assert.Equal(t, original.TrainingSessionEndDate, restored.TrainingSessionEndDate)
	assert.Equal(t, original.TrainingSessionCapacity, restored.TrainingSessionCapacity)
	assert.Equal(t, original.TrainingSessionEnrolledCount, restored.TrainingSessionEnrolledCount)
	assert.Equal(t, original.TrainingSessionPrice, restored.TrainingSessionPrice)
	assert.Nil(t, restored.TrainingSessionDeletedAt)
	assert.Nil(t, restored.TrainingSessionDeleteReason)
	// creation timestamp is restore time, not the original one
	assert.Equal(t, fixedNow, restored.TrainingSessionCreatedAt)

	newParticipants, err := store.ListParticipants(context.Background(), newID)
	require.NoError(t, err)
	require.Len(t, newParticipants, len(originalParticipants))
	for i, np := range newParticipants {
		op := originalParticipants[i]
		assert.NotEqual(t, op.TrainingParticipantID, np.TrainingParticipantID)
		assert.Equal(t, newID, np.TrainingParticipantSessionID)
		assert.Equal(t, op.TrainingParticipantName, np.TrainingParticipantName)
		assert.Equal(t, op.TrainingParticipantPhone, np.TrainingParticipantPhone)
		assert.Equal(t, op.TrainingParticipantPaymentAmount, np.TrainingParticipantPaymentAmount)
		assert.Equal(t, op.TrainingParticipantPaymentStatus, np.TrainingParticipantPaymentStatus)
	}

	assert.False(t, backups.sessionBackups[backupID].SessionBackupCanRestore)
}

func TestRestoreFromBackupIsSingleUse(t *testing.T) {
	store := newFakeSessionStore()
	backups := newFakeBackupStore()
	svc := newTestService(store, backups, nil)

	id := seedSession(store, 1)
	require.NoError(t, svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 1, Name: "admin"}, ""))

	var backupID int64
	for bid := range backups.sessionBackups {
		backupID = bid
	}

	_, err := svc.RestoreFromBackup(context.Background(), backupID)
	require.NoError(t, err)

	_, err = svc.RestoreFromBackup(context.Background(), backupID)
	var ar *AlreadyRestoredError
	require.ErrorAs(t, err, &ar)
	assert.Equal(t, backupID, ar.BackupID)
}

func TestRestoreFromBackupNotFound(t *testing.T) {
	svc := newTestService(newFakeSessionStore(), newFakeBackupStore(), nil)

	_, err := svc.RestoreFromBackup(context.Background(), 77)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestRestoreRejectsIncompleteBackup(t *testing.T) {
	store := newFakeSessionStore()
	backups := newFakeBackupStore()
	svc := newTestService(store, backups, nil)

	// orphan of an aborted hard delete: session backup flagged
	// restorable, enrolled_count > 0, but no participant snapshots
	b := &model.SessionBackupModel{
		SessionBackupOriginalSessionID: 9,
		SessionBackupName:              "Orphan",
		SessionBackupStartDate:         day(2024, 1, 10),
		SessionBackupCapacity:          10,
		SessionBackupEnrolledCount:     3,
		SessionBackupCanRestore:        true,
		SessionBackupDeletedAt:         fixedNow,
	}
	require.NoError(t, backups.InsertSessionBackup(context.Background(), b))

	_, err := svc.RestoreFromBackup(context.Background(), b.SessionBackupID)
	var ib *IncompleteBackupError
	require.ErrorAs(t, err, &ib)

	// nothing inserted, backup not consumed
	assert.Empty(t, store.sessions)
	assert.True(t, backups.sessionBackups[b.SessionBackupID].SessionBackupCanRestore)
}

func TestRestoreCompensatesWhenParticipantInsertFails(t *testing.T) {
	store := newFakeSessionStore()
	backups := newFakeBackupStore()
	svc := newTestService(store, backups, nil)

	id := seedSession(store, 2)
	require.NoError(t, svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 1, Name: "admin"}, ""))

	var backupID int64
	for bid := range backups.sessionBackups {
		backupID = bid
	}

	store.failOn["InsertParticipants"] = errInjected
	_, err := svc.RestoreFromBackup(context.Background(), backupID)
	var se *StorageError
	require.ErrorAs(t, err, &se)

	// no zombie session left behind, backup still restorable
	assert.Empty(t, store.sessions)
	assert.True(t, backups.sessionBackups[backupID].SessionBackupCanRestore)

	// a later retry succeeds
	delete(store.failOn, "InsertParticipants")
	newID, err := svc.RestoreFromBackup(context.Background(), backupID)
	require.NoError(t, err)
	assert.Contains(t, store.sessions, newID)
}

func TestRestorePartialFailureWhenCompensationFails(t *testing.T) {
	store := newFakeSessionStore()
	backups := newFakeBackupStore()
	svc := newTestService(store, backups, nil)

	id := seedSession(store, 1)
	require.NoError(t, svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 1, Name: "admin"}, ""))

	var backupID int64
	for bid := range backups.sessionBackups {
		backupID = bid
	}

	store.failOn["InsertParticipants"] = errInjected
	store.failOn["DeleteSession"] = errInjected

	_, err := svc.RestoreFromBackup(context.Background(), backupID)
	var pf *PartialFailureError
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, StepCompensateSession, pf.Step)
}

func TestRestorePartialFailureWhenConsumeFails(t *testing.T) {
	store := newFakeSessionStore()
	backups := newFakeBackupStore()
	svc := newTestService(store, backups, nil)

	id := seedSession(store, 1)
	require.NoError(t, svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 1, Name: "admin"}, ""))

	var backupID int64
	for bid := range backups.sessionBackups {
		backupID = bid
	}

	backups.failOn["SetRestorable"] = errInjected
	_, err := svc.RestoreFromBackup(context.Background(), backupID)
	var pf *PartialFailureError
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, StepConsumeBackup, pf.Step)

	// the restored session exists; only the flag flip is outstanding
	assert.Len(t, store.sessions, 1)
}

// An audit-write failure never fails the operation it describes.
func TestAuditFailureDoesNotFailOperation(t *testing.T) {
	store := newFakeSessionStore()
	backups := newFakeBackupStore()
	audit := &fakeAuditRecorder{err: errInjected}
	svc := newTestService(store, backups, audit)

	id := seedSession(store, 1)
	require.NoError(t, svc.HardDeleteWithBackup(context.Background(), id, Actor{ID: 1, Name: "admin"}, ""))
	assert.NotContains(t, store.sessions, id)
}
