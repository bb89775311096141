package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"

	"traininghub_backend/internals/features/training/sessions/model"
)

// DefaultDeleteReason is stamped when the caller gives none.
const DefaultDeleteReason = "deleted by admin"

// defaultStepTimeout bounds each store round-trip; a timeout surfaces
// as StorageError, never as ambiguous success.
const defaultStepTimeout = 5 * time.Second

// DeletionService coordinates soft delete, hard delete with backup and
// restore from backup against the injected stores. It holds no session
// state between calls: every operation re-fetches what it needs.
type DeletionService struct {
	Sessions SessionStore
	Backups  BackupStore
	Audit    AuditRecorder // optional

	StepTimeout time.Duration
	Clock       func() time.Time
}

func NewDeletionService(sessions SessionStore, backups BackupStore, audit AuditRecorder) *DeletionService {
	return &DeletionService{
		Sessions:    sessions,
		Backups:     backups,
		Audit:       audit,
		StepTimeout: defaultStepTimeout,
		Clock:       time.Now,
	}
}

// SoftDelete marks the session deleted without moving any data.
// Participants are untouched. Single atomic write, no rollback needed.
func (s *DeletionService) SoftDelete(ctx context.Context, sessionID int64, actor Actor, reason string) error {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.IsSoftDeleted() {
		return &SoftDeletedError{SessionID: sessionID}
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultDeleteReason
	}

	stepCtx, cancel := s.stepCtx(ctx)
	err = s.Sessions.SetDeleteMarkers(stepCtx, sessionID, s.Clock(), actor, reason)
	cancel()
	if err != nil {
		s.audit(ctx, model.AuditOpSoftDelete, sessionID, nil, actor, reason, model.AuditOutcomeFailed, "", err)
		return err
	}

	s.audit(ctx, model.AuditOpSoftDelete, sessionID, nil, actor, reason, model.AuditOutcomeOK, "", nil)
	return nil
}

// RestoreSoftDeleted clears the three delete markers. Clearing
// already-null markers is harmless, but the session must exist.
func (s *DeletionService) RestoreSoftDeleted(ctx context.Context, sessionID int64) error {
	if _, err := s.getSession(ctx, sessionID); err != nil {
		return err
	}

	stepCtx, cancel := s.stepCtx(ctx)
	err := s.Sessions.ClearDeleteMarkers(stepCtx, sessionID)
	cancel()
	if err != nil {
		return err
	}

	s.audit(ctx, model.AuditOpRestoreSoft, sessionID, nil, Actor{}, "", model.AuditOutcomeOK, "", nil)
	return nil
}

// HardDeleteWithBackup purges the session and its participants from the
// live store after writing a restorable backup. Step order is fixed:
// nothing destructive happens until both backup writes succeeded. A
// failure between deleting participants and deleting the session row is
// surfaced as PartialFailure, never swallowed.
func (s *DeletionService) HardDeleteWithBackup(ctx context.Context, sessionID int64, actor Actor, reason string) error {
	// 1. fetch the session
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.IsSoftDeleted() {
		// no SoftDeleted -> Purged transition; restore it first
		return &SoftDeletedError{SessionID: sessionID}
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultDeleteReason
	}

	// 2. fetch participants (may be empty)
	stepCtx, cancel := s.stepCtx(ctx)
	participants, err := s.Sessions.ListParticipants(stepCtx, sessionID)
	cancel()
	if err != nil {
		return err
	}

	// 3. write the session backup; nothing happened yet, fail fast
	backup := SnapshotSession(sess, actor, reason, s.Clock())
	stepCtx, cancel = s.stepCtx(ctx)
	err = s.Backups.InsertSessionBackup(stepCtx, backup)
	cancel()
	if err != nil {
		s.audit(ctx, model.AuditOpHardDelete, sessionID, nil, actor, reason, model.AuditOutcomeFailed, StepWriteSessionBackup, err)
		return err
	}
	backupID := backup.SessionBackupID

	// 4. write participant backups; on failure abort before deleting
	// anything — the session backup left behind is an orphan, not a
	// completed backup
	if len(participants) > 0 {
		pbs := make([]*model.ParticipantBackupModel, 0, len(participants))
		for i := range participants {
			pbs = append(pbs, SnapshotParticipant(&participants[i], backupID))
		}
		stepCtx, cancel = s.stepCtx(ctx)
		err = s.Backups.InsertParticipantBackups(stepCtx, pbs)
		cancel()
		if err != nil {
			s.audit(ctx, model.AuditOpHardDelete, sessionID, &backupID, actor, reason, model.AuditOutcomeFailed, StepWriteParticipantBackups, err)
			return err
		}
	}

	// 5. delete live participants
	stepCtx, cancel = s.stepCtx(ctx)
	err = s.Sessions.DeleteParticipantsBySession(stepCtx, sessionID)
	cancel()
	if err != nil {
		s.audit(ctx, model.AuditOpHardDelete, sessionID, &backupID, actor, reason, model.AuditOutcomeFailed, StepDeleteParticipants, err)
		return err
	}

	// 6. delete the session row; participants are already gone, so a
	// failure here is the documented recoverable inconsistency
	stepCtx, cancel = s.stepCtx(ctx)
	err = s.Sessions.DeleteSession(stepCtx, sessionID)
	cancel()
	if err != nil {
		pf := &PartialFailureError{SessionID: sessionID, Step: StepDeleteSession, Err: err}
		s.audit(ctx, model.AuditOpHardDelete, sessionID, &backupID, actor, reason, model.AuditOutcomePartialFailure, StepDeleteSession, err)
		return pf
	}

	s.audit(ctx, model.AuditOpHardDelete, sessionID, &backupID, actor, reason, model.AuditOutcomeOK, "", nil)
	return nil
}

// RestoreFromBackup rebuilds a purged session from its backup under a
// fresh identity and consumes the backup. Returns the new session id.
func (s *DeletionService) RestoreFromBackup(ctx context.Context, backupID int64) (int64, error) {
	// 1. fetch backup + participant snapshots
	stepCtx, cancel := s.stepCtx(ctx)
	backup, err := s.Backups.GetSessionBackup(stepCtx, backupID)
	cancel()
	if err != nil {
		return 0, err
	}
	if !backup.SessionBackupCanRestore {
		return 0, &AlreadyRestoredError{BackupID: backupID}
	}

	stepCtx, cancel = s.stepCtx(ctx)
	pbs, err := s.Backups.ListParticipantBackups(stepCtx, backupID)
	cancel()
	if err != nil {
		return 0, err
	}
	// can_restore alone is not proof of a completed backup: a hard
	// delete that aborted at the participant-backup step leaves an
	// orphan row behind
	if backup.SessionBackupEnrolledCount > 0 && len(pbs) == 0 {
		return 0, &IncompleteBackupError{BackupID: backupID}
	}

	// 2. insert the new session (fresh id, nil markers, created now)
	newSession := SessionFromBackup(backup, s.Clock())
	stepCtx, cancel = s.stepCtx(ctx)
	err = s.Sessions.InsertSession(stepCtx, newSession)
	cancel()
	if err != nil {
		s.audit(ctx, model.AuditOpRestoreFromBackup, backup.SessionBackupOriginalSessionID, &backupID, Actor{}, "", model.AuditOutcomeFailed, StepInsertSession, err)
		return 0, err
	}
	newID := newSession.TrainingSessionID

	// 3. insert participants pointing at the new id
	if len(pbs) > 0 {
		ps := make([]*model.TrainingParticipantModel, 0, len(pbs))
		for i := range pbs {
			ps = append(ps, ParticipantFromBackup(&pbs[i], newID))
		}
		stepCtx, cancel = s.stepCtx(ctx)
		insertErr := s.Sessions.InsertParticipants(stepCtx, ps)
		cancel()
		if insertErr != nil {
			// 4. compensating action: no participant-less zombie session
			compCtx, compCancel := s.stepCtx(ctx)
			compErr := s.Sessions.DeleteSession(compCtx, newID)
			compCancel()
			if compErr != nil {
				pf := &PartialFailureError{SessionID: newID, Step: StepCompensateSession, Err: compErr}
				s.audit(ctx, model.AuditOpRestoreFromBackup, newID, &backupID, Actor{}, "", model.AuditOutcomePartialFailure, StepCompensateSession, compErr)
				return 0, pf
			}
			s.audit(ctx, model.AuditOpRestoreFromBackup, newID, &backupID, Actor{}, "", model.AuditOutcomeFailed, StepInsertParticipants, insertErr)
			return 0, insertErr
		}
	}

	// 5. consume the backup last; restore is single-use
	stepCtx, cancel = s.stepCtx(ctx)
	err = s.Backups.SetRestorable(stepCtx, backupID, false)
	cancel()
	if err != nil {
		pf := &PartialFailureError{SessionID: newID, Step: StepConsumeBackup, Err: err}
		s.audit(ctx, model.AuditOpRestoreFromBackup, newID, &backupID, Actor{}, "", model.AuditOutcomePartialFailure, StepConsumeBackup, err)
		return 0, pf
	}

	s.audit(ctx, model.AuditOpRestoreFromBackup, newID, &backupID, Actor{}, "", model.AuditOutcomeOK, "", nil)
	return newID, nil
}

/* =========================================================
   internals
   ========================================================= */

func (s *DeletionService) getSession(ctx context.Context, id int64) (*model.TrainingSessionModel, error) {
	stepCtx, cancel := s.stepCtx(ctx)
	defer cancel()
	return s.Sessions.GetSession(stepCtx, id)
}

func (s *DeletionService) stepCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.StepTimeout
	if timeout <= 0 {
		timeout = defaultStepTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// audit writes one best-effort row; failures are logged, never returned.
func (s *DeletionService) audit(ctx context.Context, op string, sessionID int64, backupID *int64, actor Actor, reason, outcome, failedStep string, cause error) {
	if s.Audit == nil {
		return
	}

	row := &model.DeletionAuditModel{
		DeletionAuditOp:        op,
		DeletionAuditSessionID: sessionID,
		DeletionAuditBackupID:  backupID,
		DeletionAuditActorID:   actor.ID,
		DeletionAuditActorName: actor.Name,
		DeletionAuditReason:    reason,
		DeletionAuditOutcome:   outcome,
	}
	if failedStep != "" {
		row.DeletionAuditFailedStep = &failedStep
	}
	if cause != nil {
		if detail, err := json.Marshal(map[string]string{"error": cause.Error()}); err == nil {
			row.DeletionAuditDetail = datatypes.JSON(detail)
		}
	}

	stepCtx, cancel := s.stepCtx(ctx)
	defer cancel()
	if err := s.Audit.Record(stepCtx, row); err != nil {
		log.Printf("[WARN] deletion audit write failed: op=%s session=%d err=%v", op, sessionID, err)
	}
}
