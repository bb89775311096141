package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"traininghub_backend/internals/features/training/sessions/model"
)

// In-memory stores honoring the SessionStore/BackupStore error
// contract, with per-method failure injection so each coordinator step
// can be broken individually.

type fakeSessionStore struct {
	sessions     map[int64]model.TrainingSessionModel
	participants map[int64]model.TrainingParticipantModel

	nextSessionID     int64
	nextParticipantID int64

	failOn map[string]error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions:     map[int64]model.TrainingSessionModel{},
		participants: map[int64]model.TrainingParticipantModel{},
		failOn:       map[string]error{},
	}
}

func (f *fakeSessionStore) fail(method string) error {
	if err, ok := f.failOn[method]; ok {
		return &StorageError{Op: method, Err: err}
	}
	return nil
}

func (f *fakeSessionStore) addSession(s model.TrainingSessionModel) int64 {
	f.nextSessionID++
	s.TrainingSessionID = f.nextSessionID
	f.sessions[s.TrainingSessionID] = s
	return s.TrainingSessionID
}

func (f *fakeSessionStore) addParticipant(p model.TrainingParticipantModel) int64 {
	f.nextParticipantID++
	p.TrainingParticipantID = f.nextParticipantID
	f.participants[p.TrainingParticipantID] = p
	return p.TrainingParticipantID
}

func (f *fakeSessionStore) GetSession(ctx context.Context, id int64) (*model.TrainingSessionModel, error) {
	if err := f.fail("GetSession"); err != nil {
		return nil, err
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, &NotFoundError{Entity: "training session", ID: id}
	}
	cp := s
	return &cp, nil
}

func (f *fakeSessionStore) InsertSession(ctx context.Context, s *model.TrainingSessionModel) error {
	if err := f.fail("InsertSession"); err != nil {
		return err
	}
	s.TrainingSessionID = f.addSession(*s)
	return nil
}

func (f *fakeSessionStore) UpdateSessionFields(ctx context.Context, id int64, fields map[string]any) error {
	if err := f.fail("UpdateSessionFields"); err != nil {
		return err
	}
	if _, ok := f.sessions[id]; !ok {
		return &NotFoundError{Entity: "training session", ID: id}
	}
	return nil
}

func (f *fakeSessionStore) DeleteSession(ctx context.Context, id int64) error {
	if err := f.fail("DeleteSession"); err != nil {
		return err
	}
	if _, ok := f.sessions[id]; !ok {
		return &NotFoundError{Entity: "training session", ID: id}
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionStore) ListSessions(ctx context.Context, q ListSessionsQuery) ([]model.TrainingSessionModel, int64, error) {
	if err := f.fail("ListSessions"); err != nil {
		return nil, 0, err
	}
	var rows []model.TrainingSessionModel
	for _, s := range f.sessions {
		if !q.WithDeleted && s.IsSoftDeleted() {
			continue
		}
		rows = append(rows, s)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TrainingSessionID < rows[j].TrainingSessionID
	})
	return rows, int64(len(rows)), nil
}

func (f *fakeSessionStore) SetDeleteMarkers(ctx context.Context, id int64, deletedAt time.Time, actor Actor, reason string) error {
	if err := f.fail("SetDeleteMarkers"); err != nil {
		return err
	}
	s, ok := f.sessions[id]
	if !ok || s.IsSoftDeleted() {
		return &NotFoundError{Entity: "training session", ID: id}
	}
	at := deletedAt
	s.TrainingSessionDeletedAt = &at
	s.TrainingSessionDeletedByID = &actor.ID
	name := actor.Name
	s.TrainingSessionDeletedByName = &name
	r := reason
	s.TrainingSessionDeleteReason = &r
	f.sessions[id] = s
	return nil
}

func (f *fakeSessionStore) ClearDeleteMarkers(ctx context.Context, id int64) error {
	if err := f.fail("ClearDeleteMarkers"); err != nil {
		return err
	}
	s, ok := f.sessions[id]
	if !ok {
		return &NotFoundError{Entity: "training session", ID: id}
	}
	s.TrainingSessionDeletedAt = nil
	s.TrainingSessionDeletedByID = nil
	s.TrainingSessionDeletedByName = nil
	s.TrainingSessionDeleteReason = nil
	f.sessions[id] = s
	return nil
}

func (f *fakeSessionStore) ListParticipants(ctx context.Context, sessionID int64) ([]model.TrainingParticipantModel, error) {
	if err := f.fail("ListParticipants"); err != nil {
		return nil, err
	}
	var rows []model.TrainingParticipantModel
	for _, p := range f.participants {
		if p.TrainingParticipantSessionID == sessionID {
			rows = append(rows, p)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TrainingParticipantID < rows[j].TrainingParticipantID
	})
	return rows, nil
}

func (f *fakeSessionStore) InsertParticipants(ctx context.Context, ps []*model.TrainingParticipantModel) error {
	if err := f.fail("InsertParticipants"); err != nil {
		return err
	}
	for _, p := range ps {
		p.TrainingParticipantID = f.addParticipant(*p)
	}
	return nil
}

func (f *fakeSessionStore) DeleteParticipantsBySession(ctx context.Context, sessionID int64) error {
	if err := f.fail("DeleteParticipantsBySession"); err != nil {
		return err
	}
	for id, p := range f.participants {
		if p.TrainingParticipantSessionID == sessionID {
			delete(f.participants, id)
		}
	}
	return nil
}

type fakeBackupStore struct {
	sessionBackups     map[int64]model.SessionBackupModel
	participantBackups map[int64]model.ParticipantBackupModel

	nextSessionBackupID     int64
	nextParticipantBackupID int64

	failOn map[string]error
}

func newFakeBackupStore() *fakeBackupStore {
	return &fakeBackupStore{
		sessionBackups:     map[int64]model.SessionBackupModel{},
		participantBackups: map[int64]model.ParticipantBackupModel{},
		failOn:             map[string]error{},
	}
}

func (f *fakeBackupStore) fail(method string) error {
	if err, ok := f.failOn[method]; ok {
		return &StorageError{Op: method, Err: err}
	}
	return nil
}

func (f *fakeBackupStore) InsertSessionBackup(ctx context.Context, b *model.SessionBackupModel) error {
	if err := f.fail("InsertSessionBackup"); err != nil {
		return err
	}
	f.nextSessionBackupID++
	b.SessionBackupID = f.nextSessionBackupID
	f.sessionBackups[b.SessionBackupID] = *b
	return nil
}

func (f *fakeBackupStore) InsertParticipantBackups(ctx context.Context, pbs []*model.ParticipantBackupModel) error {
	if err := f.fail("InsertParticipantBackups"); err != nil {
		return err
	}
	for _, pb := range pbs {
		f.nextParticipantBackupID++
		pb.ParticipantBackupID = f.nextParticipantBackupID
		f.participantBackups[pb.ParticipantBackupID] = *pb
	}
	return nil
}

func (f *fakeBackupStore) GetSessionBackup(ctx context.Context, id int64) (*model.SessionBackupModel, error) {
	if err := f.fail("GetSessionBackup"); err != nil {
		return nil, err
	}
	b, ok := f.sessionBackups[id]
	if !ok {
		return nil, &NotFoundError{Entity: "session backup", ID: id}
	}
	cp := b
	return &cp, nil
}

func (f *fakeBackupStore) ListSessionBackups(ctx context.Context, limit, offset int) ([]model.SessionBackupModel, int64, error) {
	if err := f.fail("ListSessionBackups"); err != nil {
		return nil, 0, err
	}
	var rows []model.SessionBackupModel
	for _, b := range f.sessionBackups {
		rows = append(rows, b)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].SessionBackupID < rows[j].SessionBackupID
	})
	return rows, int64(len(rows)), nil
}

func (f *fakeBackupStore) ListParticipantBackups(ctx context.Context, backupID int64) ([]model.ParticipantBackupModel, error) {
	if err := f.fail("ListParticipantBackups"); err != nil {
		return nil, err
	}
	var rows []model.ParticipantBackupModel
	for _, pb := range f.participantBackups {
		if pb.ParticipantBackupSessionBackupID == backupID {
			rows = append(rows, pb)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ParticipantBackupID < rows[j].ParticipantBackupID
	})
	return rows, nil
}

func (f *fakeBackupStore) SetRestorable(ctx context.Context, backupID int64, restorable bool) error {
	if err := f.fail("SetRestorable"); err != nil {
		return err
	}
	b, ok := f.sessionBackups[backupID]
	if !ok {
		return &NotFoundError{Entity: "session backup", ID: backupID}
	}
	b.SessionBackupCanRestore = restorable
	f.sessionBackups[backupID] = b
	return nil
}

type fakeAuditRecorder struct {
	rows []model.DeletionAuditModel
	err  error
}

func (f *fakeAuditRecorder) Record(ctx context.Context, row *model.DeletionAuditModel) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, *row)
	return nil
}

var errInjected = errors.New("injected failure")
