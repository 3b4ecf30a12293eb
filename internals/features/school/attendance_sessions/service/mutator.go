// file: internals/features/school/attendance_sessions/service/mutator.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"presensiku_backend/internals/features/school/attendance_sessions/model"
	"presensiku_backend/internals/features/school/attendance_sessions/repository"
	journalService "presensiku_backend/internals/features/school/teaching_journals/service"
	"presensiku_backend/internals/helpers/apperror"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// JournalReconciler: sinkron sesi -> jurnal mengajar.
type JournalReconciler interface {
	Reconcile(ctx context.Context, s *model.AttendanceSessionModel) (journalService.Report, error)
}

type Mutator struct {
	Sessions   repository.SessionStore
	Reconciler JournalReconciler
	now        func() time.Time
}

func NewMutator(sessions repository.SessionStore, rec JournalReconciler) *Mutator {
	return &Mutator{Sessions: sessions, Reconciler: rec, now: time.Now}
}

func (in UpdateInput) patch() repository.SessionPatch {
	p := repository.SessionPatch{
		Material:   in.Material,
		Note:       in.Note,
		Reflection: in.Reflection,
	}
	if in.Status != nil {
		st := model.SessionStatus(*in.Status)
		p.Status = &st
	}
	if in.DraftKind != nil {
		dk := model.DraftKind(*in.DraftKind)
		p.DraftKind = &dk
	}
	return p
}

// Update menerapkan patch parsial. Sinkron jurnal berjalan setelahnya dan
// kegagalannya tidak pernah menggagalkan update.
func (m *Mutator) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*model.AttendanceSessionModel, error) {
	if err := validate.Struct(in); err != nil {
		return nil, apperror.FromValidator(err)
	}

	updated, err := m.Sessions.UpdateFields(ctx, id, in.patch())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("attendance_session", id.String())
	}
	if err != nil {
		return nil, apperror.Persistence("update sesi", err)
	}

	if m.Reconciler == nil || !journalService.ShouldReconcile(updated) {
		return updated, nil
	}

	rep, rerr := m.Reconciler.Reconcile(ctx, updated)
	if rerr != nil {
		log.Printf("[ERROR] sinkron jurnal sesi %s: %+v", id, rerr)
	}
	if synced := m.recordSync(ctx, id, rep, rerr); synced != nil {
		return synced, nil
	}
	return updated, nil
}

// Resync: sinkron ulang manual; error rekonsiliasi dikembalikan ke pemanggil.
func (m *Mutator) Resync(ctx context.Context, id uuid.UUID) (journalService.Report, error) {
	s, err := m.Sessions.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return journalService.Report{}, apperror.NotFound("attendance_session", id.String())
	}
	if err != nil {
		return journalService.Report{}, apperror.Persistence("ambil sesi", err)
	}
	if m.Reconciler == nil {
		return journalService.Report{SessionID: id, Skipped: true}, nil
	}

	rep, rerr := m.Reconciler.Reconcile(ctx, s)
	if !rep.Skipped {
		m.recordSync(ctx, id, rep, rerr)
	}
	return rep, rerr
}

// recordSync menulis jejak sinkron terakhir; best effort.
func (m *Mutator) recordSync(ctx context.Context, id uuid.UUID, rep journalService.Report, rerr error) *model.AttendanceSessionModel {
	if rep.Skipped {
		return nil
	}
	doc := datatypes.JSONMap{
		"status": "ok",
		"hours":  len(rep.Hours),
	}
	if rerr != nil {
		doc["status"] = "failed"
		doc["error"] = rerr.Error()
	}
	at := m.now()
	out, err := m.Sessions.UpdateFields(ctx, id, repository.SessionPatch{
		JournalSyncedAt: &at,
		JournalSync:     doc,
	})
	if err != nil {
		log.Printf("[WARN] simpan status sinkron sesi %s: %v", id, err)
		return nil
	}
	return out
}
