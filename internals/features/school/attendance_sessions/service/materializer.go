// file: internals/features/school/attendance_sessions/service/materializer.go
package service

import (
	"context"
	"errors"
	"log"

	termService "presensiku_backend/internals/features/school/academics/academic_terms/service"
	scheduleService "presensiku_backend/internals/features/school/academics/schedules/service"
	"presensiku_backend/internals/features/school/attendance_sessions/model"
	"presensiku_backend/internals/features/school/attendance_sessions/repository"
	journalModel "presensiku_backend/internals/features/school/teaching_journals/model"
	journalRepo "presensiku_backend/internals/features/school/teaching_journals/repository"
	journalService "presensiku_backend/internals/features/school/teaching_journals/service"
	"presensiku_backend/internals/helpers/apperror"
	"presensiku_backend/internals/helpers/dbtime"
	"presensiku_backend/internals/metrics"

	"github.com/google/uuid"
)

// Materializer: create-or-fetch sesi presensi per natural key.
type Materializer struct {
	Sessions  repository.SessionStore
	Journals  journalRepo.JournalStore
	Schedules scheduleService.ScheduleIndex
	Settings  termService.ActiveSettingsProvider
}

func NewMaterializer(
	sessions repository.SessionStore,
	journals journalRepo.JournalStore,
	schedules scheduleService.ScheduleIndex,
	settings termService.ActiveSettingsProvider,
) *Materializer {
	return &Materializer{Sessions: sessions, Journals: journals, Schedules: schedules, Settings: settings}
}

// CreateOrFetch mengembalikan sesi yang ada (setelah backfill dari jurnal) atau membuat baru.
// created=true hanya kalau baris benar-benar di-insert oleh panggilan ini.
func (m *Materializer) CreateOrFetch(ctx context.Context, in CreateOrFetchInput) (*model.AttendanceSessionModel, bool, error) {
	args, err := in.parse()
	if err != nil {
		return nil, false, err
	}

	key := repository.NaturalKey{
		ClassName: args.ClassName,
		Date:      args.date,
		Period:    args.slot.String(),
		Subject:   args.Subject,
	}

	existing, err := m.Sessions.FindByNaturalKey(ctx, key)
	if err != nil {
		return nil, false, apperror.Persistence("cari sesi", err)
	}
	if existing != nil {
		out, changed := m.backfill(ctx, existing)
		if changed {
			metrics.SessionMaterialize.WithLabelValues("backfilled").Inc()
		} else {
			metrics.SessionMaterialize.WithLabelValues("fetched").Inc()
		}
		return out, false, nil
	}

	sess := m.build(ctx, args)
	err = m.Sessions.Create(ctx, sess)
	if errors.Is(err, repository.ErrDuplicateSession) {
		// kalah balapan insert: ambil pemenangnya
		metrics.SessionMaterialize.WithLabelValues("raced").Inc()
		existing, ferr := m.Sessions.FindByNaturalKey(ctx, key)
		if ferr != nil {
			return nil, false, apperror.Persistence("cari sesi setelah bentrok", ferr)
		}
		if existing == nil {
			return nil, false, apperror.Persistence("cari sesi setelah bentrok", err)
		}
		out, _ := m.backfill(ctx, existing)
		return out, false, nil
	}
	if err != nil {
		return nil, false, apperror.Persistence("insert sesi", err)
	}

	metrics.SessionMaterialize.WithLabelValues("created").Inc()
	return sess, true, nil
}

func (m *Materializer) build(ctx context.Context, args createArgs) *model.AttendanceSessionModel {
	sess := &model.AttendanceSessionModel{
		AttendanceSessionID:                    uuid.New(),
		AttendanceSessionTeacherID:             args.TeacherID,
		AttendanceSessionTeacherName:           args.TeacherName,
		AttendanceSessionSubstituteTeacherID:   args.SubstituteTeacherID,
		AttendanceSessionSubstituteTeacherName: args.SubstituteTeacherName,
		AttendanceSessionClassName:             args.ClassName,
		AttendanceSessionSubject:               args.Subject,
		AttendanceSessionDate:                  args.date,
		AttendanceSessionPeriod:                args.slot.String(),
		AttendanceSessionPeriodStart:           args.slot.Start,
		AttendanceSessionDay:                   dbtime.DayName(args.date),
		AttendanceSessionStatus:                model.SessionStatusDraft,
		AttendanceSessionDraftKind:             model.DraftKindDefault,
		AttendanceSessionMaterial:              args.Material,
		AttendanceSessionReflection:            args.Reflection,
		AttendanceSessionNote:                  args.Note,
		AttendanceSessionAcademicYear:          args.AcademicYear,
		AttendanceSessionSemester:              args.Semester,
		AttendanceSessionCreatedBy:             args.CreatedBy,
	}

	// tautan jadwal hanya informatif
	if m.Schedules != nil {
		id, err := m.Schedules.FindActiveSlot(ctx, scheduleService.SlotKey{
			TeacherID: args.TeacherID,
			ClassName: args.ClassName,
			Subject:   args.Subject,
			Period:    sess.AttendanceSessionPeriod,
		})
		if err != nil {
			log.Printf("[WARN] lookup jadwal (%s, %s, %s): %v", args.TeacherID, args.ClassName, args.Subject, err)
		}
		sess.AttendanceSessionScheduleID = id
	}

	if (sess.AttendanceSessionAcademicYear == "" || sess.AttendanceSessionSemester == "") && m.Settings != nil {
		st, err := m.Settings.Active(ctx)
		if err != nil {
			log.Printf("[WARN] ambil tahun ajaran aktif: %v", err)
		}
		if sess.AttendanceSessionAcademicYear == "" {
			sess.AttendanceSessionAcademicYear = st.AcademicYear
		}
		if sess.AttendanceSessionSemester == "" {
			sess.AttendanceSessionSemester = st.Semester
		}
	}
	sess.AttendanceSessionSemester = termService.NormalizeSemester(sess.AttendanceSessionSemester)

	// seed dari jurnal jam pertama, hanya dibaca
	if !sess.IsFilled() {
		if w := m.winner(ctx, sess); w != nil {
			if sess.AttendanceSessionMaterial == "" {
				sess.AttendanceSessionMaterial = w.TeachingJournalMaterial
			}
			if sess.AttendanceSessionReflection == "" {
				sess.AttendanceSessionReflection = w.TeachingJournalReflection
			}
		}
	}
	return sess
}

// winner: baris jurnal otoritatif untuk jam pertama sesi; nil kalau tidak ada atau gagal.
func (m *Materializer) winner(ctx context.Context, s *model.AttendanceSessionModel) *journalModel.TeachingJournalModel {
	if m.Journals == nil {
		return nil
	}
	hour := model.LeadingHour(s.AttendanceSessionPeriod)
	if hour == 0 {
		return nil
	}
	cands, err := m.Journals.FindBySlot(ctx, s.AttendanceSessionDate, s.AttendanceSessionClassName, hour)
	if err != nil {
		log.Printf("[WARN] baca jurnal untuk sesi %s: %v", s.AttendanceSessionID, err)
		return nil
	}
	return journalService.Resolve(s.AttendanceSessionDate, s.AttendanceSessionClassName, hour, cands)
}

// backfill: isi materi/refleksi yang masih kosong dari jurnal; tiap field disimpan sendiri.
// Gagal simpan tidak menggagalkan fetch.
func (m *Materializer) backfill(ctx context.Context, s *model.AttendanceSessionModel) (*model.AttendanceSessionModel, bool) {
	if s.IsFilled() {
		return s, false
	}
	w := m.winner(ctx, s)
	if w == nil {
		return s, false
	}

	changed := false
	if s.AttendanceSessionMaterial == "" && w.TeachingJournalMaterial != "" {
		v := w.TeachingJournalMaterial
		if updated, err := m.Sessions.UpdateFields(ctx, s.AttendanceSessionID, repository.SessionPatch{Material: &v}); err != nil {
			log.Printf("[WARN] backfill materi sesi %s: %v", s.AttendanceSessionID, err)
		} else {
			s, changed = updated, true
		}
	}
	if s.AttendanceSessionReflection == "" && w.TeachingJournalReflection != "" {
		v := w.TeachingJournalReflection
		if updated, err := m.Sessions.UpdateFields(ctx, s.AttendanceSessionID, repository.SessionPatch{Reflection: &v}); err != nil {
			log.Printf("[WARN] backfill refleksi sesi %s: %v", s.AttendanceSessionID, err)
		} else {
			s, changed = updated, true
		}
	}
	return s, changed
}
