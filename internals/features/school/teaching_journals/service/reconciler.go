// file: internals/features/school/teaching_journals/service/reconciler.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"presensiku_backend/internals/constants"
	timetableService "presensiku_backend/internals/features/school/academics/timetables/service"
	sessionModel "presensiku_backend/internals/features/school/attendance_sessions/model"
	"presensiku_backend/internals/features/school/teaching_journals/repository"
	"presensiku_backend/internals/helpers/apperror"
	"presensiku_backend/internals/helpers/dbtime"
	"presensiku_backend/internals/metrics"

	"github.com/google/uuid"
)

const (
	ActionUpdated  = "updated"
	ActionInserted = "inserted"
)

type HourResult struct {
	Hour       int       `json:"hour"`
	Action     string    `json:"action"`
	JournalID  uuid.UUID `json:"journal_id"`
	TimeLabel  string    `json:"time_label,omitempty"`
	Candidates int       `json:"candidates"`
}

type Report struct {
	SessionID uuid.UUID    `json:"session_id"`
	Skipped   bool         `json:"skipped"`
	Hours     []HourResult `json:"hours"`
}

// Reconciler menyalin isi sesi presensi ke jurnal mengajar per jam.
type Reconciler struct {
	Journals   repository.JournalStore
	TimeTables timetableService.TimeTableIndex
}

func NewReconciler(j repository.JournalStore, tt timetableService.TimeTableIndex) *Reconciler {
	return &Reconciler{Journals: j, TimeTables: tt}
}

// ShouldReconcile: hanya kalau ada materi, refleksi, atau status FINAL.
func ShouldReconcile(s *sessionModel.AttendanceSessionModel) bool {
	return s != nil && s.NeedsJournal()
}

func (r *Reconciler) Reconcile(ctx context.Context, s *sessionModel.AttendanceSessionModel) (Report, error) {
	if !ShouldReconcile(s) {
		metrics.JournalReconcile.WithLabelValues("skipped").Inc()
		rep := Report{Skipped: true}
		if s != nil {
			rep.SessionID = s.AttendanceSessionID
		}
		return rep, nil
	}

	started := time.Now()
	defer func() { metrics.JournalReconcileDuration.Observe(time.Since(started).Seconds()) }()

	rep := Report{SessionID: s.AttendanceSessionID, Hours: []HourResult{}}

	slot, err := sessionModel.ParsePeriodSlot(s.AttendanceSessionPeriod)
	if err != nil {
		log.Printf("[WARN] reconcile sesi %s: %v, dilewati", s.AttendanceSessionID, err)
		metrics.JournalReconcile.WithLabelValues("ok").Inc()
		return rep, nil
	}

	// TODO: kegagalan satu jam masih menghentikan jam berikutnya; ubah ke isolasi per jam
	// setelah perilaku retry untuk jurnal yang gagal diputuskan.
	for _, hour := range slot.Hours() {
		res, err := r.reconcileHour(ctx, s, hour)
		if err != nil {
			metrics.JournalReconcile.WithLabelValues("failed").Inc()
			return rep, apperror.Persistence(fmt.Sprintf("jurnal jam %d", hour), err)
		}
		rep.Hours = append(rep.Hours, res)
	}

	metrics.JournalReconcile.WithLabelValues("ok").Inc()
	return rep, nil
}

func (r *Reconciler) reconcileHour(ctx context.Context, s *sessionModel.AttendanceSessionModel, hour int) (HourResult, error) {
	date := s.AttendanceSessionDate
	class := s.AttendanceSessionClassName

	cands, err := r.Journals.FindBySlot(ctx, date, class, hour)
	if err != nil {
		return HourResult{Hour: hour}, err
	}

	if winner := Resolve(date, class, hour, cands); winner != nil {
		MergeSession(winner, s)
		if err := r.Journals.SaveMerge(ctx, winner); err != nil {
			return HourResult{Hour: hour}, err
		}
		metrics.JournalHour.WithLabelValues(ActionUpdated).Inc()
		return HourResult{
			Hour:       hour,
			Action:     ActionUpdated,
			JournalID:  winner.TeachingJournalID,
			TimeLabel:  winner.TeachingJournalTimeLabel,
			Candidates: len(cands),
		}, nil
	}

	label := r.Label(ctx, date, hour)
	row := NewJournalFromSession(s, hour, label)
	if err := r.Journals.Create(ctx, row); err != nil {
		return HourResult{Hour: hour}, err
	}
	metrics.JournalHour.WithLabelValues(ActionInserted).Inc()
	return HourResult{
		Hour:      hour,
		Action:    ActionInserted,
		JournalID: row.TeachingJournalID,
		TimeLabel: label,
	}, nil
}

// Label: "HH:MM–HH:MM" dari tabel jam; miss atau error -> "Jam Ke-N".
func (r *Reconciler) Label(ctx context.Context, date time.Time, hour int) string {
	if r.TimeTables == nil {
		return constants.HourLabel(hour)
	}
	day := dbtime.DayName(date)
	tt, err := r.TimeTables.Lookup(ctx, day, hour)
	if err != nil {
		log.Printf("[WARN] lookup jam pelajaran (%s, %d): %v", day, hour, err)
		return constants.HourLabel(hour)
	}
	if tt == nil {
		return constants.HourLabel(hour)
	}
	return constants.TimeRangeLabel(tt.TimeTableStartTime, tt.TimeTableEndTime)
}
