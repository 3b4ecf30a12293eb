package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	termService "presensiku_backend/internals/features/school/academics/academic_terms/service"
	scheduleService "presensiku_backend/internals/features/school/academics/schedules/service"
	"presensiku_backend/internals/features/school/attendance_sessions/model"
	"presensiku_backend/internals/features/school/attendance_sessions/repository"
	journalModel "presensiku_backend/internals/features/school/teaching_journals/model"
	journalRepo "presensiku_backend/internals/features/school/teaching_journals/repository"
	journalService "presensiku_backend/internals/features/school/teaching_journals/service"
	"presensiku_backend/internals/helpers/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var friday = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

type fixture struct {
	sessions  *repository.MemorySessionStore
	journals  *journalRepo.MemoryJournalStore
	schedules *scheduleService.MemoryScheduleIndex
	settings  *termService.MemoryActiveSettingsProvider
	mat       *Materializer
	mut       *Mutator
}

func newFixture(seed ...journalModel.TeachingJournalModel) *fixture {
	f := &fixture{
		sessions:  repository.NewMemorySessionStore(),
		journals:  journalRepo.NewMemoryJournalStore(seed...),
		schedules: scheduleService.NewMemoryScheduleIndex(),
		settings:  termService.NewMemoryActiveSettingsProvider(termService.ActiveSettings{AcademicYear: "2024/2025", Semester: "Genap"}),
	}
	f.mat = NewMaterializer(f.sessions, f.journals, f.schedules, f.settings)
	f.mut = NewMutator(f.sessions, journalService.NewReconciler(f.journals, nil))
	return f
}

func input(period string) CreateOrFetchInput {
	return CreateOrFetchInput{
		TeacherID:   "T1",
		TeacherName: "Bu Sari",
		ClassName:   "10A",
		Subject:     "Math",
		Date:        "2025-01-10",
		Period:      period,
	}
}

func ptr[T any](v T) *T { return &v }

func journalRow(hour int, role journalModel.FillerRole, material, reflection string) journalModel.TeachingJournalModel {
	return journalModel.TeachingJournalModel{
		TeachingJournalID:         uuid.New(),
		TeachingJournalDate:       friday,
		TeachingJournalClassName:  "10A",
		TeachingJournalHour:       hour,
		TeachingJournalFillerRole: role,
		TeachingJournalMaterial:   material,
		TeachingJournalReflection: reflection,
	}
}

/* =========================
   Materializer
========================= */

func TestCreateOrFetch_Validation(t *testing.T) {
	f := newFixture()

	_, _, err := f.mat.CreateOrFetch(context.Background(), CreateOrFetchInput{Date: "10-01-2025", Period: "x"})
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	for _, field := range []string{"teacher_id", "teacher_name", "class_name", "subject", "date", "period"} {
		assert.Contains(t, ve.Fields, field)
	}
}

func TestCreateOrFetch_PeriodAboveMaxHour(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, _, err := f.mat.CreateOrFetch(ctx, input("1-200000"))
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "period")
	assert.Len(t, ve.Fields, 1)

	_, total, err := f.sessions.List(ctx, repository.ListFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreateOrFetch_Idempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, created, err := f.mat.CreateOrFetch(ctx, input("1-2"))
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := f.mat.CreateOrFetch(ctx, input(" 1-2 "))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.AttendanceSessionID, second.AttendanceSessionID)

	rows, total, err := f.sessions.List(ctx, repository.ListFilter{}, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, rows, 1)
}

func TestCreateOrFetch_NewSessionDefaults(t *testing.T) {
	f := newFixture()
	scheduleID := uuid.New()
	f.schedules.Put(scheduleService.SlotKey{TeacherID: "T1", ClassName: "10A", Subject: "Math", Period: "3"}, scheduleID)

	s, created, err := f.mat.CreateOrFetch(context.Background(), input("3"))
	require.NoError(t, err)
	require.True(t, created)

	assert.Equal(t, model.SessionStatusDraft, s.AttendanceSessionStatus)
	assert.Equal(t, model.DraftKindDefault, s.AttendanceSessionDraftKind)
	assert.Equal(t, "Jumat", s.AttendanceSessionDay)
	assert.Equal(t, 3, s.AttendanceSessionPeriodStart)
	assert.Equal(t, "2024/2025", s.AttendanceSessionAcademicYear)
	assert.Equal(t, "2", s.AttendanceSessionSemester)
	require.NotNil(t, s.AttendanceSessionScheduleID)
	assert.Equal(t, scheduleID, *s.AttendanceSessionScheduleID)
}

func TestCreateOrFetch_LookupFailuresAreNonFatal(t *testing.T) {
	f := newFixture()
	f.schedules.Err = errors.New("schedule down")
	f.settings.Err = errors.New("settings down")

	in := input("4")
	in.Semester = "ganjil"
	s, created, err := f.mat.CreateOrFetch(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Nil(t, s.AttendanceSessionScheduleID)
	assert.Equal(t, "", s.AttendanceSessionAcademicYear)
	assert.Equal(t, "1", s.AttendanceSessionSemester)
}

func TestCreateOrFetch_SeedsFromJournal(t *testing.T) {
	f := newFixture(
		journalRow(1, journalModel.FillerRoleAdmin, "dari admin", ""),
		journalRow(1, journalModel.FillerRoleGuru, "dari guru", "refleksi guru"),
	)

	s, created, err := f.mat.CreateOrFetch(context.Background(), input("1-2"))
	require.NoError(t, err)
	require.True(t, created)
	assert.Equal(t, "dari guru", s.AttendanceSessionMaterial)
	assert.Equal(t, "refleksi guru", s.AttendanceSessionReflection)
	// seed tidak menulis jurnal
	assert.Len(t, f.journals.All(), 2)
}

func TestCreateOrFetch_CallerSeedWins(t *testing.T) {
	f := newFixture(journalRow(1, journalModel.FillerRoleGuru, "dari jurnal", "refleksi jurnal"))

	in := input("1")
	in.Material = "dari pemanggil"
	s, _, err := f.mat.CreateOrFetch(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "dari pemanggil", s.AttendanceSessionMaterial)
	assert.Equal(t, "refleksi jurnal", s.AttendanceSessionReflection)
}

func TestCreateOrFetch_BackfillIsMonotonic(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, _, err := f.mat.CreateOrFetch(ctx, input("1"))
	require.NoError(t, err)
	assert.Empty(t, first.AttendanceSessionMaterial)

	row := journalRow(1, journalModel.FillerRoleGuru, "Pecahan", "")
	require.NoError(t, f.journals.Create(ctx, &row))

	second, _, err := f.mat.CreateOrFetch(ctx, input("1"))
	require.NoError(t, err)
	assert.Equal(t, "Pecahan", second.AttendanceSessionMaterial)

	stored, err := f.sessions.FindByID(ctx, first.AttendanceSessionID)
	require.NoError(t, err)
	assert.Equal(t, "Pecahan", stored.AttendanceSessionMaterial)

	// isi sesi yang sudah ada tidak pernah ditimpa jurnal
	mat := "Versi guru"
	_, err = f.sessions.UpdateFields(ctx, first.AttendanceSessionID, repository.SessionPatch{Material: &mat})
	require.NoError(t, err)
	third, _, err := f.mat.CreateOrFetch(ctx, input("1"))
	require.NoError(t, err)
	assert.Equal(t, "Versi guru", third.AttendanceSessionMaterial)
}

func TestCreateOrFetch_RaceRefetches(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	var winnerID uuid.UUID
	f.sessions.BeforeCreate = func(m *model.AttendanceSessionModel) {
		// request lain menang duluan
		f.sessions.BeforeCreate = nil
		other := *m
		other.AttendanceSessionID = uuid.New()
		winnerID = other.AttendanceSessionID
		require.NoError(t, f.sessions.Create(ctx, &other))
	}

	s, created, err := f.mat.CreateOrFetch(ctx, input("2"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, winnerID, s.AttendanceSessionID)
}

func TestCreateOrFetch_StoreFailure(t *testing.T) {
	f := newFixture()
	f.sessions.FailOn = func(op string) error { return errors.New("db down") }

	_, _, err := f.mat.CreateOrFetch(context.Background(), input("2"))
	var pe *apperror.PersistenceError
	assert.ErrorAs(t, err, &pe)
}

/* =========================
   Mutator
========================= */

func TestUpdate_NotFound(t *testing.T) {
	f := newFixture()
	_, err := f.mut.Update(context.Background(), uuid.New(), UpdateInput{Note: ptr("x")})
	var nf *apperror.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	f := newFixture()
	s, _, err := f.mat.CreateOrFetch(context.Background(), input("1"))
	require.NoError(t, err)

	_, err = f.mut.Update(context.Background(), s.AttendanceSessionID, UpdateInput{Status: ptr("DONE")})
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "status")
}

func TestUpdate_PartialLeavesOtherFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	in := input("1")
	in.Note = "awal"
	s, _, err := f.mat.CreateOrFetch(ctx, in)
	require.NoError(t, err)

	got, err := f.mut.Update(ctx, s.AttendanceSessionID, UpdateInput{DraftKind: ptr("DRAFT_GURU")})
	require.NoError(t, err)
	assert.Equal(t, model.DraftKindGuru, got.AttendanceSessionDraftKind)
	assert.Equal(t, "awal", got.AttendanceSessionNote)
	assert.Equal(t, model.SessionStatusDraft, got.AttendanceSessionStatus)

	// draft tanpa isi: jurnal tidak disentuh
	assert.Empty(t, f.journals.All())
	assert.Nil(t, got.AttendanceSessionJournalSyncedAt)
}

func TestUpdate_ReconcileFailureDoesNotFailUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.journals.FailOn = func(op string, m *journalModel.TeachingJournalModel) error {
		return errors.New("journal down")
	}
	s, _, err := f.mat.CreateOrFetch(ctx, input("1"))
	require.NoError(t, err)

	got, err := f.mut.Update(ctx, s.AttendanceSessionID, UpdateInput{Material: ptr("Bab 3")})
	require.NoError(t, err)
	assert.Equal(t, "Bab 3", got.AttendanceSessionMaterial)
	require.NotNil(t, got.AttendanceSessionJournalSync)
	assert.Equal(t, "failed", got.AttendanceSessionJournalSync["status"])
}

func TestResync_SurfacesError(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	s, _, err := f.mat.CreateOrFetch(ctx, input("1"))
	require.NoError(t, err)
	_, err = f.mut.Update(ctx, s.AttendanceSessionID, UpdateInput{Status: ptr("FINAL")})
	require.NoError(t, err)

	f.journals.FailOn = func(op string, m *journalModel.TeachingJournalModel) error {
		return errors.New("journal down")
	}
	_, err = f.mut.Resync(ctx, s.AttendanceSessionID)
	var pe *apperror.PersistenceError
	assert.ErrorAs(t, err, &pe)

	f.journals.FailOn = nil
	rep, err := f.mut.Resync(ctx, s.AttendanceSessionID)
	require.NoError(t, err)
	require.Len(t, rep.Hours, 1)
	assert.Equal(t, journalService.ActionUpdated, rep.Hours[0].Action)
}

func TestEndToEnd_CreateThenFinalize(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	s, created, err := f.mat.CreateOrFetch(ctx, input("1-2"))
	require.NoError(t, err)
	require.True(t, created)

	got, err := f.mut.Update(ctx, s.AttendanceSessionID, UpdateInput{
		Status:   ptr("FINAL"),
		Material: ptr("Persamaan Linear"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.SessionStatusFinal, got.AttendanceSessionStatus)
	require.NotNil(t, got.AttendanceSessionJournalSyncedAt)
	assert.Equal(t, "ok", got.AttendanceSessionJournalSync["status"])

	rows := f.journals.All()
	require.Len(t, rows, 2)
	for i, row := range rows {
		assert.Equal(t, i+1, row.TeachingJournalHour)
		assert.Equal(t, "Persamaan Linear", row.TeachingJournalMaterial)
		assert.Equal(t, journalModel.FillerRoleGuru, row.TeachingJournalFillerRole)
		assert.Equal(t, "Sesuai", row.TeachingJournalAttendanceCategory)
		assert.Equal(t, fmt.Sprintf("Jam Ke-%d", i+1), row.TeachingJournalTimeLabel)
	}
}
