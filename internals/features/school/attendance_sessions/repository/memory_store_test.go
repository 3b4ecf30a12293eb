package repository

import (
	"context"
	"testing"
	"time"

	"presensiku_backend/internals/features/school/attendance_sessions/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func newSession(class, date, period, subject string) *model.AttendanceSessionModel {
	return &model.AttendanceSessionModel{
		AttendanceSessionTeacherID:   "T1",
		AttendanceSessionTeacherName: "Bu Sari",
		AttendanceSessionClassName:   class,
		AttendanceSessionDate:        day(date),
		AttendanceSessionPeriod:      period,
		AttendanceSessionPeriodStart: model.LeadingHour(period),
		AttendanceSessionSubject:     subject,
		AttendanceSessionStatus:      model.SessionStatusDraft,
	}
}

func TestMemorySessionStore_NaturalKeyUnique(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore()

	require.NoError(t, s.Create(ctx, newSession("10A", "2025-01-10", "1-2", "Math")))
	err := s.Create(ctx, newSession("10A", "2025-01-10", "1-2", "Math"))
	assert.ErrorIs(t, err, ErrDuplicateSession)

	// mapel beda = key beda
	require.NoError(t, s.Create(ctx, newSession("10A", "2025-01-10", "1-2", "IPA")))

	got, err := s.FindByNaturalKey(ctx, NaturalKey{ClassName: "10A", Date: day("2025-01-10"), Period: "1-2", Subject: "Math"})
	require.NoError(t, err)
	require.NotNil(t, got)

	miss, err := s.FindByNaturalKey(ctx, NaturalKey{ClassName: "10B", Date: day("2025-01-10"), Period: "1-2", Subject: "Math"})
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestMemorySessionStore_UpdateFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore()
	m := newSession("10A", "2025-01-10", "3", "Math")
	m.AttendanceSessionNote = "catatan"
	require.NoError(t, s.Create(ctx, m))

	mat := "Pecahan"
	final := model.SessionStatusFinal
	got, err := s.UpdateFields(ctx, m.AttendanceSessionID, SessionPatch{Material: &mat, Status: &final})
	require.NoError(t, err)
	assert.Equal(t, "Pecahan", got.AttendanceSessionMaterial)
	assert.Equal(t, model.SessionStatusFinal, got.AttendanceSessionStatus)
	assert.Equal(t, "catatan", got.AttendanceSessionNote)

	_, err = s.UpdateFields(ctx, uuid.New(), SessionPatch{Material: &mat})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySessionStore_ListOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStore()
	require.NoError(t, s.Create(ctx, newSession("10A", "2025-01-09", "1", "Math")))
	require.NoError(t, s.Create(ctx, newSession("10A", "2025-01-10", "10", "Math")))
	require.NoError(t, s.Create(ctx, newSession("10A", "2025-01-10", "3-4", "Math")))
	final := newSession("10B", "2025-01-10", "2", "IPA")
	final.AttendanceSessionStatus = model.SessionStatusFinal
	require.NoError(t, s.Create(ctx, final))

	rows, total, err := s.List(ctx, ListFilter{ClassName: "10A"}, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 3)
	assert.Equal(t, "3-4", rows[0].AttendanceSessionPeriod)
	assert.Equal(t, "10", rows[1].AttendanceSessionPeriod)
	assert.Equal(t, "1", rows[2].AttendanceSessionPeriod)

	rows, total, err = s.List(ctx, ListFilter{Statuses: []string{"FINAL"}}, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "10B", rows[0].AttendanceSessionClassName)

	rows, total, err = s.List(ctx, ListFilter{}, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, rows, 2)
}

func TestSessionPatchColumns(t *testing.T) {
	assert.True(t, SessionPatch{}.IsEmpty())

	note := ""
	cols := SessionPatch{Note: &note}.Columns()
	assert.Equal(t, map[string]any{"attendance_session_note": ""}, cols)
}
