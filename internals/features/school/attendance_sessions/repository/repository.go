// file: internals/features/school/attendance_sessions/repository/repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"presensiku_backend/internals/features/school/attendance_sessions/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	// ErrDuplicateSession: insert bentrok dengan natural key (kelas, tanggal, jam, mapel).
	ErrDuplicateSession = errors.New("sesi presensi dengan natural key yang sama sudah ada")
	ErrNotFound         = errors.New("sesi presensi tidak ditemukan")
)

type NaturalKey struct {
	ClassName string
	Date      time.Time
	Period    string
	Subject   string
}

// SessionPatch: hanya field non-nil yang ditulis.
type SessionPatch struct {
	Status     *model.SessionStatus
	DraftKind  *model.DraftKind
	Material   *string
	Note       *string
	Reflection *string

	JournalSyncedAt *time.Time
	JournalSync     datatypes.JSONMap
}

func (p SessionPatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Columns: map kolom -> nilai untuk gorm Updates.
func (p SessionPatch) Columns() map[string]any {
	out := map[string]any{}
	if p.Status != nil {
		out["attendance_session_status"] = *p.Status
	}
	if p.DraftKind != nil {
		out["attendance_session_draft_kind"] = *p.DraftKind
	}
	if p.Material != nil {
		out["attendance_session_material"] = *p.Material
	}
	if p.Note != nil {
		out["attendance_session_note"] = *p.Note
	}
	if p.Reflection != nil {
		out["attendance_session_reflection"] = *p.Reflection
	}
	if p.JournalSyncedAt != nil {
		out["attendance_session_journal_synced_at"] = *p.JournalSyncedAt
	}
	if p.JournalSync != nil {
		out["attendance_session_journal_sync"] = p.JournalSync
	}
	return out
}

// Apply menerapkan patch ke salinan model di memori.
func (p SessionPatch) Apply(m *model.AttendanceSessionModel) {
	if p.Status != nil {
		m.AttendanceSessionStatus = *p.Status
	}
	if p.DraftKind != nil {
		m.AttendanceSessionDraftKind = *p.DraftKind
	}
	if p.Material != nil {
		m.AttendanceSessionMaterial = *p.Material
	}
	if p.Note != nil {
		m.AttendanceSessionNote = *p.Note
	}
	if p.Reflection != nil {
		m.AttendanceSessionReflection = *p.Reflection
	}
	if p.JournalSyncedAt != nil {
		t := *p.JournalSyncedAt
		m.AttendanceSessionJournalSyncedAt = &t
	}
	if p.JournalSync != nil {
		m.AttendanceSessionJournalSync = p.JournalSync
	}
}

type ListFilter struct {
	TeacherID    string
	ClassName    string
	Date         *time.Time
	AcademicYear string
	Semester     string
	Statuses     []string
}

type SessionStore interface {
	// FindByNaturalKey: (nil, nil) kalau belum ada.
	FindByNaturalKey(ctx context.Context, key NaturalKey) (*model.AttendanceSessionModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.AttendanceSessionModel, error)
	// Create mengembalikan ErrDuplicateSession kalau natural key sudah terpakai.
	Create(ctx context.Context, m *model.AttendanceSessionModel) error
	// UpdateFields mengembalikan baris setelah update, atau ErrNotFound.
	UpdateFields(ctx context.Context, id uuid.UUID, patch SessionPatch) (*model.AttendanceSessionModel, error)
	// List: urut tanggal terbaru, lalu jam pelajaran naik.
	List(ctx context.Context, f ListFilter, limit, offset int) ([]model.AttendanceSessionModel, int64, error)
}
