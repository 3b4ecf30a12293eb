// file: internals/features/school/attendance_sessions/model/attendance_session_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
=========================================================

	Enums
	=========================================================
*/
type SessionStatus string

const (
	SessionStatusDraft SessionStatus = "DRAFT"
	SessionStatusFinal SessionStatus = "FINAL"
)

// DraftKind tidak punya aturan transisi; hanya disimpan.
type DraftKind string

const (
	DraftKindDefault DraftKind = "DRAFT_DEFAULT"
	DraftKindGuru    DraftKind = "DRAFT_GURU"
	DraftKindFinal   DraftKind = "FINAL"
)

/*
=========================================================

	Model
	=========================================================
*/
type AttendanceSessionModel struct {
	AttendanceSessionID         uuid.UUID  `gorm:"type:uuid;primaryKey;column:attendance_session_id" json:"attendance_session_id"`
	AttendanceSessionScheduleID *uuid.UUID `gorm:"type:uuid;column:attendance_session_schedule_id" json:"attendance_session_schedule_id,omitempty"`

	AttendanceSessionTeacherID             string  `gorm:"type:text;not null;column:attendance_session_teacher_id" json:"attendance_session_teacher_id"`
	AttendanceSessionTeacherName           string  `gorm:"type:text;not null;column:attendance_session_teacher_name" json:"attendance_session_teacher_name"`
	AttendanceSessionSubstituteTeacherID   *string `gorm:"type:text;column:attendance_session_substitute_teacher_id" json:"attendance_session_substitute_teacher_id,omitempty"`
	AttendanceSessionSubstituteTeacherName *string `gorm:"type:text;column:attendance_session_substitute_teacher_name" json:"attendance_session_substitute_teacher_name,omitempty"`

	// Natural key: (class_name, date, period, subject)
	AttendanceSessionClassName   string    `gorm:"type:text;not null;column:attendance_session_class_name" json:"attendance_session_class_name"`
	AttendanceSessionSubject     string    `gorm:"type:text;not null;column:attendance_session_subject" json:"attendance_session_subject"`
	AttendanceSessionDate        time.Time `gorm:"type:date;not null;column:attendance_session_date" json:"attendance_session_date"`
	AttendanceSessionPeriod      string    `gorm:"type:text;not null;column:attendance_session_period" json:"attendance_session_period"`
	AttendanceSessionPeriodStart int       `gorm:"not null;column:attendance_session_period_start" json:"attendance_session_period_start"`
	AttendanceSessionDay         string    `gorm:"type:text;not null;column:attendance_session_day" json:"attendance_session_day"`

	AttendanceSessionStatus    SessionStatus `gorm:"type:text;not null;default:'DRAFT';column:attendance_session_status" json:"attendance_session_status"`
	AttendanceSessionDraftKind DraftKind     `gorm:"type:text;not null;default:'DRAFT_DEFAULT';column:attendance_session_draft_kind" json:"attendance_session_draft_kind"`

	AttendanceSessionMaterial   string `gorm:"type:text;not null;default:'';column:attendance_session_material" json:"attendance_session_material"`
	AttendanceSessionNote       string `gorm:"type:text;not null;default:'';column:attendance_session_note" json:"attendance_session_note"`
	AttendanceSessionReflection string `gorm:"type:text;not null;default:'';column:attendance_session_reflection" json:"attendance_session_reflection"`

	AttendanceSessionAcademicYear string  `gorm:"type:text;not null;default:'';column:attendance_session_academic_year" json:"attendance_session_academic_year"`
	AttendanceSessionSemester     string  `gorm:"type:text;not null;default:'';column:attendance_session_semester" json:"attendance_session_semester"`
	AttendanceSessionCreatedBy    *string `gorm:"type:text;column:attendance_session_created_by" json:"attendance_session_created_by,omitempty"`

	// Jejak sinkron ke jurnal mengajar (best effort)
	AttendanceSessionJournalSyncedAt *time.Time        `gorm:"type:timestamptz;column:attendance_session_journal_synced_at" json:"attendance_session_journal_synced_at,omitempty"`
	AttendanceSessionJournalSync     datatypes.JSONMap `gorm:"type:jsonb;column:attendance_session_journal_sync" json:"attendance_session_journal_sync,omitempty"`

	AttendanceSessionCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:attendance_session_created_at" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:attendance_session_updated_at" json:"attendance_session_updated_at"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

// HasSubstitute: sesi diisi guru pengganti.
func (m *AttendanceSessionModel) HasSubstitute() bool {
	return m.AttendanceSessionSubstituteTeacherID != nil &&
		strings.TrimSpace(*m.AttendanceSessionSubstituteTeacherID) != ""
}

// NeedsJournal: ada isi yang layak disinkron ke jurnal.
func (m *AttendanceSessionModel) NeedsJournal() bool {
	return m.AttendanceSessionStatus == SessionStatusFinal ||
		m.AttendanceSessionMaterial != "" ||
		m.AttendanceSessionReflection != ""
}

// IsFilled: materi dan refleksi sudah terisi semua.
func (m *AttendanceSessionModel) IsFilled() bool {
	return m.AttendanceSessionMaterial != "" && m.AttendanceSessionReflection != ""
}
