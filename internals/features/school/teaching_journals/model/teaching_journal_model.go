// file: internals/features/school/teaching_journals/model/teaching_journal_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

/*
=========================================================

	FillerRole: siapa yang paling berwenang mengisi baris jurnal.
	GURU > ADMIN > SISWA/unknown
	=========================================================
*/
type FillerRole string

const (
	FillerRoleGuru  FillerRole = "GURU"
	FillerRoleAdmin FillerRole = "ADMIN"
	FillerRoleSiswa FillerRole = "SISWA"
)

// Weight selalu terdefinisi; nilai yang tidak dikenal bernilai 0.
func (r FillerRole) Weight() int {
	switch FillerRole(strings.ToUpper(strings.TrimSpace(string(r)))) {
	case FillerRoleGuru:
		return 2
	case FillerRoleAdmin:
		return 1
	default:
		return 0
	}
}

/*
=========================================================

	Model
	=========================================================
*/
type TeachingJournalModel struct {
	TeachingJournalID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teaching_journal_id" json:"teaching_journal_id"`

	// Slot logis: (tanggal, kelas, jam). Boleh dobel di data lama.
	TeachingJournalDate      time.Time `gorm:"type:date;not null;column:teaching_journal_date;index:idx_teaching_journals_slot,priority:1" json:"teaching_journal_date"`
	TeachingJournalDay       string    `gorm:"type:text;not null;default:'';column:teaching_journal_day" json:"teaching_journal_day"`
	TeachingJournalClassName string    `gorm:"type:text;not null;column:teaching_journal_class_name;index:idx_teaching_journals_slot,priority:2" json:"teaching_journal_class_name"`
	TeachingJournalSubject   string    `gorm:"type:text;not null;default:'';column:teaching_journal_subject" json:"teaching_journal_subject"`
	TeachingJournalHour      int       `gorm:"not null;column:teaching_journal_hour;index:idx_teaching_journals_slot,priority:3" json:"teaching_journal_hour"`
	TeachingJournalTimeLabel string    `gorm:"type:text;not null;default:'';column:teaching_journal_time_label" json:"teaching_journal_time_label"`

	TeachingJournalTeacherID   string `gorm:"type:text;not null;default:'';column:teaching_journal_teacher_id" json:"teaching_journal_teacher_id"`
	TeachingJournalTeacherName string `gorm:"type:text;not null;default:'';column:teaching_journal_teacher_name" json:"teaching_journal_teacher_name"`

	// "Sesuai" | "Tukaran/Diganti" | kategori lain dari generator
	TeachingJournalAttendanceCategory   string `gorm:"type:text;not null;default:'Sesuai';column:teaching_journal_attendance_category" json:"teaching_journal_attendance_category"`
	TeachingJournalSubstituteTeacherName string `gorm:"type:text;not null;default:'';column:teaching_journal_substitute_teacher_name" json:"teaching_journal_substitute_teacher_name"`
	TeachingJournalSubstituteStatus      string `gorm:"type:text;not null;default:'';column:teaching_journal_substitute_status" json:"teaching_journal_substitute_status"`

	TeachingJournalMaterial   string     `gorm:"type:text;not null;default:'';column:teaching_journal_material" json:"teaching_journal_material"`
	TeachingJournalReflection string     `gorm:"type:text;not null;default:'';column:teaching_journal_reflection" json:"teaching_journal_reflection"`
	TeachingJournalFillerRole FillerRole `gorm:"type:text;not null;default:'';column:teaching_journal_filler_role" json:"teaching_journal_filler_role"`

	TeachingJournalCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:teaching_journal_created_at" json:"teaching_journal_created_at"`
	TeachingJournalUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:teaching_journal_updated_at" json:"teaching_journal_updated_at"`
}

func (TeachingJournalModel) TableName() string { return "teaching_journals" }
