// file: internals/features/school/teaching_journals/service/merge.go
package service

import (
	"strings"

	"presensiku_backend/internals/constants"
	sessionModel "presensiku_backend/internals/features/school/attendance_sessions/model"
	"presensiku_backend/internals/features/school/teaching_journals/model"
)

// fillIfEmpty: nilai masuk yang tidak kosong menang; kosong tidak pernah menghapus.
func fillIfEmpty(current, incoming string) string {
	if incoming != "" {
		return incoming
	}
	return current
}

func substituteName(s *sessionModel.AttendanceSessionModel) string {
	if s.AttendanceSessionSubstituteTeacherName != nil {
		if n := strings.TrimSpace(*s.AttendanceSessionSubstituteTeacherName); n != "" {
			return n
		}
	}
	return s.AttendanceSessionTeacherName
}

// MergeSession menimpa baris jurnal pemenang dengan isi sesi (jalur update).
func MergeSession(row *model.TeachingJournalModel, s *sessionModel.AttendanceSessionModel) {
	row.TeachingJournalFillerRole = model.FillerRoleGuru
	row.TeachingJournalMaterial = fillIfEmpty(row.TeachingJournalMaterial, s.AttendanceSessionMaterial)
	row.TeachingJournalReflection = fillIfEmpty(row.TeachingJournalReflection, s.AttendanceSessionReflection)

	if s.HasSubstitute() {
		row.TeachingJournalAttendanceCategory = constants.JournalCategorySubstituted
		row.TeachingJournalSubstituteTeacherName = substituteName(s)
		row.TeachingJournalSubstituteStatus = constants.SubstituteStatusPresent
	}
}

// NewJournalFromSession membangun baris jurnal baru untuk satu jam (jalur insert).
func NewJournalFromSession(s *sessionModel.AttendanceSessionModel, hour int, label string) *model.TeachingJournalModel {
	row := &model.TeachingJournalModel{
		TeachingJournalDate:               s.AttendanceSessionDate,
		TeachingJournalDay:                s.AttendanceSessionDay,
		TeachingJournalClassName:          s.AttendanceSessionClassName,
		TeachingJournalSubject:            s.AttendanceSessionSubject,
		TeachingJournalHour:               hour,
		TeachingJournalTimeLabel:          label,
		TeachingJournalTeacherID:          s.AttendanceSessionTeacherID,
		TeachingJournalTeacherName:        s.AttendanceSessionTeacherName,
		TeachingJournalAttendanceCategory: constants.JournalCategoryOnSchedule,
		TeachingJournalMaterial:           s.AttendanceSessionMaterial,
		TeachingJournalReflection:         s.AttendanceSessionReflection,
		TeachingJournalFillerRole:         model.FillerRoleGuru,
	}
	if s.HasSubstitute() {
		row.TeachingJournalAttendanceCategory = constants.JournalCategorySubstituted
		row.TeachingJournalSubstituteTeacherName = substituteName(s)
		row.TeachingJournalSubstituteStatus = constants.SubstituteStatusPresent
	}
	return row
}
