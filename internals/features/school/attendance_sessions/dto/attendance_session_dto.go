// file: internals/features/school/attendance_sessions/dto/attendance_session_dto.go
package dto

import (
	"strings"
	"time"

	"presensiku_backend/internals/features/school/attendance_sessions/model"
	"presensiku_backend/internals/features/school/attendance_sessions/repository"
	"presensiku_backend/internals/features/school/attendance_sessions/service"
	"presensiku_backend/internals/helpers/dbtime"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =========================
   Request: create-or-fetch
========================= */

type CreateAttendanceSessionRequest struct {
	TeacherID             string  `json:"teacher_id"`
	TeacherName           string  `json:"teacher_name"`
	SubstituteTeacherID   *string `json:"substitute_teacher_id"`
	SubstituteTeacherName *string `json:"substitute_teacher_name"`
	ClassName             string  `json:"class_name"`
	Subject               string  `json:"subject"`
	Date                  string  `json:"date"`   // YYYY-MM-DD
	Period                string  `json:"period"` // "3" | "1-2"
	AcademicYear          string  `json:"academic_year"`
	Semester              string  `json:"semester"`
	Material              string  `json:"material"`
	Reflection            string  `json:"reflection"`
	Note                  string  `json:"note"`
	CreatedBy             *string `json:"created_by"`
}

func (r CreateAttendanceSessionRequest) ToInput() service.CreateOrFetchInput {
	return service.CreateOrFetchInput{
		TeacherID:             r.TeacherID,
		TeacherName:           r.TeacherName,
		ClassName:             r.ClassName,
		Subject:               r.Subject,
		Date:                  r.Date,
		Period:                r.Period,
		SubstituteTeacherID:   trimPtr(r.SubstituteTeacherID),
		SubstituteTeacherName: trimPtr(r.SubstituteTeacherName),
		AcademicYear:          r.AcademicYear,
		Semester:              r.Semester,
		Material:              r.Material,
		Reflection:            r.Reflection,
		Note:                  r.Note,
		CreatedBy:             trimPtr(r.CreatedBy),
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================
   Request: patch
========================= */

// Field yang tidak dikirim = tidak diubah.
type PatchAttendanceSessionRequest struct {
	Status     *string `json:"status"`
	DraftKind  *string `json:"draft_kind"`
	Material   *string `json:"material"`
	Note       *string `json:"note"`
	Reflection *string `json:"reflection"`
}

func (r PatchAttendanceSessionRequest) ToInput() service.UpdateInput {
	in := service.UpdateInput{
		Material:   r.Material,
		Note:       r.Note,
		Reflection: r.Reflection,
	}
	if r.Status != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Status))
		in.Status = &v
	}
	if r.DraftKind != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.DraftKind))
		in.DraftKind = &v
	}
	return in
}

/* =========================
   Query: list
========================= */

// ListQuery membaca filter dari query string. Tanggal tidak valid -> 400.
func ListQuery(c *fiber.Ctx) (repository.ListFilter, error) {
	f := repository.ListFilter{
		TeacherID:    strings.TrimSpace(c.Query("teacher_id")),
		ClassName:    strings.TrimSpace(c.Query("class_name")),
		AcademicYear: strings.TrimSpace(c.Query("academic_year")),
		Semester:     strings.TrimSpace(c.Query("semester")),
	}
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		d, err := dbtime.ParseYMD(raw)
		if err != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		f.Date = &d
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
				f.Statuses = append(f.Statuses, s)
			}
		}
	}
	return f, nil
}

/* =========================
   Response
========================= */

type AttendanceSessionResponse struct {
	ID                    uuid.UUID  `json:"id"`
	ScheduleID            *uuid.UUID `json:"schedule_id,omitempty"`
	TeacherID             string     `json:"teacher_id"`
	TeacherName           string     `json:"teacher_name"`
	SubstituteTeacherID   *string    `json:"substitute_teacher_id,omitempty"`
	SubstituteTeacherName *string    `json:"substitute_teacher_name,omitempty"`
	ClassName             string     `json:"class_name"`
	Subject               string     `json:"subject"`
	Date                  string     `json:"date"`
	Day                   string     `json:"day"`
	Period                string     `json:"period"`
	Status                string     `json:"status"`
	DraftKind             string     `json:"draft_kind"`
	Material              string     `json:"material"`
	Note                  string     `json:"note"`
	Reflection            string     `json:"reflection"`
	AcademicYear          string     `json:"academic_year"`
	Semester              string     `json:"semester"`
	CreatedBy             *string    `json:"created_by,omitempty"`
	JournalSyncedAt       *time.Time `json:"journal_synced_at,omitempty"`
	JournalSync           any        `json:"journal_sync,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func FromModel(m *model.AttendanceSessionModel) AttendanceSessionResponse {
	out := AttendanceSessionResponse{
		ID:                    m.AttendanceSessionID,
		ScheduleID:            m.AttendanceSessionScheduleID,
		TeacherID:             m.AttendanceSessionTeacherID,
		TeacherName:           m.AttendanceSessionTeacherName,
		SubstituteTeacherID:   m.AttendanceSessionSubstituteTeacherID,
		SubstituteTeacherName: m.AttendanceSessionSubstituteTeacherName,
		ClassName:             m.AttendanceSessionClassName,
		Subject:               m.AttendanceSessionSubject,
		Date:                  dbtime.FormatYMD(m.AttendanceSessionDate),
		Day:                   m.AttendanceSessionDay,
		Period:                m.AttendanceSessionPeriod,
		Status:                string(m.AttendanceSessionStatus),
		DraftKind:             string(m.AttendanceSessionDraftKind),
		Material:              m.AttendanceSessionMaterial,
		Note:                  m.AttendanceSessionNote,
		Reflection:            m.AttendanceSessionReflection,
		AcademicYear:          m.AttendanceSessionAcademicYear,
		Semester:              m.AttendanceSessionSemester,
		CreatedBy:             m.AttendanceSessionCreatedBy,
		JournalSyncedAt:       m.AttendanceSessionJournalSyncedAt,
		CreatedAt:             m.AttendanceSessionCreatedAt,
		UpdatedAt:             m.AttendanceSessionUpdatedAt,
	}
	if len(m.AttendanceSessionJournalSync) > 0 {
		out.JournalSync = m.AttendanceSessionJournalSync
	}
	return out
}

func FromModels(rows []model.AttendanceSessionModel) []AttendanceSessionResponse {
	out := make([]AttendanceSessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
