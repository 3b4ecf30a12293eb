// file: internals/features/school/attendance_sessions/service/inputs.go
package service

import (
	"strings"
	"time"

	"presensiku_backend/internals/features/school/attendance_sessions/model"
	"presensiku_backend/internals/helpers/apperror"
	"presensiku_backend/internals/helpers/dbtime"
)

var validate = apperror.NewValidator()

// CreateOrFetchInput: tag json dipakai sebagai nama field di error validasi.
type CreateOrFetchInput struct {
	TeacherID   string `json:"teacher_id" validate:"required"`
	TeacherName string `json:"teacher_name" validate:"required"`
	ClassName   string `json:"class_name" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Period      string `json:"period" validate:"required"`

	SubstituteTeacherID   *string `json:"substitute_teacher_id"`
	SubstituteTeacherName *string `json:"substitute_teacher_name"`

	AcademicYear string `json:"academic_year"`
	Semester     string `json:"semester"`

	// Isi awal opsional dari pemanggil
	Material   string `json:"material"`
	Reflection string `json:"reflection"`
	Note       string `json:"note"`

	CreatedBy *string `json:"created_by"`
}

type createArgs struct {
	CreateOrFetchInput
	date time.Time
	slot model.PeriodSlot
}

func (in *CreateOrFetchInput) normalize() {
	in.TeacherID = strings.TrimSpace(in.TeacherID)
	in.TeacherName = strings.TrimSpace(in.TeacherName)
	in.ClassName = strings.TrimSpace(in.ClassName)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Date = strings.TrimSpace(in.Date)
	in.Period = strings.TrimSpace(in.Period)
	in.AcademicYear = strings.TrimSpace(in.AcademicYear)
	in.Semester = strings.TrimSpace(in.Semester)
}

// parse: validasi tag + tanggal + periode sekaligus; semua field yang salah dilaporkan.
func (in CreateOrFetchInput) parse() (createArgs, error) {
	in.normalize()
	out := createArgs{CreateOrFetchInput: in}

	ve := &apperror.ValidationError{}
	if err := validate.Struct(in); err != nil {
		if tagErr, ok := apperror.FromValidator(err).(*apperror.ValidationError); ok {
			ve = tagErr
		}
	}

	if in.Date != "" {
		d, err := dbtime.ParseYMD(in.Date)
		if err != nil {
			ve.Add("date", err.Error())
		}
		out.date = d
	}
	if in.Period != "" {
		s, err := model.ParsePeriodSlot(in.Period)
		if err != nil {
			ve.Add("period", err.Error())
		}
		out.slot = s
	}

	if len(ve.Fields) > 0 {
		return out, ve
	}
	return out, nil
}

// UpdateInput: nil = tidak diubah.
type UpdateInput struct {
	Status     *string `json:"status" validate:"omitempty,oneof=DRAFT FINAL"`
	DraftKind  *string `json:"draft_kind" validate:"omitempty,oneof=DRAFT_DEFAULT DRAFT_GURU FINAL"`
	Material   *string `json:"material"`
	Note       *string `json:"note"`
	Reflection *string `json:"reflection"`
}
