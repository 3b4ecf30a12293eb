// internals/features/school/academics/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassScheduleModel: slot jadwal mengajar (guru, kelas, mapel, jam).
// Hanya dibaca oleh modul presensi untuk tautan informatif.
type ClassScheduleModel struct {
	ClassScheduleID uuid.UUID `gorm:"column:class_schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_schedule_id"`

	ClassScheduleTeacherID string  `gorm:"column:class_schedule_teacher_id;type:text;not null" json:"class_schedule_teacher_id"`
	ClassScheduleClassName string  `gorm:"column:class_schedule_class_name;type:text;not null" json:"class_schedule_class_name"`
	ClassScheduleSubject   string  `gorm:"column:class_schedule_subject;type:text;not null" json:"class_schedule_subject"`
	ClassScheduleDay       *string `gorm:"column:class_schedule_day;type:text" json:"class_schedule_day,omitempty"`
	ClassSchedulePeriod    string  `gorm:"column:class_schedule_period;type:text;not null" json:"class_schedule_period"`

	ClassScheduleIsActive bool `gorm:"column:class_schedule_is_active;not null;default:true" json:"class_schedule_is_active"`

	ClassScheduleCreatedAt time.Time `gorm:"column:class_schedule_created_at;type:timestamptz;not null;autoCreateTime" json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt time.Time `gorm:"column:class_schedule_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_schedule_updated_at"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }
