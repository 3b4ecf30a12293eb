package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeTableModel: jam pelajaran ke-N pada hari tertentu.
type TimeTableModel struct {
	TimeTableID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:time_table_id" json:"time_table_id"`
	TimeTableDay       string    `gorm:"type:text;not null;column:time_table_day;uniqueIndex:uq_time_tables_day_hour,priority:1" json:"time_table_day"`
	TimeTableHour      int       `gorm:"not null;column:time_table_hour;uniqueIndex:uq_time_tables_day_hour,priority:2" json:"time_table_hour"`
	TimeTableStartTime string    `gorm:"type:varchar(5);not null;column:time_table_start_time" json:"time_table_start_time"` // "07:00"
	TimeTableEndTime   string    `gorm:"type:varchar(5);not null;column:time_table_end_time" json:"time_table_end_time"`
	TimeTableCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:time_table_created_at" json:"time_table_created_at"`
}

func (TimeTableModel) TableName() string { return "time_tables" }
