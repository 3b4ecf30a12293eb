package timetables

import (
	"log"
	"os"
	"strings"
	"time"

	"presensiku_backend/internals/features/school/academics/timetables/model"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimeTableSeed struct {
	Day       string `json:"day"`
	Hour      int    `json:"hour"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ParseTimeTables: decode + validasi format jam "HH:MM".
func ParseTimeTables(data []byte) ([]model.TimeTableModel, error) {
	var seeds []TimeTableSeed
	if err := sonic.Unmarshal(data, &seeds); err != nil {
		return nil, errors.Wrap(err, "decode JSON jam pelajaran")
	}

	out := make([]model.TimeTableModel, 0, len(seeds))
	for i, s := range seeds {
		day := strings.TrimSpace(s.Day)
		if day == "" || s.Hour < 1 {
			return nil, errors.Errorf("baris %d: hari/jam tidak valid", i)
		}
		for _, v := range []string{s.StartTime, s.EndTime} {
			if _, err := time.Parse("15:04", v); err != nil {
				return nil, errors.Errorf("baris %d: jam %q bukan HH:MM", i, v)
			}
		}
		out = append(out, model.TimeTableModel{
			TimeTableDay:       day,
			TimeTableHour:      s.Hour,
			TimeTableStartTime: s.StartTime,
			TimeTableEndTime:   s.EndTime,
		})
	}
	return out, nil
}

// SeedTimeTablesFromJSON: idempotent, slot (hari, jam) yang sudah ada dilewati.
func SeedTimeTablesFromJSON(db *gorm.DB, filePath string) error {
	log.Println("[INFO] Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "baca %s", filePath)
	}
	rows, err := ParseTimeTables(file)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		log.Println("[INFO] Tidak ada jam pelajaran untuk diinsert.")
		return nil
	}

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "time_table_day"}, {Name: "time_table_hour"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		return errors.Wrap(res.Error, "bulk insert time_tables")
	}
	log.Printf("[INFO] Berhasil insert %d dari %d jam pelajaran", res.RowsAffected, len(rows))
	return nil
}
