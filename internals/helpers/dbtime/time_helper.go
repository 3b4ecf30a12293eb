// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"fmt"
	"strings"
	"time"
)

const LayoutYMD = "2006-01-02"

// ParseYMD mem-parse "YYYY-MM-DD" menjadi tanggal murni (00:00 UTC),
// sama dengan cara kolom DATE dibaca balik dari Postgres.
func ParseYMD(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("tanggal kosong")
	}
	t, err := time.Parse(LayoutYMD, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("tanggal %q tidak valid (YYYY-MM-DD)", s)
	}
	return DateOnly(t), nil
}

// DateOnly membuang komponen jam; hasil selalu UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatYMD(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LayoutYMD)
}

var dayNames = [...]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

// DayName: nama hari (Indonesia) untuk tanggal t.
func DayName(t time.Time) string {
	return dayNames[t.Weekday()]
}
