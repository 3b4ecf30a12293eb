// file: internals/features/school/attendance_sessions/model/period_slot.go
package model

import (
	"fmt"
	"strconv"
	"strings"

	"presensiku_backend/internals/constants"
)

// PeriodSlot: rentang jam pelajaran inklusif. "3" -> {3,3}, "1-2" -> {1,2}.
// Jam dibatasi 1..constants.MaxLessonHour.
type PeriodSlot struct {
	Start int
	End   int
}

func ParsePeriodSlot(s string) (PeriodSlot, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return PeriodSlot{}, fmt.Errorf("jam pelajaran kosong")
	}

	startStr, endStr, isRange := strings.Cut(raw, "-")
	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil || start < 1 {
		return PeriodSlot{}, fmt.Errorf("jam pelajaran tidak valid: %q", s)
	}
	if start > constants.MaxLessonHour {
		return PeriodSlot{}, fmt.Errorf("jam pelajaran maksimal %d: %q", constants.MaxLessonHour, s)
	}
	if !isRange {
		return PeriodSlot{Start: start, End: start}, nil
	}

	end, err := strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil || end < start {
		return PeriodSlot{}, fmt.Errorf("rentang jam pelajaran tidak valid: %q", s)
	}
	if end > constants.MaxLessonHour {
		return PeriodSlot{}, fmt.Errorf("jam pelajaran maksimal %d: %q", constants.MaxLessonHour, s)
	}
	return PeriodSlot{Start: start, End: end}, nil
}

// Hours: semua jam dalam rentang, berurutan.
func (p PeriodSlot) Hours() []int {
	if p.Start < 1 || p.End < p.Start || p.End > constants.MaxLessonHour {
		return nil
	}
	out := make([]int, 0, p.End-p.Start+1)
	for h := p.Start; h <= p.End; h++ {
		out = append(out, h)
	}
	return out
}

func (p PeriodSlot) String() string {
	if p.Start == p.End {
		return strconv.Itoa(p.Start)
	}
	return fmt.Sprintf("%d-%d", p.Start, p.End)
}

// LeadingHour: jam pertama dari string periode yang tersimpan; 0 kalau rusak.
func LeadingHour(period string) int {
	p, err := ParsePeriodSlot(period)
	if err != nil {
		return 0
	}
	return p.Start
}
