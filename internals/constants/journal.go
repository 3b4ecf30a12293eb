package constants

import "fmt"

// Kategori kehadiran guru di jurnal mengajar
const (
	JournalCategoryOnSchedule  = "Sesuai"
	JournalCategorySubstituted = "Tukaran/Diganti"
)

// Status kehadiran guru pengganti
const (
	SubstituteStatusPresent = "Hadir"
)

// Jam pelajaran tertinggi dalam satu hari sekolah
const MaxLessonHour = 16

// Label fallback jam pelajaran bila tidak ada di tabel jam
const HourLabelFallback = "Jam Ke-%d"

func HourLabel(hour int) string {
	return fmt.Sprintf(HourLabelFallback, hour)
}

// TimeRangeLabel: "08:00–08:45"
func TimeRangeLabel(start, end string) string {
	return start + "–" + end
}
