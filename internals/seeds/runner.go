package seeds

import (
	"log"

	"presensiku_backend/internals/seeds/timetables"

	"gorm.io/gorm"
)

// RunAllSeeds: seed referensi yang dibutuhkan modul presensi.
// Gagal seed tidak menghentikan server.
func RunAllSeeds(db *gorm.DB, timeTablePath string) {
	//* Jam pelajaran
	if err := timetables.SeedTimeTablesFromJSON(db, timeTablePath); err != nil {
		log.Printf("[ERROR] seed jam pelajaran: %+v", err)
	}
}
