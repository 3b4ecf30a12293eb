package details

import (
	"time"

	termService "presensiku_backend/internals/features/school/academics/academic_terms/service"
	scheduleService "presensiku_backend/internals/features/school/academics/schedules/service"
	timetableService "presensiku_backend/internals/features/school/academics/timetables/service"
	sessionController "presensiku_backend/internals/features/school/attendance_sessions/controller"
	sessionRepo "presensiku_backend/internals/features/school/attendance_sessions/repository"
	sessionRoute "presensiku_backend/internals/features/school/attendance_sessions/route"
	sessionService "presensiku_backend/internals/features/school/attendance_sessions/service"
	journalRepo "presensiku_backend/internals/features/school/teaching_journals/repository"
	journalService "presensiku_backend/internals/features/school/teaching_journals/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SchoolStores: semua dependensi penyimpanan modul presensi & jurnal.
type SchoolStores struct {
	Sessions   sessionRepo.SessionStore
	Journals   journalRepo.JournalStore
	Schedules  scheduleService.ScheduleIndex
	TimeTables timetableService.TimeTableIndex
	Settings   termService.ActiveSettingsProvider
}

// GormStores: store Postgres; lookup read-only dibungkus cache TTL.
func GormStores(db *gorm.DB, cacheTTL time.Duration) SchoolStores {
	return SchoolStores{
		Sessions:   sessionRepo.NewGormSessionStore(db),
		Journals:   journalRepo.NewGormJournalStore(db),
		Schedules:  scheduleService.NewCachedScheduleIndex(scheduleService.NewGormScheduleIndex(db), cacheTTL),
		TimeTables: timetableService.NewCachedTimeTableIndex(timetableService.NewGormTimeTableIndex(db), cacheTTL),
		Settings:   termService.NewCachedActiveSettingsProvider(termService.NewGormActiveSettingsProvider(db), cacheTTL),
	}
}

// MemoryStores: mode dev tanpa database (APP_STORAGE=memory).
func MemoryStores() SchoolStores {
	return SchoolStores{
		Sessions:   sessionRepo.NewMemorySessionStore(),
		Journals:   journalRepo.NewMemoryJournalStore(),
		Schedules:  scheduleService.NewMemoryScheduleIndex(),
		TimeTables: timetableService.NewMemoryTimeTableIndex(),
		Settings:   termService.NewMemoryActiveSettingsProvider(termService.ActiveSettings{}),
	}
}

func SchoolRoutes(api fiber.Router, st SchoolStores, resyncLimiter fiber.Handler) {
	reconciler := journalService.NewReconciler(st.Journals, st.TimeTables)

	ctl := sessionController.New(
		sessionService.NewMaterializer(st.Sessions, st.Journals, st.Schedules, st.Settings),
		sessionService.NewMutator(st.Sessions, reconciler),
		sessionService.NewReader(st.Sessions),
	)

	if resyncLimiter != nil {
		api.Use("/attendance-sessions/:id/reconcile", resyncLimiter)
	}
	sessionRoute.AttendanceSessionRoutes(api, ctl)
}
