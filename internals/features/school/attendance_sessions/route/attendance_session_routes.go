// file: internals/features/school/attendance_sessions/route/attendance_session_routes.go
package route

import (
	"presensiku_backend/internals/features/school/attendance_sessions/controller"

	"github.com/gofiber/fiber/v2"
)

func AttendanceSessionRoutes(r fiber.Router, ctl *controller.AttendanceSessionController) {
	grp := r.Group("/attendance-sessions")

	grp.Get("/", ctl.List)
	grp.Post("/", ctl.CreateOrFetch)
	grp.Get("/:id", ctl.GetByID)
	grp.Patch("/:id", ctl.Patch)
	grp.Post("/:id/reconcile", ctl.Reconcile)
}
