// file: internals/features/school/attendance_sessions/controller/attendance_session_controller.go
package controller

import (
	"context"
	"log"
	"strings"
	"time"

	"presensiku_backend/internals/features/school/attendance_sessions/dto"
	"presensiku_backend/internals/features/school/attendance_sessions/service"
	helper "presensiku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestTimeout = 5 * time.Second

/* =========================
   Controller & Constructor
========================= */

type AttendanceSessionController struct {
	Materializer *service.Materializer
	Mutator      *service.Mutator
	Reader       *service.Reader
}

func New(mat *service.Materializer, mut *service.Mutator, r *service.Reader) *AttendanceSessionController {
	return &AttendanceSessionController{Materializer: mat, Mutator: mut, Reader: r}
}

/* =========================
   Helpers
========================= */

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "id sesi tidak valid")
	}
	return id, nil
}

func userContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), requestTimeout)
}

/* =========================
   POST /attendance-sessions
========================= */

func (ctl *AttendanceSessionController) CreateOrFetch(c *fiber.Ctx) error {
	var req dto.CreateAttendanceSessionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[AttendanceSession.CreateOrFetch] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}

	ctx, cancel := userContext(c)
	defer cancel()

	sess, created, err := ctl.Materializer.CreateOrFetch(ctx, req.ToInput())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	if created {
		return helper.JsonCreated(c, "Sesi presensi dibuat", dto.FromModel(sess))
	}
	return helper.JsonOK(c, "Sesi presensi sudah ada", dto.FromModel(sess))
}

/* =========================
   PATCH /attendance-sessions/:id
========================= */

func (ctl *AttendanceSessionController) Patch(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	var req dto.PatchAttendanceSessionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[AttendanceSession.Patch] BodyParser error: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}

	ctx, cancel := userContext(c)
	defer cancel()

	sess, err := ctl.Mutator.Update(ctx, id, req.ToInput())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Sesi presensi diperbarui", dto.FromModel(sess))
}

/* =========================
   GET /attendance-sessions/:id
========================= */

func (ctl *AttendanceSessionController) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	ctx, cancel := userContext(c)
	defer cancel()

	sess, err := ctl.Reader.Get(ctx, id)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(sess))
}

/* =========================
   GET /attendance-sessions
========================= */

func (ctl *AttendanceSessionController) List(c *fiber.Ctx) error {
	filter, err := dto.ListQuery(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	ctx, cancel := userContext(c)
	defer cancel()

	rows, total, err := ctl.Reader.List(ctx, filter, p.Limit(), p.Offset())
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), helper.BuildMeta(total, p, len(rows)))
}

/* =========================
   POST /attendance-sessions/:id/reconcile
========================= */

func (ctl *AttendanceSessionController) Reconcile(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.FromServiceError(c, err)
	}

	ctx, cancel := userContext(c)
	defer cancel()

	rep, err := ctl.Mutator.Resync(ctx, id)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonOK(c, "Jurnal mengajar disinkronkan", rep)
}
