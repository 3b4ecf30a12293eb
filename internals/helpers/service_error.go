package helper

import (
	"errors"
	"log"

	"presensiku_backend/internals/helpers/apperror"

	"github.com/gofiber/fiber/v2"
)

// FromServiceError memetakan error service/transport ke response JSON standar.
func FromServiceError(c *fiber.Ctx, err error) error {
	var (
		ve *apperror.ValidationError
		nf *apperror.NotFoundError
		pe *apperror.PersistenceError
		fe *fiber.Error
	)
	switch {
	case errors.As(err, &ve):
		return JsonValidationError(c, ve.Fields)
	case errors.As(err, &nf):
		return JsonError(c, fiber.StatusNotFound, nf.Error())
	case errors.As(err, &fe):
		return JsonError(c, fe.Code, fe.Message)
	case errors.As(err, &pe):
		log.Printf("[ERROR] %s %s: %+v", c.Method(), c.OriginalURL(), pe.Err)
		return JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	default:
		log.Printf("[ERROR] %s %s: %+v", c.Method(), c.OriginalURL(), err)
		return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}

// ErrorHandler untuk fiber.Config: semua error yang lolos dari handler
// dibentuk dengan envelope yang sama.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromServiceError(c, err)
}
