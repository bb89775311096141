package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"traininghub_backend/internals/features/training/sessions/service"
)

// toFiberError maps the service error taxonomy onto HTTP statuses.
// PartialFailure keeps the step name in the message so operators can
// follow up.
func toFiberError(err error) error {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return fiber.NewError(fiber.StatusNotFound, nf.Error())
	}
	var ar *service.AlreadyRestoredError
	if errors.As(err, &ar) {
		return fiber.NewError(fiber.StatusConflict, ar.Error())
	}
	var sd *service.SoftDeletedError
	if errors.As(err, &sd) {
		return fiber.NewError(fiber.StatusConflict, "session is soft-deleted; restore it before this operation")
	}
	var ib *service.IncompleteBackupError
	if errors.As(err, &ib) {
		return fiber.NewError(fiber.StatusConflict, ib.Error())
	}
	var pf *service.PartialFailureError
	if errors.As(err, &pf) {
		return fiber.NewError(fiber.StatusInternalServerError, pf.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "storage failure, please retry")
}
