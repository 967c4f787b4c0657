package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"scholartrack_backend/internals/features/tracking/workflow"
)

// FromServiceError mengubah error dari service/store menjadi response JSON konsisten.
//   - *workflow.NotFoundError   → 404
//   - *workflow.ConflictError   → 409
//   - *workflow.ValidationError → 422 (errors: {field: [msg]})
//   - *fiber.Error              → kode aslinya
//   - lainnya                   → 500, detail hanya ke log
func FromServiceError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var (
		nf *workflow.NotFoundError
		ce *workflow.ConflictError
		ve *workflow.ValidationError
		fe *fiber.Error
	)
	switch {
	case errors.As(err, &nf):
		return JsonError(c, fiber.StatusNotFound, nf.Error())
	case errors.As(err, &ce):
		return JsonError(c, fiber.StatusConflict, ce.Error())
	case errors.As(err, &ve):
		field := ve.Field
		if field == "" {
			field = "_"
		}
		return JsonValidationError(c, map[string][]string{field: {ve.Message}})
	case errors.As(err, &fe):
		return JsonError(c, fe.Code, fe.Message)
	}

	if log != nil {
		log.Error("unhandled service error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
	}
	return JsonError(c, fiber.StatusInternalServerError, "internal server error")
}

// FromFiberError: error handler global Fiber (ErrorHandler) → envelope yang sama.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "internal server error")
}
