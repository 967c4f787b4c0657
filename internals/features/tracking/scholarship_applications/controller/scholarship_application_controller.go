// file: internals/features/tracking/scholarship_applications/controller/scholarship_application_controller.go
package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"scholartrack_backend/internals/features/tracking/scholarship_applications/dto"
	"scholartrack_backend/internals/features/tracking/scholarship_applications/model"
	"scholartrack_backend/internals/features/tracking/scholarship_applications/service"
	helper "scholartrack_backend/internals/helpers"
)

type ScholarshipApplicationController struct {
	Svc *service.ScholarshipApplicationService
	Log *zap.Logger
}

func NewScholarshipApplicationController(svc *service.ScholarshipApplicationService, log *zap.Logger) *ScholarshipApplicationController {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScholarshipApplicationController{Svc: svc, Log: log}
}

func (ctl *ScholarshipApplicationController) fail(c *fiber.Ctx, err error) error {
	return helper.FromServiceError(c, ctl.Log, err)
}

// ======================
// POST /applications
// ======================
func (ctl *ScholarshipApplicationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return ctl.fail(c, err)
	}

	var req dto.CreateScholarshipApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Normalize()
	if fields := helper.ValidateStruct(req); fields != nil {
		return helper.ValidationError(c, fields)
	}

	app, err := ctl.Svc.Create(c.UserContext(), userID, req)
	if err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonCreated(c, "scholarship application created", dto.FromModel(app))
}

// ======================
// GET /applications?status=&sort_by=&sort_order=
// ======================
func (ctl *ScholarshipApplicationController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	q, err := helper.ParseListQuery(c, model.Track)
	if err != nil {
		return ctl.fail(c, err)
	}

	rows, err := ctl.Svc.List(c.UserContext(), userID, q)
	if err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModels(rows))
}

// ======================
// GET /applications/:id
// ======================
func (ctl *ScholarshipApplicationController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id", service.Resource)
	if err != nil {
		return ctl.fail(c, err)
	}

	app, sch, err := ctl.Svc.GetDetail(c.UserContext(), userID, id)
	if err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModelWithScholarship(app, sch))
}

// ======================
// PUT /applications/:id
// ======================
func (ctl *ScholarshipApplicationController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id", service.Resource)
	if err != nil {
		return ctl.fail(c, err)
	}

	var req dto.UpdateScholarshipApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Cleared = helper.NullKeys(c.Body(), dto.NullableKeys...)
	req.Normalize()
	if fields := helper.ValidateStruct(req); fields != nil {
		return helper.ValidationError(c, fields)
	}

	app, err := ctl.Svc.Update(c.UserContext(), userID, id, req)
	if err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonUpdated(c, "scholarship application updated", dto.FromModel(app))
}

// ======================
// DELETE /applications/:id
// ======================
func (ctl *ScholarshipApplicationController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id", service.Resource)
	if err != nil {
		return ctl.fail(c, err)
	}

	if err := ctl.Svc.Delete(c.UserContext(), userID, id); err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonNoContent(c)
}

// ======================
// POST /applications/:id/mark-*
// ======================
type markFn func(ctx context.Context, ownerID, id uuid.UUID) (model.ScholarshipApplicationModel, error)

func (ctl *ScholarshipApplicationController) mark(fn markFn, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return ctl.fail(c, err)
		}
		id, err := helper.ParseUUIDParam(c, "id", service.Resource)
		if err != nil {
			return ctl.fail(c, err)
		}

		app, err := fn(c.UserContext(), userID, id)
		if err != nil {
			return ctl.fail(c, err)
		}
		return helper.JsonOK(c, message, dto.FromModel(app))
	}
}

func (ctl *ScholarshipApplicationController) MarkSubmitted() fiber.Handler {
	return ctl.mark(ctl.Svc.MarkSubmitted, "application marked as submitted")
}

// MarkAccepted: ?award_amount= diutamakan, body JSON sebagai alternatif.
func (ctl *ScholarshipApplicationController) MarkAccepted() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.MarkAcceptedRequest
		if err := c.QueryParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "award_amount must be a number")
		}
		if req.AwardAmount == nil && len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
			}
		}

		accept := func(ctx context.Context, ownerID, id uuid.UUID) (model.ScholarshipApplicationModel, error) {
			return ctl.Svc.MarkAccepted(ctx, ownerID, id, req.AwardAmount)
		}
		return ctl.mark(accept, "application marked as accepted")(c)
	}
}

func (ctl *ScholarshipApplicationController) MarkRejected() fiber.Handler {
	return ctl.mark(ctl.Svc.MarkRejected, "application marked as rejected")
}

func (ctl *ScholarshipApplicationController) MarkNotPursuing() fiber.Handler {
	return ctl.mark(ctl.Svc.MarkNotPursuing, "application marked as not pursuing")
}

// ======================
// GET /dashboard?days_ahead=
// ======================
func (ctl *ScholarshipApplicationController) Dashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	days, err := helper.ParseDaysAhead(c)
	if err != nil {
		return ctl.fail(c, err)
	}

	out, err := ctl.Svc.Dashboard(c.UserContext(), userID, days)
	if err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonOK(c, "ok", out)
}
