// file: internals/features/tracking/college_applications/controller/college_application_controller.go
package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"scholartrack_backend/internals/features/tracking/college_applications/dto"
	"scholartrack_backend/internals/features/tracking/college_applications/model"
	"scholartrack_backend/internals/features/tracking/college_applications/service"
	helper "scholartrack_backend/internals/helpers"
)

type CollegeApplicationController struct {
	Svc *service.CollegeApplicationService
	Log *zap.Logger
}

func NewCollegeApplicationController(svc *service.CollegeApplicationService, log *zap.Logger) *CollegeApplicationController {
	if log == nil {
		log = zap.NewNop()
	}
	return &CollegeApplicationController{Svc: svc, Log: log}
}

func (ctl *CollegeApplicationController) fail(c *fiber.Ctx, err error) error {
	return helper.FromServiceError(c, ctl.Log, err)
}

// ======================
// POST /applications
// ======================
func (ctl *CollegeApplicationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return ctl.fail(c, err)
	}

	var req dto.CreateCollegeApplicationRequest
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
	return helper.JsonCreated(c, "college application created", dto.FromModel(app))
}

// ======================
// GET /applications?status=&sort_by=&sort_order=
// ======================
func (ctl *CollegeApplicationController) List(c *fiber.Ctx) error {
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
func (ctl *CollegeApplicationController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id", service.Resource)
	if err != nil {
		return ctl.fail(c, err)
	}

	app, inst, err := ctl.Svc.GetDetail(c.UserContext(), userID, id)
	if err != nil {
		return ctl.fail(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModelWithInstitution(app, inst))
}

// ======================
// PUT /applications/:id
// ======================
func (ctl *CollegeApplicationController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return ctl.fail(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id", service.Resource)
	if err != nil {
		return ctl.fail(c, err)
	}

	var req dto.UpdateCollegeApplicationRequest
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
	return helper.JsonUpdated(c, "college application updated", dto.FromModel(app))
}

// ======================
// DELETE /applications/:id
// ======================
func (ctl *CollegeApplicationController) Delete(c *fiber.Ctx) error {
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
type markFn func(ctx context.Context, ownerID, id uuid.UUID) (model.CollegeApplicationModel, error)

func (ctl *CollegeApplicationController) mark(fn markFn, message string) fiber.Handler {
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

func (ctl *CollegeApplicationController) MarkSubmitted() fiber.Handler {
	return ctl.mark(ctl.Svc.MarkSubmitted, "application marked as submitted")
}

func (ctl *CollegeApplicationController) MarkAccepted() fiber.Handler {
	return ctl.mark(ctl.Svc.MarkAccepted, "application marked as accepted")
}

func (ctl *CollegeApplicationController) MarkRejected() fiber.Handler {
	return ctl.mark(ctl.Svc.MarkRejected, "application marked as rejected")
}

func (ctl *CollegeApplicationController) MarkWaitlisted() fiber.Handler {
	return ctl.mark(ctl.Svc.MarkWaitlisted, "application marked as waitlisted")
}

// ======================
// GET /dashboard?days_ahead=
// ======================
func (ctl *CollegeApplicationController) Dashboard(c *fiber.Ctx) error {
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
