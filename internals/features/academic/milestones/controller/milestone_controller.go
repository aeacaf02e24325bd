// file: internals/features/academic/milestones/controller/milestone_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	mdto "skripsiku_backend/internals/features/academic/milestones/dto"
	service "skripsiku_backend/internals/features/academic/submissions/service"
	helper "skripsiku_backend/internals/helpers"
	helperAuth "skripsiku_backend/internals/helpers/auth"
)

type MilestoneController struct {
	Service *service.MilestoneService
}

func NewMilestoneController(svc *service.MilestoneService) *MilestoneController {
	return &MilestoneController{Service: svc}
}

// GET /api/academic/submissions/:id/milestones
func (ctrl *MilestoneController) ListBySubmission(c *fiber.Ctx) error {
	ident, ok := helperAuth.GetIdentity(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	rows, err := ctrl.Service.ListForSubmission(c.UserContext(), ident, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrSubmissionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		}
		return helper.JsonErrorWithCause(c, fiber.StatusInternalServerError, "Failed to fetch milestones", err)
	}
	return helper.JsonOK(c, "", rows)
}

// PUT /api/academic/milestones/:id
func (ctrl *MilestoneController) Update(c *fiber.Ctx) error {
	ident, ok := helperAuth.GetIdentity(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid milestone id")
	}

	var body mdto.UpdateMilestoneRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := ctrl.Service.Update(c.UserContext(), ident, uint(id), body); err != nil {
		switch {
		case errors.Is(err, service.ErrMilestoneForbidden):
			return helper.JsonError(c, fiber.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrMilestoneNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidStatus):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonErrorWithCause(c, fiber.StatusInternalServerError, "Failed to update milestone", err)
		}
	}

	return helper.JsonOK(c, "Milestone updated successfully", nil)
}
