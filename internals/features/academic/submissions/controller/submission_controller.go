// file: internals/features/academic/submissions/controller/submission_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "skripsiku_backend/internals/features/academic/submissions/dto"
	service "skripsiku_backend/internals/features/academic/submissions/service"
	helper "skripsiku_backend/internals/helpers"
	helperAuth "skripsiku_backend/internals/helpers/auth"
)

type SubmissionController struct {
	Service   *service.SubmissionService
	Validator *validator.Validate
}

func NewSubmissionController(svc *service.SubmissionService) *SubmissionController {
	return &SubmissionController{
		Service:   svc,
		Validator: validator.New(),
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidStatus):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrMilestoneForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrSubmissionNotFound),
		errors.Is(err, service.ErrMilestoneNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// POST /api/academic/submissions
func (ctrl *SubmissionController) Create(c *fiber.Ctx) error {
	ident, ok := helperAuth.GetIdentity(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, service.ErrTitleRequired.Error())
	}

	created, err := ctrl.Service.Create(c.UserContext(), ident, body)
	if err != nil {
		if st := statusFor(err); st != fiber.StatusInternalServerError {
			return helper.JsonError(c, st, err.Error())
		}
		return helper.JsonErrorWithCause(c, fiber.StatusInternalServerError, "Failed to create submission", err)
	}

	return helper.JsonCreated(c, "Submission created successfully", created)
}

// GET /api/academic/submissions
func (ctrl *SubmissionController) List(c *fiber.Ctx) error {
	ident, ok := helperAuth.GetIdentity(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	rows, err := ctrl.Service.ListForRequester(c.UserContext(), ident)
	if err != nil {
		return helper.JsonErrorWithCause(c, fiber.StatusInternalServerError, "Failed to fetch submissions", err)
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/academic/submissions/:id
func (ctrl *SubmissionController) GetByID(c *fiber.Ctx) error {
	ident, ok := helperAuth.GetIdentity(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	sub, err := ctrl.Service.GetOne(c.UserContext(), ident, uint(id))
	if err != nil {
		if st := statusFor(err); st != fiber.StatusInternalServerError {
			return helper.JsonError(c, st, err.Error())
		}
		return helper.JsonErrorWithCause(c, fiber.StatusInternalServerError, "Failed to fetch submission", err)
	}
	return helper.JsonOK(c, "", sub)
}

// PUT /api/academic/submissions/:id
func (ctrl *SubmissionController) Update(c *fiber.Ctx) error {
	ident, ok := helperAuth.GetIdentity(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var body dto.UpdateSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := ctrl.Service.Update(c.UserContext(), ident, uint(id), body); err != nil {
		if st := statusFor(err); st != fiber.StatusInternalServerError {
			if st == fiber.StatusNotFound {
				return helper.JsonError(c, st, "Submission not found or no changes made")
			}
			return helper.JsonError(c, st, err.Error())
		}
		return helper.JsonErrorWithCause(c, fiber.StatusInternalServerError, "Failed to update submission", err)
	}

	return helper.JsonOK(c, "Submission updated successfully", nil)
}
