package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	dto "academia_backend/internals/features/school/enrollments/dto"
	service "academia_backend/internals/features/school/enrollments/service"
	helper "academia_backend/internals/helpers"
)

/* =======================================================================
   Controller
======================================================================= */

type EnrollmentController struct {
	Enrollments *service.EnrollmentService
	Validator   *validator.Validate
}

func NewEnrollmentController(svc *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{Enrollments: svc, Validator: helper.NewValidator()}
}

/* =======================================================================
   Handlers
======================================================================= */

// POST /api/public/enrollments/adult
func (h *EnrollmentController) CreateAdult(c *fiber.Ctx) error {
	var req dto.AdultEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json body")
	}
	if err := h.Validator.Struct(req); err != nil {
		return validationError(c, err)
	}

	res, err := h.Enrollments.ProcessAdultEnrollment(c.UserContext(), req.ToInput())
	if err != nil {
		return enrollmentError(c, err)
	}
	return helper.JsonCreated(c, "enrollment registered", res)
}

// POST /api/public/enrollments/minor
func (h *EnrollmentController) CreateMinor(c *fiber.Ctx) error {
	var req dto.MinorEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json body")
	}
	if err := h.Validator.Struct(req); err != nil {
		return validationError(c, err)
	}

	res, err := h.Enrollments.ProcessMinorEnrollment(c.UserContext(), req.ToInput())
	if err != nil {
		return enrollmentError(c, err)
	}
	return helper.JsonCreated(c, "enrollment registered", res)
}

/* =======================================================================
   Error mapping
======================================================================= */

func validationError(c *fiber.Ctx, err error) error {
	if fields := helper.FieldErrors(err); fields != nil {
		return helper.JsonValidationError(c, fields)
	}
	return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
}

func enrollmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "academic program not found")
	case errors.Is(err, service.ErrNoChildren), errors.Is(err, service.ErrTooManyChildren):
		return helper.JsonValidationError(c, map[string][]string{"children": {err.Error()}})
	case helper.IsUniqueViolation(err):
		return helper.JsonError(c, fiber.StatusConflict, "email or document number already registered")
	default:
		log.Printf("[ERROR] enrollment failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not register enrollment")
	}
}
