package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	service "academia_backend/internals/features/school/programs/service"
	helper "academia_backend/internals/helpers"
)

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

// GET /api/public/programs
func (h *ProgramController) List(c *fiber.Ctx) error {
	rows, err := service.ListActive(h.DB.WithContext(c.UserContext()))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not load programs")
	}
	return helper.JsonOK(c, "ok", rows)
}

// GET /api/public/programs/:id
func (h *ProgramController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	p, err := service.FindByID(h.DB.WithContext(c.UserContext()), id)
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "academic program not found")
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not load program")
	}
	return helper.JsonOK(c, "ok", p)
}
