package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "academia_backend/internals/features/finance/settings/dto"
	service "academia_backend/internals/features/finance/settings/service"
	helper "academia_backend/internals/helpers"
)

type SettingsController struct {
	DB        *gorm.DB
	Settings  service.Provider
	Validator *validator.Validate
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{
		DB:        db,
		Settings:  service.NewGormProvider(db),
		Validator: helper.NewValidator(),
	}
}

/* =======================================================================
   Tuition
======================================================================= */

// GET /api/a/settings/payment
func (h *SettingsController) GetPayment(c *fiber.Ctx) error {
	row, err := h.Settings.ActivePaymentSetting(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not load payment setting")
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "no active payment setting")
	}
	return helper.JsonOK(c, "ok", row)
}

// PUT /api/a/settings/payment
func (h *SettingsController) PutPayment(c *fiber.Ctx) error {
	var req dto.UpsertPaymentSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json body")
	}
	if !req.MonthlyAmount.IsPositive() {
		return helper.JsonValidationError(c, map[string][]string{"monthly_amount": {"must be greater than 0"}})
	}

	row, err := service.ActivatePaymentSetting(c.UserContext(), h.DB, req.MonthlyAmount)
	if err != nil {
		log.Printf("[ERROR] save payment setting: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not save payment setting")
	}
	log.Printf("[INFO] tuition amount set to %s", row.MonthlyAmount)
	return helper.JsonUpdated(c, "payment setting saved", row)
}

/* =======================================================================
   Wompi credentials
======================================================================= */

// GET /api/a/settings/wompi
func (h *SettingsController) GetWompi(c *fiber.Ctx) error {
	row, err := h.Settings.ActiveWompiSetting(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not load wompi setting")
	}
	if row == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "no active wompi setting")
	}
	return helper.JsonOK(c, "ok", dto.FromWompiModel(row))
}

// PUT /api/a/settings/wompi
func (h *SettingsController) PutWompi(c *fiber.Ctx) error {
	var req dto.UpsertWompiSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json body")
	}
	if err := h.Validator.Struct(req); err != nil {
		if fields := helper.FieldErrors(err); fields != nil {
			return helper.JsonValidationError(c, fields)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	current, err := h.Settings.ActiveWompiSetting(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not load wompi setting")
	}

	row, err := service.ActivateWompiSetting(c.UserContext(), h.DB, req.ToModel(current))
	if err != nil {
		log.Printf("[ERROR] save wompi setting: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "could not save wompi setting")
	}
	log.Printf("[INFO] wompi credentials updated env=%s", row.Environment)
	return helper.JsonUpdated(c, "wompi setting saved", dto.FromWompiModel(row))
}
