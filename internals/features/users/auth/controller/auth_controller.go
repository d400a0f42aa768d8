package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dto "academia_backend/internals/features/users/auth/dto"
	service "academia_backend/internals/features/users/auth/service"
	helper "academia_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Secret    string
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB, secret string) *AuthController {
	return &AuthController{DB: db, Secret: secret, Validator: helper.NewValidator()}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json body")
	}
	if err := ac.Validator.Struct(req); err != nil {
		if fields := helper.FieldErrors(err); fields != nil {
			return helper.JsonValidationError(c, fields)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := service.Login(ac.DB.WithContext(c.UserContext()), req.Email, req.Password, ac.Secret, time.Now())
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrMissingSecret):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "login is not available")
	case err != nil:
		log.Printf("[ERROR] login failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "login failed")
	}
	return helper.JsonOK(c, "login success", res)
}
