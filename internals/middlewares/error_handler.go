package middlewares

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	helper "academia_backend/internals/helpers"
)

// ErrorHandler renders errors that escape handlers with the standard envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		msg = fe.Message
	}
	if status >= 500 {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	}
	return helper.JsonError(c, status, msg)
}
