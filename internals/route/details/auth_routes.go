package details

import (
	"github.com/gofiber/fiber/v2"

	"academia_backend/internals/configs"
	authController "academia_backend/internals/features/users/auth/controller"
	middlewares "academia_backend/internals/middlewares"
)

// AuthRoutes mounts /api/auth.
func AuthRoutes(app *fiber.App, d *Deps) {
	ac := authController.NewAuthController(d.DB, configs.JWTSecret)
	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ac.Login)
}
