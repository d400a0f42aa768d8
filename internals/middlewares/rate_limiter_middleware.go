package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "academia_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter for ordinary endpoints.
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, time.Minute, "❌ Too many requests. Please try again later.")
}

// EnrollmentRateLimiter guards the public enrollment forms.
func EnrollmentRateLimiter() fiber.Handler {
	return newLimiter(5, 5*time.Minute, "❌ Too many enrollment attempts. Please wait a few minutes.")
}

// CheckoutRateLimiter guards hosted-link creation, which calls the gateway.
func CheckoutRateLimiter() fiber.Handler {
	return newLimiter(10, time.Minute, "❌ Too many checkout attempts. Please try again later.")
}

// LoginRateLimiter is stricter than the global limiter.
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, "❌ Too many login attempts. Please try again shortly.")
}
