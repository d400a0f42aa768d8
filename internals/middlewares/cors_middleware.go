package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"academia_backend/internals/configs"
)

var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// CorsMiddleware allows the web front-ends; CORS_ALLOW_ORIGINS (csv) overrides the defaults.
func CorsMiddleware() fiber.Handler {
	origins := defaultAllowedOrigins
	if v := strings.TrimSpace(configs.GetEnv("CORS_ALLOW_ORIGINS")); v != "" {
		origins = strings.Split(v, ",")
	}
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,PUT,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: true,
	})
}
