package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/configs"
	"academia_backend/internals/constants"
	middlewares "academia_backend/internals/middlewares"
	authMiddleware "academia_backend/internals/middlewares/auth"
	routeDetails "academia_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up base routes...")
	BaseRoutes(app, db)

	deps := routeDetails.NewDeps(db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, deps)

	// ===================== GROUPS =====================

	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public", middlewares.GlobalRateLimiter())

	log.Println("[INFO] Setting up WEBHOOK group...")
	webhooks := app.Group("/api/webhooks")

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{Secret: configs.JWTSecret}),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("this resource"), constants.AdminOnly...),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolPublicRoutes(public, deps)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinancePublicRoutes(public, deps)
	routeDetails.FinanceWebhookRoutes(webhooks, deps)
	routeDetails.FinanceAdminRoutes(admin, deps)
}

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int64(time.Since(startTime).Seconds()),
		})
	})
}
