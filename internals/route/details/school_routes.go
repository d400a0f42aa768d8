package details

import (
	"github.com/gofiber/fiber/v2"

	enrollmentController "academia_backend/internals/features/school/enrollments/controller"
	programController "academia_backend/internals/features/school/programs/controller"
	middlewares "academia_backend/internals/middlewares"
)

// SchoolPublicRoutes mounts under /api/public.
func SchoolPublicRoutes(r fiber.Router, d *Deps) {
	programs := programController.NewProgramController(d.DB)
	pg := r.Group("/programs")
	pg.Get("/", programs.List)
	pg.Get("/:id", programs.Detail)

	enrollments := enrollmentController.NewEnrollmentController(d.Enrollments)
	en := r.Group("/enrollments", middlewares.EnrollmentRateLimiter())
	en.Post("/adult", enrollments.CreateAdult)
	en.Post("/minor", enrollments.CreateMinor)
}
