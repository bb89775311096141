// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trainingRoute "traininghub_backend/internals/features/training/sessions/route"
	authMiddleware "traininghub_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api")

	// admin surface: token required + admin-ish role
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("admin access required", "admin", "manager"),
	)

	trainingRoute.RegisterTrainingSessionRoutes(admin, db)
}
