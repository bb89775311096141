package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "traininghub_backend/internals/features/training/sessions/controller"
	"traininghub_backend/internals/middlewares"
)

// RegisterTrainingSessionRoutes mounts the session + backup endpoints
// on the (already authenticated) admin group.
func RegisterTrainingSessionRoutes(admin fiber.Router, db *gorm.DB) {
	sessions := sessionController.NewTrainingSessionController(db)
	deletion := sessionController.NewDeletionController(db)

	g := admin.Group("/training-sessions")
	g.Post("/", sessions.CreateTrainingSession)
	g.Get("/", sessions.ListTrainingSessions)
	g.Get("/:id", sessions.GetTrainingSession)
	g.Put("/:id", sessions.UpdateTrainingSession)
	g.Post("/:id/participants", sessions.AddParticipant)
	g.Get("/:id/participants", sessions.ListParticipants)

	g.Delete("/:id", middlewares.DeleteRateLimiter(), deletion.DeleteTrainingSession)
	g.Post("/:id/restore", deletion.RestoreSoftDeleted)

	b := admin.Group("/session-backups")
	b.Get("/", deletion.ListSessionBackups)
	b.Get("/:id", deletion.GetSessionBackup)
	b.Post("/:id/restore", middlewares.DeleteRateLimiter(), deletion.RestoreFromBackup)
}
