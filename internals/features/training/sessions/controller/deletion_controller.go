// internals/features/training/sessions/controller/deletion_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionDTO "traininghub_backend/internals/features/training/sessions/dto"
	"traininghub_backend/internals/features/training/sessions/service"
	helper "traininghub_backend/internals/helpers"
)

// DeletionController drives the deletion coordinator from the admin
// API: soft/hard delete, soft-delete restore, backup listing and
// restore-from-backup.
type DeletionController struct {
	Deletion *service.DeletionService
	Backups  service.BackupStore
}

func NewDeletionController(db *gorm.DB) *DeletionController {
	sessions := service.NewGormSessionStore(db)
	backups := service.NewGormBackupStore(db)
	return &DeletionController{
		Deletion: service.NewDeletionService(sessions, backups, service.NewGormAuditRecorder(db)),
		Backups:  backups,
	}
}

// DELETE /api/a/training-sessions/:id?delete_type=soft|hard
// Body (optional): {"reason": "..."}
func (h *DeletionController) DeleteTrainingSession(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	deleteType := strings.ToLower(strings.TrimSpace(c.Query("delete_type", "soft")))
	if deleteType != "soft" && deleteType != "hard" {
		return fiber.NewError(fiber.StatusBadRequest, "delete_type must be soft or hard")
	}

	var req sessionDTO.DeleteTrainingSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		if err := validator.New().Struct(req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	actor := service.Actor{ID: actorID, Name: helper.GetUserNameFromToken(c)}

	if deleteType == "hard" {
		if err := h.Deletion.HardDeleteWithBackup(c.UserContext(), id, actor, req.Reason); err != nil {
			return toFiberError(err)
		}
		return helper.JsonDeleted(c, "training session hard-deleted, backup written", fiber.Map{
			"training_session_id": id,
			"delete_type":         "hard",
		})
	}

	if err := h.Deletion.SoftDelete(c.UserContext(), id, actor, req.Reason); err != nil {
		return toFiberError(err)
	}
	return helper.JsonDeleted(c, "training session soft-deleted", fiber.Map{
		"training_session_id": id,
		"delete_type":         "soft",
	})
}

// POST /api/a/training-sessions/:id/restore
func (h *DeletionController) RestoreSoftDeleted(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Deletion.RestoreSoftDeleted(c.UserContext(), id); err != nil {
		return toFiberError(err)
	}
	return helper.JsonUpdated(c, "training session restored", fiber.Map{
		"training_session_id": id,
	})
}

// GET /api/a/session-backups
func (h *DeletionController) ListSessionBackups(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := h.Backups.ListSessionBackups(c.UserContext(), paging.Limit, paging.Offset)
	if err != nil {
		return toFiberError(err)
	}
	return helper.JsonList(c, "", sessionDTO.FromSessionBackupModels(rows), helper.BuildPagination(total, paging))
}

// GET /api/a/session-backups/:id
func (h *DeletionController) GetSessionBackup(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	b, err := h.Backups.GetSessionBackup(c.UserContext(), id)
	if err != nil {
		return toFiberError(err)
	}
	pbs, err := h.Backups.ListParticipantBackups(c.UserContext(), id)
	if err != nil {
		return toFiberError(err)
	}

	resp := sessionDTO.FromSessionBackupModel(*b)
	count := len(pbs)
	resp.ParticipantCount = &count
	return helper.JsonOK(c, "", resp)
}

// POST /api/a/session-backups/:id/restore
// Returns the id of the newly minted session so the UI can navigate.
func (h *DeletionController) RestoreFromBackup(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	newID, err := h.Deletion.RestoreFromBackup(c.UserContext(), id)
	if err != nil {
		return toFiberError(err)
	}
	return helper.JsonOK(c, "session restored from backup", fiber.Map{
		"session_backup_id":       id,
		"new_training_session_id": newID,
	})
}
