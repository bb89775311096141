// internals/features/training/sessions/controller/session_controller.go
package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionDTO "traininghub_backend/internals/features/training/sessions/dto"
	sessionModel "traininghub_backend/internals/features/training/sessions/model"
	"traininghub_backend/internals/features/training/sessions/service"
	helper "traininghub_backend/internals/helpers"
)

type TrainingSessionController struct {
	DB    *gorm.DB
	Store service.SessionStore
}

func NewTrainingSessionController(db *gorm.DB) *TrainingSessionController {
	return &TrainingSessionController{
		DB:    db,
		Store: service.NewGormSessionStore(db),
	}
}

// CREATE
// POST /api/a/training-sessions
func (h *TrainingSessionController) CreateTrainingSession(c *fiber.Ctx) error {
	var req sessionDTO.CreateTrainingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()

	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !service.ValidDateRange(req.StartDate, req.EndDate) {
		return fiber.NewError(fiber.StatusBadRequest, "end date must not be before start date")
	}

	m := req.ToModel()
	if err := h.Store.InsertSession(c.UserContext(), &m); err != nil {
		return toFiberError(err)
	}

	return helper.JsonCreated(c, "training session created", sessionDTO.FromTrainingSessionModel(m))
}

// LIST
// GET /api/a/training-sessions[?status=upcoming|ongoing|completed][&with_deleted=true]
func (h *TrainingSessionController) ListTrainingSessions(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := service.ListSessionsQuery{
		Status:      service.SessionStatus(strings.TrimSpace(c.Query("status"))),
		WithDeleted: strings.EqualFold(c.Query("with_deleted"), "true"),
		Limit:       paging.Limit,
		Offset:      paging.Offset,
	}

	rows, total, err := h.Store.ListSessions(c.UserContext(), q)
	if err != nil {
		return toFiberError(err)
	}

	return helper.JsonList(c, "", sessionDTO.FromTrainingSessionModels(rows), helper.BuildPagination(total, paging))
}

// GET BY ID
// GET /api/a/training-sessions/:id
func (h *TrainingSessionController) GetTrainingSession(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	m, err := h.Store.GetSession(c.UserContext(), id)
	if err != nil {
		return toFiberError(err)
	}

	return helper.JsonOK(c, "", sessionDTO.FromTrainingSessionModel(*m))
}

// UPDATE
// PUT /api/a/training-sessions/:id
// Completed sessions are read-only; soft-deleted sessions must be
// restored before editing.
func (h *TrainingSessionController) UpdateTrainingSession(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req sessionDTO.UpdateTrainingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := h.Store.GetSession(c.UserContext(), id)
	if err != nil {
		return toFiberError(err)
	}
	if m.IsSoftDeleted() {
		return fiber.NewError(fiber.StatusConflict, "session is soft-deleted; restore it before editing")
	}
	if service.StatusNow(m.TrainingSessionStartDate, m.TrainingSessionEndDate) == service.StatusCompleted {
		return fiber.NewError(fiber.StatusConflict, "completed sessions can no longer be edited")
	}

	// date range after applying the patch
	start := m.TrainingSessionStartDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	end := m.TrainingSessionEndDate
	if req.EndDate != nil {
		end = req.EndDate
	}
	if !service.ValidDateRange(start, end) {
		return fiber.NewError(fiber.StatusBadRequest, "end date must not be before start date")
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return helper.JsonUpdated(c, "nothing to update", sessionDTO.FromTrainingSessionModel(*m))
	}
	if err := h.Store.UpdateSessionFields(c.UserContext(), id, fields); err != nil {
		return toFiberError(err)
	}

	updated, err := h.Store.GetSession(c.UserContext(), id)
	if err != nil {
		return toFiberError(err)
	}
	return helper.JsonUpdated(c, "training session updated", sessionDTO.FromTrainingSessionModel(*updated))
}

// ADD PARTICIPANT
// POST /api/a/training-sessions/:id/participants
func (h *TrainingSessionController) AddParticipant(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req sessionDTO.CreateParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := h.Store.GetSession(c.UserContext(), id)
	if err != nil {
		return toFiberError(err)
	}
	if m.IsSoftDeleted() {
		return fiber.NewError(fiber.StatusConflict, "session is soft-deleted; restore it before enrolling")
	}
	if service.StatusNow(m.TrainingSessionStartDate, m.TrainingSessionEndDate) == service.StatusCompleted {
		return fiber.NewError(fiber.StatusConflict, "completed sessions cannot take new participants")
	}
	if m.TrainingSessionEnrolledCount >= m.TrainingSessionCapacity {
		return fiber.NewError(fiber.StatusConflict, "session is at capacity")
	}

	p := req.ToModel(id, time.Now())

	if err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to enroll participant")
		}
		res := tx.Model(&sessionModel.TrainingSessionModel{}).
			Where("training_session_id = ? AND training_session_deleted_at IS NULL AND training_session_enrolled_count < training_session_capacity", id).
			Updates(map[string]any{
				"training_session_enrolled_count": gorm.Expr("training_session_enrolled_count + 1"),
				"training_session_actual_revenue": gorm.Expr("training_session_actual_revenue + ?", p.TrainingParticipantPaymentAmount),
			})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to update enrollment count")
		}
		if res.RowsAffected == 0 {
			// raced with a delete or with the last free seat
			return fiber.NewError(fiber.StatusConflict, "session is at capacity")
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "participant enrolled", sessionDTO.FromParticipantModel(p))
}

// LIST PARTICIPANTS
// GET /api/a/training-sessions/:id/participants
func (h *TrainingSessionController) ListParticipants(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if _, err := h.Store.GetSession(c.UserContext(), id); err != nil {
		return toFiberError(err)
	}

	rows, err := h.Store.ListParticipants(c.UserContext(), id)
	if err != nil {
		return toFiberError(err)
	}
	return helper.JsonOK(c, "", sessionDTO.FromParticipantModels(rows))
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Params("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}
