package dto

import (
	"strings"
	"time"

	m "traininghub_backend/internals/features/training/sessions/model"
	"traininghub_backend/internals/features/training/sessions/service"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateTrainingSessionRequest struct {
	Name      string     `json:"training_session_name" validate:"required,min=1,max=200"`
	StartDate time.Time  `json:"training_session_start_date" validate:"required"`
	EndDate   *time.Time `json:"training_session_end_date"`

	Province string `json:"training_session_province" validate:"max=100"`
	City     string `json:"training_session_city" validate:"max=100"`
	Address  string `json:"training_session_address" validate:"max=300"`

	Capacity int `json:"training_session_capacity" validate:"required,gt=0"`

	InstructorID   *int64 `json:"training_session_instructor_id"`
	InstructorName string `json:"training_session_instructor_name" validate:"max=100"`
	OwnerID        *int64 `json:"training_session_owner_id"`
	OwnerName      string `json:"training_session_owner_name" validate:"max=100"`

	Price           float64 `json:"training_session_price" validate:"gte=0"`
	ExpectedRevenue float64 `json:"training_session_expected_revenue" validate:"gte=0"`
}

func (r *CreateTrainingSessionRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Province = strings.TrimSpace(r.Province)
	r.City = strings.TrimSpace(r.City)
	r.Address = strings.TrimSpace(r.Address)
	r.InstructorName = strings.TrimSpace(r.InstructorName)
	r.OwnerName = strings.TrimSpace(r.OwnerName)
}

func (r *CreateTrainingSessionRequest) ToModel() m.TrainingSessionModel {
	return m.TrainingSessionModel{
		TrainingSessionName:      r.Name,
		TrainingSessionStartDate: r.StartDate,
		TrainingSessionEndDate:   r.EndDate,

		TrainingSessionProvince: r.Province,
		TrainingSessionCity:     r.City,
		TrainingSessionAddress:  r.Address,

		TrainingSessionCapacity: r.Capacity,

		TrainingSessionInstructorID:   r.InstructorID,
		TrainingSessionInstructorName: r.InstructorName,
		TrainingSessionOwnerID:        r.OwnerID,
		TrainingSessionOwnerName:      r.OwnerName,

		TrainingSessionPrice:           r.Price,
		TrainingSessionExpectedRevenue: r.ExpectedRevenue,
	}
}

/* =========================================================
   UPDATE (partial; nil = leave unchanged)
   ========================================================= */

type UpdateTrainingSessionRequest struct {
	Name      *string    `json:"training_session_name" validate:"omitempty,min=1,max=200"`
	StartDate *time.Time `json:"training_session_start_date"`
	EndDate   *time.Time `json:"training_session_end_date"`

	Province *string `json:"training_session_province" validate:"omitempty,max=100"`
	City     *string `json:"training_session_city" validate:"omitempty,max=100"`
	Address  *string `json:"training_session_address" validate:"omitempty,max=300"`

	Capacity *int `json:"training_session_capacity" validate:"omitempty,gt=0"`

	InstructorID   *int64  `json:"training_session_instructor_id"`
	InstructorName *string `json:"training_session_instructor_name" validate:"omitempty,max=100"`
	OwnerID        *int64  `json:"training_session_owner_id"`
	OwnerName      *string `json:"training_session_owner_name" validate:"omitempty,max=100"`

	Price           *float64 `json:"training_session_price" validate:"omitempty,gte=0"`
	ExpectedRevenue *float64 `json:"training_session_expected_revenue" validate:"omitempty,gte=0"`
	ActualRevenue   *float64 `json:"training_session_actual_revenue" validate:"omitempty,gte=0"`
}

// Fields builds the column map for a partial update.
func (r *UpdateTrainingSessionRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["training_session_name"] = strings.TrimSpace(*r.Name)
	}
	if r.StartDate != nil {
		fields["training_session_start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		fields["training_session_end_date"] = *r.EndDate
	}
	if r.Province != nil {
		fields["training_session_province"] = strings.TrimSpace(*r.Province)
	}
	if r.City != nil {
		fields["training_session_city"] = strings.TrimSpace(*r.City)
	}
	if r.Address != nil {
		fields["training_session_address"] = strings.TrimSpace(*r.Address)
	}
	if r.Capacity != nil {
		fields["training_session_capacity"] = *r.Capacity
	}
	if r.InstructorID != nil {
		fields["training_session_instructor_id"] = *r.InstructorID
	}
	if r.InstructorName != nil {
		fields["training_session_instructor_name"] = strings.TrimSpace(*r.InstructorName)
	}
	if r.OwnerID != nil {
		fields["training_session_owner_id"] = *r.OwnerID
	}
	if r.OwnerName != nil {
		fields["training_session_owner_name"] = strings.TrimSpace(*r.OwnerName)
	}
	if r.Price != nil {
		fields["training_session_price"] = *r.Price
	}
	if r.ExpectedRevenue != nil {
		fields["training_session_expected_revenue"] = *r.ExpectedRevenue
	}
	if r.ActualRevenue != nil {
		fields["training_session_actual_revenue"] = *r.ActualRevenue
	}
	return fields
}

/* =========================================================
   DELETE / RESTORE
   ========================================================= */

// DeleteTrainingSessionRequest is the optional body of DELETE; the
// delete type itself travels as ?delete_type=soft|hard.
type DeleteTrainingSessionRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type TrainingSessionResponse struct {
	ID        int64      `json:"training_session_id"`
	Name      string     `json:"training_session_name"`
	StartDate time.Time  `json:"training_session_start_date"`
	EndDate   *time.Time `json:"training_session_end_date,omitempty"`

	Province string `json:"training_session_province"`
	City     string `json:"training_session_city"`
	Address  string `json:"training_session_address"`

	Capacity      int `json:"training_session_capacity"`
	EnrolledCount int `json:"training_session_enrolled_count"`

	InstructorID   *int64 `json:"training_session_instructor_id,omitempty"`
	InstructorName string `json:"training_session_instructor_name"`
	OwnerID        *int64 `json:"training_session_owner_id,omitempty"`
	OwnerName      string `json:"training_session_owner_name"`

	Price           float64 `json:"training_session_price"`
	ExpectedRevenue float64 `json:"training_session_expected_revenue"`
	ActualRevenue   float64 `json:"training_session_actual_revenue"`

	// derived on the way out, never read from storage
	Status service.SessionStatus `json:"training_session_status"`

	DeletedAt     *time.Time `json:"training_session_deleted_at,omitempty"`
	DeletedByID   *int64     `json:"training_session_deleted_by_id,omitempty"`
	DeletedByName *string    `json:"training_session_deleted_by_name,omitempty"`
	DeleteReason  *string    `json:"training_session_delete_reason,omitempty"`

	CreatedAt time.Time  `json:"training_session_created_at"`
	UpdatedAt *time.Time `json:"training_session_updated_at,omitempty"`
}

func FromTrainingSessionModel(s m.TrainingSessionModel) TrainingSessionResponse {
	return TrainingSessionResponse{
		ID:        s.TrainingSessionID,
		Name:      s.TrainingSessionName,
		StartDate: s.TrainingSessionStartDate,
		EndDate:   s.TrainingSessionEndDate,

		Province: s.TrainingSessionProvince,
		City:     s.TrainingSessionCity,
		Address:  s.TrainingSessionAddress,

		Capacity:      s.TrainingSessionCapacity,
		EnrolledCount: s.TrainingSessionEnrolledCount,

		InstructorID:   s.TrainingSessionInstructorID,
		InstructorName: s.TrainingSessionInstructorName,
		OwnerID:        s.TrainingSessionOwnerID,
		OwnerName:      s.TrainingSessionOwnerName,

		Price:           s.TrainingSessionPrice,
		ExpectedRevenue: s.TrainingSessionExpectedRevenue,
		ActualRevenue:   s.TrainingSessionActualRevenue,

		Status: service.StatusNow(s.TrainingSessionStartDate, s.TrainingSessionEndDate),

		DeletedAt:     s.TrainingSessionDeletedAt,
		DeletedByID:   s.TrainingSessionDeletedByID,
		DeletedByName: s.TrainingSessionDeletedByName,
		DeleteReason:  s.TrainingSessionDeleteReason,

		CreatedAt: s.TrainingSessionCreatedAt,
		UpdatedAt: s.TrainingSessionUpdatedAt,
	}
}

func FromTrainingSessionModels(rows []m.TrainingSessionModel) []TrainingSessionResponse {
	out := make([]TrainingSessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromTrainingSessionModel(rows[i]))
	}
	return out
}
