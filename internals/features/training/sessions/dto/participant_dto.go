package dto

import (
	"strings"
	"time"

	m "traininghub_backend/internals/features/training/sessions/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateParticipantRequest struct {
	CustomerID *int64 `json:"training_participant_customer_id"`

	Name  string  `json:"training_participant_name" validate:"required,min=1,max=100"`
	Phone string  `json:"training_participant_phone" validate:"omitempty,max=30"`
	Email *string `json:"training_participant_email" validate:"omitempty,email"`

	Mode string `json:"training_participant_mode" validate:"omitempty,oneof=online offline"`

	ActualPrice   float64 `json:"training_participant_actual_price" validate:"gte=0"`
	DiscountRate  float64 `json:"training_participant_discount_rate" validate:"gte=0,lte=100"`
	PaymentAmount float64 `json:"training_participant_payment_amount" validate:"gte=0"`
	PaymentStatus string  `json:"training_participant_payment_status" validate:"omitempty,oneof=paid unpaid partial"`

	SalespersonName string `json:"training_participant_salesperson_name" validate:"omitempty,max=100"`
}

func (r *CreateParticipantRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.SalespersonName = strings.TrimSpace(r.SalespersonName)
	if r.Email != nil {
		e := strings.TrimSpace(*r.Email)
		if e == "" {
			r.Email = nil
		} else {
			r.Email = &e
		}
	}
	if r.Mode == "" {
		r.Mode = m.ParticipationModeOffline
	}
	if r.PaymentStatus == "" {
		r.PaymentStatus = m.PaymentStatusUnpaid
	}
}

func (r *CreateParticipantRequest) ToModel(sessionID int64, registeredAt time.Time) m.TrainingParticipantModel {
	return m.TrainingParticipantModel{
		TrainingParticipantSessionID:  sessionID,
		TrainingParticipantCustomerID: r.CustomerID,

		TrainingParticipantName:  r.Name,
		TrainingParticipantPhone: r.Phone,
		TrainingParticipantEmail: r.Email,

		TrainingParticipantMode: r.Mode,

		TrainingParticipantActualPrice:   r.ActualPrice,
		TrainingParticipantDiscountRate:  r.DiscountRate,
		TrainingParticipantPaymentAmount: r.PaymentAmount,
		TrainingParticipantPaymentStatus: r.PaymentStatus,

		TrainingParticipantSalespersonName: r.SalespersonName,
		TrainingParticipantRegisteredAt:    registeredAt,
	}
}

/* =========================================================
   RESPONSES
   ========================================================= */

type ParticipantResponse struct {
	ID         int64  `json:"training_participant_id"`
	SessionID  int64  `json:"training_participant_session_id"`
	CustomerID *int64 `json:"training_participant_customer_id,omitempty"`

	Name  string  `json:"training_participant_name"`
	Phone string  `json:"training_participant_phone"`
	Email *string `json:"training_participant_email,omitempty"`

	Mode string `json:"training_participant_mode"`

	ActualPrice   float64 `json:"training_participant_actual_price"`
	DiscountRate  float64 `json:"training_participant_discount_rate"`
	PaymentAmount float64 `json:"training_participant_payment_amount"`
	PaymentStatus string  `json:"training_participant_payment_status"`

	SalespersonName string    `json:"training_participant_salesperson_name"`
	RegisteredAt    time.Time `json:"training_participant_registered_at"`
}

func FromParticipantModel(p m.TrainingParticipantModel) ParticipantResponse {
	return ParticipantResponse{
		ID:         p.TrainingParticipantID,
		SessionID:  p.TrainingParticipantSessionID,
		CustomerID: p.TrainingParticipantCustomerID,

		Name:  p.TrainingParticipantName,
		Phone: p.TrainingParticipantPhone,
		Email: p.TrainingParticipantEmail,

		Mode: p.TrainingParticipantMode,

		ActualPrice:   p.TrainingParticipantActualPrice,
		DiscountRate:  p.TrainingParticipantDiscountRate,
		PaymentAmount: p.TrainingParticipantPaymentAmount,
		PaymentStatus: p.TrainingParticipantPaymentStatus,

		SalespersonName: p.TrainingParticipantSalespersonName,
		RegisteredAt:    p.TrainingParticipantRegisteredAt,
	}
}

func FromParticipantModels(rows []m.TrainingParticipantModel) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromParticipantModel(rows[i]))
	}
	return out
}
