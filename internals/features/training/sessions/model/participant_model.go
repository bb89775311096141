package model

import (
	"time"
)

// Participation modes
const (
	ParticipationModeOnline  = "online"
	ParticipationModeOffline = "offline"
)

// Payment statuses
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
)

// TrainingParticipantModel is one enrollment of a customer in a session.
// Rows live and die with their session's hard delete; a soft delete of
// the session leaves them untouched.
type TrainingParticipantModel struct {
	TrainingParticipantID        int64  `gorm:"primaryKey;autoIncrement;column:training_participant_id" json:"training_participant_id"`
	TrainingParticipantSessionID int64  `gorm:"not null;index;column:training_participant_session_id" json:"training_participant_session_id"`
	TrainingParticipantCustomerID *int64 `gorm:"column:training_participant_customer_id" json:"training_participant_customer_id,omitempty"`

	TrainingParticipantName  string  `gorm:"not null;column:training_participant_name" json:"training_participant_name"`
	TrainingParticipantPhone string  `gorm:"column:training_participant_phone" json:"training_participant_phone"`
	TrainingParticipantEmail *string `gorm:"column:training_participant_email" json:"training_participant_email,omitempty"`

	TrainingParticipantMode string `gorm:"not null;default:offline;column:training_participant_mode" json:"training_participant_mode"`

	TrainingParticipantActualPrice   float64 `gorm:"not null;default:0;column:training_participant_actual_price" json:"training_participant_actual_price"`
	TrainingParticipantDiscountRate  float64 `gorm:"not null;default:0;column:training_participant_discount_rate" json:"training_participant_discount_rate"`
	TrainingParticipantPaymentAmount float64 `gorm:"not null;default:0;column:training_participant_payment_amount" json:"training_participant_payment_amount"`
	TrainingParticipantPaymentStatus string  `gorm:"not null;default:unpaid;column:training_participant_payment_status" json:"training_participant_payment_status"`

	TrainingParticipantSalespersonName string    `gorm:"column:training_participant_salesperson_name" json:"training_participant_salesperson_name"`
	TrainingParticipantRegisteredAt    time.Time `gorm:"not null;column:training_participant_registered_at" json:"training_participant_registered_at"`

	TrainingParticipantCreatedAt time.Time `gorm:"column:training_participant_created_at;autoCreateTime" json:"training_participant_created_at"`
}

func (TrainingParticipantModel) TableName() string { return "training_participants" }
