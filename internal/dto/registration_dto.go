// FILE: internal/dto/registration_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRegistrationRequest struct {
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	Discord      string  `json:"discord" validate:"required,min=2,max=100"`
	Timezone     string  `json:"timezone" validate:"required,max=20"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid waived"`
}

type RegistrationResponse struct {
	Id            uuid.UUID `json:"id"`
	OsuUserId     int64     `json:"osu_user_id"`
	Username      string    `json:"username"`
	Discord       string    `json:"discord"`
	Timezone      string    `json:"timezone"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}

// PublicRegistrationResponse omits contact details.
type PublicRegistrationResponse struct {
	OsuUserId int64  `json:"osu_user_id"`
	Username  string `json:"username"`
	Timezone  string `json:"timezone"`
}

// RegistrationCreatedMessage is the in-process event payload sent to the mail consumer.
type RegistrationCreatedMessage struct {
	RegistrationId uuid.UUID `json:"registration_id"`
	Username       string    `json:"username"`
	ContactEmail   string    `json:"contact_email"`
}
