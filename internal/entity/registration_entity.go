// FILE: internal/entity/registration_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationStatus string
type PaymentStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusWithdrawn  RegistrationStatus = "withdrawn"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusWaived  PaymentStatus = "waived"
)

type Registration struct {
	Id            uuid.UUID
	OsuUserId     int64
	Username      string
	ContactEmail  *string
	Discord       string
	Timezone      string
	Status        RegistrationStatus
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
