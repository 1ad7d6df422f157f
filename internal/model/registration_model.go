package model

import (
	"time"

	"github.com/google/uuid"
)

type Registration struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OsuUserId     int64     `gorm:"uniqueIndex;not null"`
	Username      string    `gorm:"type:varchar(255);not null"`
	ContactEmail  *string   `gorm:"type:varchar(255)"`
	Discord       string    `gorm:"type:varchar(100)"`
	Timezone      string    `gorm:"type:varchar(20)"`
	Status        string    `gorm:"type:varchar(20);not null;default:'registered'"`
	PaymentStatus string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Registration) TableName() string {
	return "registrations"
}
