package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Player struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApiId     string         `gorm:"type:varchar(255);index"`
	OsuUserId int64          `gorm:"uniqueIndex;not null"`
	Username  string         `gorm:"type:varchar(255);not null"`
	AvatarURL string         `gorm:"type:text"`
	Token     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Player) TableName() string {
	return "players"
}
