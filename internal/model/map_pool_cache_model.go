package model

import (
	"time"

	"gorm.io/datatypes"
)

// MapPoolCache stores one resolved pool artifact per stage.
type MapPoolCache struct {
	Stage     string         `gorm:"type:varchar(50);primaryKey"`
	Artifact  datatypes.JSON `gorm:"type:json;not null"` // json, not jsonb: served byte for byte
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (MapPoolCache) TableName() string {
	return "map_pool_caches"
}
