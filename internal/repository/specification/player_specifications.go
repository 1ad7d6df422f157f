package specification

import "gorm.io/gorm"

type ByOsuUserId struct {
	OsuUserId int64
}

func (s ByOsuUserId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("osu_user_id = ?", s.OsuUserId)
}

type ByApiId struct {
	ApiId string
}

func (s ByApiId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("api_id = ?", s.ApiId)
}
