package mapper

import (
	"ocbs-be/internal/entity"
	"ocbs-be/internal/model"

	"gorm.io/datatypes"
)

type PlayerMapper struct{}

func NewPlayerMapper() *PlayerMapper {
	return &PlayerMapper{}
}

func (m *PlayerMapper) ToEntity(p *model.Player) *entity.Player {
	if p == nil {
		return nil
	}
	return &entity.Player{
		Id:        p.Id,
		ApiId:     p.ApiId,
		OsuUserId: p.OsuUserId,
		Username:  p.Username,
		AvatarURL: p.AvatarURL,
		Token:     []byte(p.Token),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PlayerMapper) ToModel(p *entity.Player) *model.Player {
	if p == nil {
		return nil
	}
	return &model.Player{
		Id:        p.Id,
		ApiId:     p.ApiId,
		OsuUserId: p.OsuUserId,
		Username:  p.Username,
		AvatarURL: p.AvatarURL,
		Token:     datatypes.JSON(p.Token),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
