package mapper

import (
	"ocbs-be/internal/dto"
	"ocbs-be/internal/entity"
	"ocbs-be/internal/model"
)

type RegistrationMapper struct{}

func NewRegistrationMapper() *RegistrationMapper {
	return &RegistrationMapper{}
}

func (m *RegistrationMapper) ToEntity(r *model.Registration) *entity.Registration {
	if r == nil {
		return nil
	}
	return &entity.Registration{
		Id:            r.Id,
		OsuUserId:     r.OsuUserId,
		Username:      r.Username,
		ContactEmail:  r.ContactEmail,
		Discord:       r.Discord,
		Timezone:      r.Timezone,
		Status:        entity.RegistrationStatus(r.Status),
		PaymentStatus: entity.PaymentStatus(r.PaymentStatus),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (m *RegistrationMapper) ToModel(r *entity.Registration) *model.Registration {
	if r == nil {
		return nil
	}
	return &model.Registration{
		Id:            r.Id,
		OsuUserId:     r.OsuUserId,
		Username:      r.Username,
		ContactEmail:  r.ContactEmail,
		Discord:       r.Discord,
		Timezone:      r.Timezone,
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (m *RegistrationMapper) ToResponse(r *entity.Registration) *dto.RegistrationResponse {
	if r == nil {
		return nil
	}
	return &dto.RegistrationResponse{
		Id:            r.Id,
		OsuUserId:     r.OsuUserId,
		Username:      r.Username,
		Discord:       r.Discord,
		Timezone:      r.Timezone,
		Status:        string(r.Status),
		PaymentStatus: string(r.PaymentStatus),
		CreatedAt:     r.CreatedAt,
	}
}

func (m *RegistrationMapper) ToPublicResponse(r *entity.Registration) dto.PublicRegistrationResponse {
	return dto.PublicRegistrationResponse{
		OsuUserId: r.OsuUserId,
		Username:  r.Username,
		Timezone:  r.Timezone,
	}
}
