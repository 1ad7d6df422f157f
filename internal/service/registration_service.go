// FILE: internal/service/registration_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"ocbs-be/internal/dto"
	"ocbs-be/internal/entity"
	"ocbs-be/internal/mapper"
	"ocbs-be/internal/pkg/logger"
	"ocbs-be/internal/repository/specification"
	"ocbs-be/internal/repository/unitofwork"
	"ocbs-be/pkg/events"
	pktNats "ocbs-be/pkg/nats"

	"github.com/google/uuid"
)

type IRegistrationService interface {
	Register(ctx context.Context, osuUserId int64, req *dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error)
	Mine(ctx context.Context, osuUserId int64) (*dto.RegistrationResponse, error)
	Withdraw(ctx context.Context, osuUserId int64) error
	ListActive(ctx context.Context) ([]dto.PublicRegistrationResponse, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentStatusRequest) (*dto.RegistrationResponse, error)
}

type registrationService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
	mapper           *mapper.RegistrationMapper
}

func NewRegistrationService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IRegistrationService {
	return &registrationService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
		mapper:           mapper.NewRegistrationMapper(),
	}
}

// Register creates the caller's registration. A withdrawn registration is
// reactivated in place since the osu! user id is unique.
func (s *registrationService) Register(ctx context.Context, osuUserId int64, req *dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	player, err := uow.PlayerRepository().FindOne(ctx, specification.ByOsuUserId{OsuUserId: osuUserId})
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, entity.ErrPlayerNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	existing, err := uow.RegistrationRepository().FindOne(ctx, specification.ByOsuUserId{OsuUserId: osuUserId})
	if err != nil {
		return nil, err
	}

	var registration *entity.Registration
	switch {
	case existing != nil && existing.Status == entity.RegistrationStatusRegistered:
		return nil, entity.ErrRegistrationExists
	case existing != nil:
		existing.Username = player.Username
		existing.ContactEmail = req.ContactEmail
		existing.Discord = req.Discord
		existing.Timezone = req.Timezone
		existing.Status = entity.RegistrationStatusRegistered
		if err := uow.RegistrationRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		registration = existing
	default:
		registration = &entity.Registration{
			Id:            uuid.New(),
			OsuUserId:     osuUserId,
			Username:      player.Username,
			ContactEmail:  req.ContactEmail,
			Discord:       req.Discord,
			Timezone:      req.Timezone,
			Status:        entity.RegistrationStatusRegistered,
			PaymentStatus: entity.PaymentStatusPending,
		}
		if err := uow.RegistrationRepository().Create(ctx, registration); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("RegistrationService", "Player registered", map[string]interface{}{
		"registration_id": registration.Id.String(),
		"osu_user_id":     osuUserId,
	})

	s.announce(ctx, registration)

	return s.mapper.ToResponse(registration), nil
}

// announce notifies the mail consumer and the event bus. Failures are logged only.
func (s *registrationService) announce(ctx context.Context, registration *entity.Registration) {
	if registration.ContactEmail != nil && s.publisherService != nil {
		payload, err := json.Marshal(dto.RegistrationCreatedMessage{
			RegistrationId: registration.Id,
			Username:       registration.Username,
			ContactEmail:   *registration.ContactEmail,
		})
		if err == nil {
			err = s.publisherService.Publish(ctx, payload)
		}
		if err != nil {
			s.logger.Warn("RegistrationService", "Failed to queue confirmation mail", map[string]interface{}{
				"registration_id": registration.Id.String(),
				"error":           err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.RegistrationCreated,
			Data: map[string]interface{}{
				"registration_id": registration.Id.String(),
				"osu_user_id":     registration.OsuUserId,
				"username":        registration.Username,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("RegistrationService", "Failed to publish REGISTRATION_CREATED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func (s *registrationService) findActive(ctx context.Context, uow unitofwork.UnitOfWork, osuUserId int64) (*entity.Registration, error) {
	registration, err := uow.RegistrationRepository().FindOne(ctx,
		specification.ByOsuUserId{OsuUserId: osuUserId},
		specification.RegistrationStatusIs{Status: string(entity.RegistrationStatusRegistered)},
	)
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, entity.ErrRegistrationNotFound
	}
	return registration, nil
}

func (s *registrationService) Mine(ctx context.Context, osuUserId int64) (*dto.RegistrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	registration, err := s.findActive(ctx, uow, osuUserId)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponse(registration), nil
}

func (s *registrationService) Withdraw(ctx context.Context, osuUserId int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	registration, err := s.findActive(ctx, uow, osuUserId)
	if err != nil {
		return err
	}
	registration.Status = entity.RegistrationStatusWithdrawn
	if err := uow.RegistrationRepository().Update(ctx, registration); err != nil {
		return err
	}

	s.logger.Info("RegistrationService", "Registration withdrawn", map[string]interface{}{
		"registration_id": registration.Id.String(),
	})
	return nil
}

func (s *registrationService) ListActive(ctx context.Context) ([]dto.PublicRegistrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	registrations, err := uow.RegistrationRepository().FindAll(ctx,
		specification.RegistrationStatusIs{Status: string(entity.RegistrationStatusRegistered)},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]dto.PublicRegistrationResponse, 0, len(registrations))
	for _, r := range registrations {
		res = append(res, s.mapper.ToPublicResponse(r))
	}
	return res, nil
}

func (s *registrationService) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentStatusRequest) (*dto.RegistrationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	registration, err := uow.RegistrationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if registration == nil {
		return nil, entity.ErrRegistrationNotFound
	}

	registration.PaymentStatus = entity.PaymentStatus(req.PaymentStatus)
	if err := uow.RegistrationRepository().Update(ctx, registration); err != nil {
		return nil, err
	}

	s.logger.Info("RegistrationService", "Payment status recorded", map[string]interface{}{
		"registration_id": id.String(),
		"payment_status":  req.PaymentStatus,
	})
	return s.mapper.ToResponse(registration), nil
}
