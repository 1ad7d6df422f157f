package contract

import (
	"context"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/repository/specification"
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *entity.Registration) error
	Update(ctx context.Context, registration *entity.Registration) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Registration, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Registration, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
