package unitofwork

import (
	"context"

	"ocbs-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PlayerRepository() contract.PlayerRepository
	RegistrationRepository() contract.RegistrationRepository
}
