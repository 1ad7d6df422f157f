package contract

import (
	"context"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/repository/specification"
)

type PlayerRepository interface {
	// Upsert inserts or updates the player keyed by osu! user id.
	Upsert(ctx context.Context, player *entity.Player) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Player, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
