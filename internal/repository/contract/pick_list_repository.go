package contract

import (
	"context"

	"ocbs-be/internal/entity"
)

type PickListRepository interface {
	// FindByStage returns the stage's picks in pick-list order.
	FindByStage(ctx context.Context, stage entity.Stage) ([]entity.Pick, error)
}
