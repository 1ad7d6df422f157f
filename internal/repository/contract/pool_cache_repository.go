package contract

import (
	"context"

	"ocbs-be/internal/entity"
)

// PoolCacheRepository persists one resolved pool artifact per stage.
type PoolCacheRepository interface {
	// LoadArtifact returns the stored bytes unchanged, nil, nil when no
	// artifact exists for the stage.
	LoadArtifact(ctx context.Context, stage entity.Stage) ([]byte, error)
	// Load decodes the artifact. Returns nil, nil when none exists.
	Load(ctx context.Context, stage entity.Stage) (*entity.Pool, error)
	// Save writes the whole artifact; readers never observe a partial write.
	Save(ctx context.Context, stage entity.Stage, pool *entity.Pool) error
	Describe(ctx context.Context, stage entity.Stage) (*entity.PoolCacheInfo, error)
	// Delete is for operator tooling only.
	Delete(ctx context.Context, stage entity.Stage) error
}
