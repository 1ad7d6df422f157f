package service

import (
	"context"
	"fmt"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/mapper"
	"ocbs-be/internal/pkg/logger"
	"ocbs-be/internal/repository/contract"
)

// ComputePoolFunc builds a stage's pool from scratch.
type ComputePoolFunc func(ctx context.Context) (*entity.Pool, error)

// CachedPool is a stage's pool along with the artifact bytes it is served as.
// On a hit Artifact is exactly what the store holds.
type CachedPool struct {
	Pool     *entity.Pool
	Artifact []byte
	// Fresh is set when this call resolved and persisted the pool.
	Fresh bool
}

// PoolCache serves persisted pools and runs at most one computation per
// stage at a time. Stages are independent of each other.
type PoolCache struct {
	store  contract.PoolCacheRepository
	mapper *mapper.MapPoolMapper
	logger logger.ILogger
	gates  map[entity.Stage]chan struct{}
}

func NewPoolCache(store contract.PoolCacheRepository, log logger.ILogger) *PoolCache {
	gates := make(map[entity.Stage]chan struct{})
	for _, stage := range entity.AllStages() {
		gates[stage] = make(chan struct{}, 1)
	}
	return &PoolCache{
		store:  store,
		mapper: mapper.NewMapPoolMapper(),
		logger: log,
		gates:  gates,
	}
}

// load reports a miss for absent and for unreadable artifacts alike. A
// readable artifact is returned with its stored bytes untouched.
func (c *PoolCache) load(ctx context.Context, stage entity.Stage) *CachedPool {
	b, err := c.store.LoadArtifact(ctx, stage)
	if err == nil && b == nil {
		return nil
	}
	var pool *entity.Pool
	if err == nil {
		pool, err = c.mapper.Decode(b)
	}
	if err != nil {
		c.logger.Warn("PoolCache", "Pool artifact unreadable, treating as miss", map[string]interface{}{
			"stage": stage.Slug(),
			"error": err.Error(),
		})
		return nil
	}
	return &CachedPool{Pool: pool, Artifact: b}
}

// GetOrCompute returns the cached pool of stage, or computes, persists and
// returns it. A failed computation persists nothing.
func (c *PoolCache) GetOrCompute(ctx context.Context, stage entity.Stage, compute ComputePoolFunc) (*CachedPool, error) {
	if cached := c.load(ctx, stage); cached != nil {
		c.logger.Debug("PoolCache", "Cache hit", map[string]interface{}{"stage": stage.Slug()})
		return cached, nil
	}

	gate, ok := c.gates[stage]
	if !ok {
		return nil, fmt.Errorf("%w: %d", entity.ErrUnknownStage, int(stage))
	}

	select {
	case gate <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-gate }()

	// Another request may have filled the cache while we waited.
	if cached := c.load(ctx, stage); cached != nil {
		return cached, nil
	}

	c.logger.Info("PoolCache", "Cache miss, resolving pool", map[string]interface{}{"stage": stage.Slug()})

	pool, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.store.Save(ctx, stage, pool); err != nil {
		return nil, fmt.Errorf("persist pool %s: %w", stage.Slug(), err)
	}

	// Backends store the mapper encoding, which is deterministic.
	artifact, err := c.mapper.Encode(pool)
	if err != nil {
		return nil, err
	}
	return &CachedPool{Pool: pool, Artifact: artifact, Fresh: true}, nil
}
