package memory

import (
	"context"
	"time"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/mapper"
	"ocbs-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type poolCacheItem struct {
	artifact []byte
	savedAt  time.Time
}

// PoolCacheRepository keeps artifacts in process memory. Items never expire;
// the store is meant for development and tests.
type PoolCacheRepository struct {
	cache  *cache.Cache
	mapper *mapper.MapPoolMapper
}

func NewPoolCacheRepository() *PoolCacheRepository {
	return &PoolCacheRepository{
		cache:  cache.New(cache.NoExpiration, 0),
		mapper: mapper.NewMapPoolMapper(),
	}
}

var _ contract.PoolCacheRepository = (*PoolCacheRepository)(nil)

func (r *PoolCacheRepository) LoadArtifact(ctx context.Context, stage entity.Stage) ([]byte, error) {
	b, _ := r.Artifact(stage)
	return b, nil
}

func (r *PoolCacheRepository) Load(ctx context.Context, stage entity.Stage) (*entity.Pool, error) {
	b, found := r.Artifact(stage)
	if !found {
		return nil, nil
	}
	return r.mapper.Decode(b)
}

func (r *PoolCacheRepository) Save(ctx context.Context, stage entity.Stage, pool *entity.Pool) error {
	b, err := r.mapper.Encode(pool)
	if err != nil {
		return err
	}
	r.cache.Set(stage.Slug(), poolCacheItem{artifact: b, savedAt: time.Now()}, cache.NoExpiration)
	return nil
}

func (r *PoolCacheRepository) Describe(ctx context.Context, stage entity.Stage) (*entity.PoolCacheInfo, error) {
	info := &entity.PoolCacheInfo{Stage: stage, Backend: "memory"}
	if x, found := r.cache.Get(stage.Slug()); found {
		item := x.(poolCacheItem)
		info.Cached = true
		info.Size = int64(len(item.artifact))
		info.SavedAt = item.savedAt
	}
	return info, nil
}

func (r *PoolCacheRepository) Delete(ctx context.Context, stage entity.Stage) error {
	r.cache.Delete(stage.Slug())
	return nil
}

// Artifact returns the raw stored bytes of a stage.
func (r *PoolCacheRepository) Artifact(stage entity.Stage) ([]byte, bool) {
	x, found := r.cache.Get(stage.Slug())
	if !found {
		return nil, false
	}
	return x.(poolCacheItem).artifact, true
}

// Put stores raw bytes as a stage's artifact, bypassing encoding.
func (r *PoolCacheRepository) Put(stage entity.Stage, artifact []byte) {
	r.cache.Set(stage.Slug(), poolCacheItem{artifact: artifact, savedAt: time.Now()}, cache.NoExpiration)
}
