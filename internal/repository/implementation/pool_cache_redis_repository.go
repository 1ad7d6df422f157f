package implementation

import (
	"context"
	"errors"
	"time"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/mapper"
	"ocbs-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const poolCacheKeyPrefix = "mappool:"

// PoolCacheRedisRepository stores artifacts without expiry so a pool stays
// cached until an operator deletes the key.
type PoolCacheRedisRepository struct {
	rdb    *redis.Client
	mapper *mapper.MapPoolMapper
}

func NewPoolCacheRedisRepository(rdb *redis.Client) contract.PoolCacheRepository {
	return &PoolCacheRedisRepository{
		rdb:    rdb,
		mapper: mapper.NewMapPoolMapper(),
	}
}

func (r *PoolCacheRedisRepository) key(stage entity.Stage) string {
	return poolCacheKeyPrefix + stage.Slug()
}

func (r *PoolCacheRedisRepository) savedAtKey(stage entity.Stage) string {
	return r.key(stage) + ":saved_at"
}

func (r *PoolCacheRedisRepository) LoadArtifact(ctx context.Context, stage entity.Stage) ([]byte, error) {
	b, err := r.rdb.Get(ctx, r.key(stage)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *PoolCacheRedisRepository) Load(ctx context.Context, stage entity.Stage) (*entity.Pool, error) {
	b, err := r.LoadArtifact(ctx, stage)
	if err != nil || b == nil {
		return nil, err
	}
	return r.mapper.Decode(b)
}

func (r *PoolCacheRedisRepository) Save(ctx context.Context, stage entity.Stage, pool *entity.Pool) error {
	b, err := r.mapper.Encode(pool)
	if err != nil {
		return err
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(stage), b, 0)
		pipe.Set(ctx, r.savedAtKey(stage), time.Now().UTC().Format(time.RFC3339Nano), 0)
		return nil
	})
	return err
}

func (r *PoolCacheRedisRepository) Describe(ctx context.Context, stage entity.Stage) (*entity.PoolCacheInfo, error) {
	info := &entity.PoolCacheInfo{Stage: stage, Backend: "redis"}

	size, err := r.rdb.StrLen(ctx, r.key(stage)).Result()
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return info, nil
	}
	info.Cached = true
	info.Size = size

	raw, err := r.rdb.Get(ctx, r.savedAtKey(stage)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		info.SavedAt = t
	}
	return info, nil
}

func (r *PoolCacheRedisRepository) Delete(ctx context.Context, stage entity.Stage) error {
	return r.rdb.Del(ctx, r.key(stage), r.savedAtKey(stage)).Err()
}
