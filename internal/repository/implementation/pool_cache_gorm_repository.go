package implementation

import (
	"context"
	"errors"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/mapper"
	"ocbs-be/internal/model"
	"ocbs-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PoolCacheGormRepository struct {
	db     *gorm.DB
	mapper *mapper.MapPoolMapper
}

func NewPoolCacheGormRepository(db *gorm.DB) contract.PoolCacheRepository {
	return &PoolCacheGormRepository{
		db:     db,
		mapper: mapper.NewMapPoolMapper(),
	}
}

func (r *PoolCacheGormRepository) find(ctx context.Context, stage entity.Stage) (*model.MapPoolCache, error) {
	var m model.MapPoolCache
	if err := r.db.WithContext(ctx).Where("stage = ?", stage.Slug()).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *PoolCacheGormRepository) LoadArtifact(ctx context.Context, stage entity.Stage) ([]byte, error) {
	m, err := r.find(ctx, stage)
	if err != nil || m == nil {
		return nil, err
	}
	return []byte(m.Artifact), nil
}

func (r *PoolCacheGormRepository) Load(ctx context.Context, stage entity.Stage) (*entity.Pool, error) {
	b, err := r.LoadArtifact(ctx, stage)
	if err != nil || b == nil {
		return nil, err
	}
	return r.mapper.Decode(b)
}

func (r *PoolCacheGormRepository) Save(ctx context.Context, stage entity.Stage, pool *entity.Pool) error {
	b, err := r.mapper.Encode(pool)
	if err != nil {
		return err
	}
	m := &model.MapPoolCache{
		Stage:    stage.Slug(),
		Artifact: datatypes.JSON(b),
	}
	// Only reached when the stored row was missing or unreadable.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(m).Error
}

func (r *PoolCacheGormRepository) Describe(ctx context.Context, stage entity.Stage) (*entity.PoolCacheInfo, error) {
	info := &entity.PoolCacheInfo{Stage: stage, Backend: "postgres"}
	m, err := r.find(ctx, stage)
	if err != nil {
		return nil, err
	}
	if m != nil {
		info.Cached = true
		info.Size = int64(len(m.Artifact))
		info.SavedAt = m.UpdatedAt
	}
	return info, nil
}

func (r *PoolCacheGormRepository) Delete(ctx context.Context, stage entity.Stage) error {
	return r.db.WithContext(ctx).Where("stage = ?", stage.Slug()).Delete(&model.MapPoolCache{}).Error
}
