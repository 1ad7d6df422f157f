package implementation

import (
	"context"
	"errors"

	"ocbs-be/internal/entity"
	"ocbs-be/internal/mapper"
	"ocbs-be/internal/model"
	"ocbs-be/internal/repository/contract"
	"ocbs-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlayerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlayerMapper
}

func NewPlayerRepository(db *gorm.DB) contract.PlayerRepository {
	return &PlayerRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlayerMapper(),
	}
}

func (r *PlayerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PlayerRepositoryImpl) Upsert(ctx context.Context, player *entity.Player) error {
	m := r.mapper.ToModel(player)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "osu_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"api_id", "username", "avatar_url", "token", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*player = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlayerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Player, error) {
	var m model.Player
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PlayerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Player{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
