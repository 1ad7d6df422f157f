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
)

type RegistrationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RegistrationMapper
}

func NewRegistrationRepository(db *gorm.DB) contract.RegistrationRepository {
	return &RegistrationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRegistrationMapper(),
	}
}

func (r *RegistrationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RegistrationRepositoryImpl) Create(ctx context.Context, registration *entity.Registration) error {
	m := r.mapper.ToModel(registration)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*registration = *r.mapper.ToEntity(m)
	return nil
}

func (r *RegistrationRepositoryImpl) Update(ctx context.Context, registration *entity.Registration) error {
	m := r.mapper.ToModel(registration)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*registration = *r.mapper.ToEntity(m)
	return nil
}

func (r *RegistrationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Registration, error) {
	var m model.Registration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RegistrationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Registration, error) {
	var models []*model.Registration
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Registration, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *RegistrationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Registration{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
