package implementation

import (
	"context"
	"errors"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/mapper"
	"freshsprout-be/internal/model"
	"freshsprout-be/internal/repository/contract"
	"freshsprout-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SupportRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SupportMapper
}

func NewSupportRepository(db *gorm.DB) contract.SupportRepository {
	return &SupportRepositoryImpl{
		db:     db,
		mapper: mapper.NewSupportMapper(),
	}
}

func (r *SupportRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SupportRepositoryImpl) Create(ctx context.Context, req *entity.SupportRequest) error {
	m := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.ToEntity(m)
	return nil
}

func (r *SupportRepositoryImpl) Update(ctx context.Context, req *entity.SupportRequest) error {
	m := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.ToEntity(m)
	return nil
}

func (r *SupportRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SupportRequest, error) {
	var m model.SupportRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SupportRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SupportRequest, error) {
	var models []*model.SupportRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SupportRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
