package implementation

import (
	"context"
	"errors"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/mapper"
	"freshsprout-be/internal/model"
	"freshsprout-be/internal/repository/contract"
	"freshsprout-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GiftRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GiftMapper
}

func NewGiftRepository(db *gorm.DB) contract.GiftRepository {
	return &GiftRepositoryImpl{
		db:     db,
		mapper: mapper.NewGiftMapper(),
	}
}

func (r *GiftRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GiftRepositoryImpl) CreateDelivery(ctx context.Context, delivery *entity.GiftDelivery) error {
	m := r.mapper.DeliveryToModel(delivery)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*delivery = *r.mapper.DeliveryToEntity(m)
	return nil
}

func (r *GiftRepositoryImpl) UpdateDelivery(ctx context.Context, delivery *entity.GiftDelivery) error {
	m := r.mapper.DeliveryToModel(delivery)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*delivery = *r.mapper.DeliveryToEntity(m)
	return nil
}

func (r *GiftRepositoryImpl) FindOneDelivery(ctx context.Context, specs ...specification.Specification) (*entity.GiftDelivery, error) {
	var m model.GiftDelivery
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DeliveryToEntity(&m), nil
}

func (r *GiftRepositoryImpl) FindAllDeliveries(ctx context.Context, specs ...specification.Specification) ([]*entity.GiftDelivery, error) {
	var models []*model.GiftDelivery
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.GiftDelivery, len(models))
	for i, m := range models {
		entities[i] = r.mapper.DeliveryToEntity(m)
	}
	return entities, nil
}

func (r *GiftRepositoryImpl) CreateCenter(ctx context.Context, center *entity.SeniorCenter) error {
	m := r.mapper.CenterToModel(center)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*center = *r.mapper.CenterToEntity(m)
	return nil
}

func (r *GiftRepositoryImpl) UpdateCenter(ctx context.Context, center *entity.SeniorCenter) error {
	m := r.mapper.CenterToModel(center)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*center = *r.mapper.CenterToEntity(m)
	return nil
}

func (r *GiftRepositoryImpl) DeleteCenter(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.SeniorCenter{}, id).Error
}

func (r *GiftRepositoryImpl) FindOneCenter(ctx context.Context, specs ...specification.Specification) (*entity.SeniorCenter, error) {
	var m model.SeniorCenter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CenterToEntity(&m), nil
}

func (r *GiftRepositoryImpl) FindAllCenters(ctx context.Context, specs ...specification.Specification) ([]*entity.SeniorCenter, error) {
	var models []*model.SeniorCenter
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SeniorCenter, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CenterToEntity(m)
	}
	return entities, nil
}
