package implementation

import (
	"context"
	"errors"
	"time"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/mapper"
	"freshsprout-be/internal/model"
	"freshsprout-be/internal/repository/contract"
	"freshsprout-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReplacementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReplacementMapper
}

func NewReplacementRepository(db *gorm.DB) contract.ReplacementRepository {
	return &ReplacementRepositoryImpl{
		db:     db,
		mapper: mapper.NewReplacementMapper(),
	}
}

func (r *ReplacementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReplacementRepositoryImpl) Create(ctx context.Context, req *entity.ReplacementRequest) error {
	m := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReplacementRepositoryImpl) Update(ctx context.Context, req *entity.ReplacementRequest) error {
	m := r.mapper.ToModel(req)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*req = *r.mapper.ToEntity(m)
	return nil
}

func (r *ReplacementRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReplacementRequest, error) {
	var m model.ReplacementRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ReplacementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReplacementRequest, error) {
	var models []*model.ReplacementRequest
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ReplacementRequest, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ReplacementRepositoryImpl) CountInMonth(ctx context.Context, userId uuid.UUID, monthStart, monthEnd time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ReplacementRequest{}).
		Where("user_id = ?", userId).
		Where("created_at >= ? AND created_at < ?", monthStart, monthEnd).
		Count(&count).Error
	return count, err
}
