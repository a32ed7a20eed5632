package contract

import (
	"context"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/repository/specification"

	"github.com/google/uuid"
)

type GiftRepository interface {
	CreateDelivery(ctx context.Context, delivery *entity.GiftDelivery) error
	UpdateDelivery(ctx context.Context, delivery *entity.GiftDelivery) error
	FindOneDelivery(ctx context.Context, specs ...specification.Specification) (*entity.GiftDelivery, error)
	FindAllDeliveries(ctx context.Context, specs ...specification.Specification) ([]*entity.GiftDelivery, error)

	CreateCenter(ctx context.Context, center *entity.SeniorCenter) error
	UpdateCenter(ctx context.Context, center *entity.SeniorCenter) error
	DeleteCenter(ctx context.Context, id uuid.UUID) error
	FindOneCenter(ctx context.Context, specs ...specification.Specification) (*entity.SeniorCenter, error)
	FindAllCenters(ctx context.Context, specs ...specification.Specification) ([]*entity.SeniorCenter, error)
}
