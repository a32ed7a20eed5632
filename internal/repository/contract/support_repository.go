package contract

import (
	"context"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/repository/specification"
)

type SupportRepository interface {
	Create(ctx context.Context, req *entity.SupportRequest) error
	Update(ctx context.Context, req *entity.SupportRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SupportRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SupportRequest, error)
}
