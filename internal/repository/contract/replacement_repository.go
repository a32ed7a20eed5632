package contract

import (
	"context"
	"time"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReplacementRepository interface {
	Create(ctx context.Context, req *entity.ReplacementRequest) error
	Update(ctx context.Context, req *entity.ReplacementRequest) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReplacementRequest, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReplacementRequest, error)
	// CountInMonth counts a user's requests created in [monthStart, monthEnd),
	// the figure the monthly cap is enforced against.
	CountInMonth(ctx context.Context, userId uuid.UUID, monthStart, monthEnd time.Time) (int64, error)
}
