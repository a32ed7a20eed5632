package contract

import (
	"context"
	"errors"

	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/repository/specification"
)

// ErrDuplicateOrder is returned by Create when an order already exists for
// the same stripe session id.
var ErrDuplicateOrder = errors.New("order already exists for this checkout session")

type OrderRepository interface {
	// Create inserts a new order. A unique-constraint violation on the
	// stripe session id is reported as ErrDuplicateOrder so webhook
	// handlers can treat a lost insert race as an idempotent success.
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
