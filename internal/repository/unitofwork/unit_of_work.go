package unitofwork

import (
	"context"

	"freshsprout-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProductRepository() contract.ProductRepository
	OrderRepository() contract.OrderRepository
	ReplacementRepository() contract.ReplacementRepository
	SupportRepository() contract.SupportRepository
	GiftRepository() contract.GiftRepository
}
