package service

import (
	"context"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/repository/specification"
	"freshsprout-be/internal/repository/unitofwork"
	"freshsprout-be/pkg/cart"
	"freshsprout-be/pkg/schedule"

	"github.com/gofiber/fiber/v2"
)

type ICartService interface {
	Get(ctx context.Context, token string) (*dto.CartResponse, error)
	AddItem(ctx context.Context, token string, req *dto.AddCartItemRequest) (*dto.CartResponse, error)
	UpdateItem(ctx context.Context, token string, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, token string, slug string) (*dto.CartResponse, error)
	Clear(ctx context.Context, token string) error
}

type cartService struct {
	uowFactory  unitofwork.RepositoryFactory
	store       cart.Store
	scheduleCfg schedule.Config
}

func NewCartService(uowFactory unitofwork.RepositoryFactory, store cart.Store, scheduleCfg schedule.Config) ICartService {
	return &cartService{
		uowFactory:  uowFactory,
		store:       store,
		scheduleCfg: scheduleCfg,
	}
}

func (s *cartService) toResponse(token string, c *cart.Cart) *dto.CartResponse {
	totals := c.Totals(s.scheduleCfg)
	res := &dto.CartResponse{
		Token:       token,
		Items:       make([]dto.CartLineResponse, 0, len(c.Lines)),
		Subtotal:    totals.Subtotal,
		ShippingFee: totals.ShippingFee,
		Total:       totals.Total,
	}
	for _, l := range c.Lines {
		res.Items = append(res.Items, dto.CartLineResponse{
			Slug:      l.Slug,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.UnitPrice * float64(l.Quantity),
		})
	}
	return res
}

func (s *cartService) Get(ctx context.Context, token string) (*dto.CartResponse, error) {
	c, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.toResponse(token, c), nil
}

func (s *cartService) AddItem(ctx context.Context, token string, req *dto.AddCartItemRequest) (*dto.CartResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Price and name are snapshotted from the catalog at add time.
	product, err := uow.ProductRepository().FindOne(ctx,
		specification.BySlug{Slug: req.Slug},
		specification.ActiveProducts{},
	)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.InStock {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "product is not available")
	}

	c, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	c.AddItem(product.Slug, product.Name, product.Price, req.Quantity)

	if err := s.store.Save(ctx, token, c); err != nil {
		return nil, err
	}
	return s.toResponse(token, c), nil
}

func (s *cartService) UpdateItem(ctx context.Context, token string, req *dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	c, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	c.UpdateQuantity(req.Slug, req.Quantity)

	if err := s.store.Save(ctx, token, c); err != nil {
		return nil, err
	}
	return s.toResponse(token, c), nil
}

func (s *cartService) RemoveItem(ctx context.Context, token string, slug string) (*dto.CartResponse, error) {
	c, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(slug)

	if err := s.store.Save(ctx, token, c); err != nil {
		return nil, err
	}
	return s.toResponse(token, c), nil
}

func (s *cartService) Clear(ctx context.Context, token string) error {
	return s.store.Clear(ctx, token)
}
