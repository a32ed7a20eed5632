package service

import (
	"context"
	"time"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/pkg/logger"
	"freshsprout-be/internal/repository/specification"
	"freshsprout-be/internal/repository/unitofwork"
	"freshsprout-be/pkg/events"
	"freshsprout-be/pkg/lifecycle"
	pktNats "freshsprout-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOrderService interface {
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.OrderResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID, req *dto.ListOrdersRequest) (*dto.ListOrdersResponse, error)
	ListAll(ctx context.Context, req *dto.ListOrdersRequest) (*dto.ListOrdersResponse, error)
	// UpdateStatus is the admin fulfilment move. Transitions outside the
	// lifecycle table are rejected.
	UpdateStatus(ctx context.Context, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
}

type orderService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewOrderService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) IOrderService {
	return &orderService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	res := &dto.OrderResponse{
		Id:          o.Id,
		Type:        string(o.Type),
		Status:      string(o.Status),
		Items:       make([]dto.OrderLineResponse, 0, len(o.Items)),
		Subtotal:    o.Subtotal,
		ShippingFee: o.ShippingFee,
		Total:       o.Total,
		Currency:    o.Currency,
		CreatedAt:   o.CreatedAt,
	}
	if o.GiftType != nil {
		gt := string(*o.GiftType)
		res.GiftType = &gt
	}
	for _, item := range o.Items {
		res.Items = append(res.Items, dto.OrderLineResponse{
			Slug:      item.Slug,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return res
}

func (s *orderService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "order not found")
	}
	return toOrderResponse(order), nil
}

func (s *orderService) list(ctx context.Context, req *dto.ListOrdersRequest, extra ...specification.Specification) (*dto.ListOrdersResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := append([]specification.Specification{}, extra...)
	countSpecs := append([]specification.Specification{}, extra...)
	if req.Status != "" {
		specs = append(specs, specification.Filter("status", req.Status))
		countSpecs = append(countSpecs, specification.Filter("status", req.Status))
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)

	orders, err := uow.OrderRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	total, err := uow.OrderRepository().Count(ctx, countSpecs...)
	if err != nil {
		return nil, err
	}

	res := &dto.ListOrdersResponse{
		Orders:   make([]dto.OrderResponse, 0, len(orders)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, o := range orders {
		res.Orders = append(res.Orders, *toOrderResponse(o))
	}
	return res, nil
}

func (s *orderService) ListMine(ctx context.Context, userId uuid.UUID, req *dto.ListOrdersRequest) (*dto.ListOrdersResponse, error) {
	return s.list(ctx, req, specification.UserOwnedBy{UserID: userId})
}

func (s *orderService) ListAll(ctx context.Context, req *dto.ListOrdersRequest) (*dto.ListOrdersResponse, error) {
	return s.list(ctx, req)
}

func (s *orderService) UpdateStatus(ctx context.Context, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "order not found")
	}

	target := entity.OrderStatus(req.Status)
	if !lifecycle.CanTransition(order.Status, target) {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "status transition not allowed")
	}

	order.Status = target
	order.UpdatedAt = time.Now()
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return nil, err
	}

	if target == entity.OrderStatusShipped {
		s.notifyShipped(ctx, order)
	}
	return toOrderResponse(order), nil
}

func (s *orderService) notifyShipped(ctx context.Context, order *entity.Order) {
	if s.eventPublisher == nil {
		return
	}

	email := ""
	if order.UserId != nil {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *order.UserId}); err == nil && user != nil {
			email = user.Email
		}
	}

	evt := events.NewOrderShipped(order.Id.String(), email)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("order", "failed to publish order shipped event", map[string]interface{}{"error": err.Error()})
	}
}
