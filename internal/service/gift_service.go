package service

import (
	"context"
	"time"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/repository/specification"
	"freshsprout-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGiftService interface {
	ListCenters(ctx context.Context, activeOnly bool) ([]*dto.SeniorCenterResponse, error)
	CreateCenter(ctx context.Context, req *dto.CreateSeniorCenterRequest) (*dto.SeniorCenterResponse, error)
	UpdateCenter(ctx context.Context, req *dto.UpdateSeniorCenterRequest) (*dto.SeniorCenterResponse, error)
	ListDeliveries(ctx context.Context, status string) ([]*dto.GiftDeliveryResponse, error)
	UpdateDeliveryStatus(ctx context.Context, req *dto.UpdateGiftStatusRequest) (*dto.GiftDeliveryResponse, error)
}

type giftService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGiftService(uowFactory unitofwork.RepositoryFactory) IGiftService {
	return &giftService{
		uowFactory: uowFactory,
	}
}

func toCenterResponse(c *entity.SeniorCenter) *dto.SeniorCenterResponse {
	return &dto.SeniorCenterResponse{
		Id:        c.Id,
		Name:      c.Name,
		Address:   c.Address,
		Region:    c.Region,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func toGiftDeliveryResponse(d *entity.GiftDelivery) *dto.GiftDeliveryResponse {
	return &dto.GiftDeliveryResponse{
		Id:             d.Id,
		OrderId:        d.OrderId,
		GiftType:       string(d.GiftType),
		SeniorCenterId: d.SeniorCenterId,
		CustomName:     d.CustomName,
		CustomAddress:  d.CustomAddress,
		Status:         string(d.Status),
		DeliveryDate:   d.DeliveryDate,
		CreatedAt:      d.CreatedAt,
	}
}

func (s *giftService) ListCenters(ctx context.Context, activeOnly bool) ([]*dto.SeniorCenterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at"},
	}
	if activeOnly {
		specs = append([]specification.Specification{specification.Filter("is_active", true)}, specs...)
	}

	centers, err := uow.GiftRepository().FindAllCenters(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SeniorCenterResponse, 0, len(centers))
	for _, c := range centers {
		res = append(res, toCenterResponse(c))
	}
	return res, nil
}

func (s *giftService) CreateCenter(ctx context.Context, req *dto.CreateSeniorCenterRequest) (*dto.SeniorCenterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	center := &entity.SeniorCenter{
		Id:        uuid.New(),
		Name:      req.Name,
		Address:   req.Address,
		Region:    req.Region,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.GiftRepository().CreateCenter(ctx, center); err != nil {
		return nil, err
	}
	return toCenterResponse(center), nil
}

func (s *giftService) UpdateCenter(ctx context.Context, req *dto.UpdateSeniorCenterRequest) (*dto.SeniorCenterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	center, err := uow.GiftRepository().FindOneCenter(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if center == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "senior center not found")
	}

	center.Name = req.Name
	center.Address = req.Address
	center.Region = req.Region
	center.IsActive = req.IsActive
	center.UpdatedAt = time.Now()

	if err := uow.GiftRepository().UpdateCenter(ctx, center); err != nil {
		return nil, err
	}
	return toCenterResponse(center), nil
}

func (s *giftService) ListDeliveries(ctx context.Context, status string) ([]*dto.GiftDeliveryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if status != "" {
		specs = append([]specification.Specification{specification.Filter("status", status)}, specs...)
	}

	deliveries, err := uow.GiftRepository().FindAllDeliveries(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.GiftDeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		res = append(res, toGiftDeliveryResponse(d))
	}
	return res, nil
}

func (s *giftService) UpdateDeliveryStatus(ctx context.Context, req *dto.UpdateGiftStatusRequest) (*dto.GiftDeliveryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	delivery, err := uow.GiftRepository().FindOneDelivery(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "gift delivery not found")
	}

	delivery.Status = entity.GiftStatus(req.Status)
	delivery.DeliveryDate = req.DeliveryDate
	delivery.UpdatedAt = time.Now()

	if err := uow.GiftRepository().UpdateDelivery(ctx, delivery); err != nil {
		return nil, err
	}
	return toGiftDeliveryResponse(delivery), nil
}
