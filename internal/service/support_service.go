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

type ISupportService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSupportRequest) (*dto.SupportResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.SupportResponse, error)
	ListAll(ctx context.Context, status string) ([]*dto.SupportResponse, error)
	Review(ctx context.Context, req *dto.ReviewSupportRequest) (*dto.SupportResponse, error)
}

type supportService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSupportService(uowFactory unitofwork.RepositoryFactory) ISupportService {
	return &supportService{
		uowFactory: uowFactory,
	}
}

func toSupportResponse(r *entity.SupportRequest) *dto.SupportResponse {
	return &dto.SupportResponse{
		Id:         r.Id,
		Type:       string(r.Type),
		Message:    r.Message,
		Status:     string(r.Status),
		AdminNotes: r.AdminNotes,
		OrderId:    r.OrderId,
		CreatedAt:  r.CreatedAt,
	}
}

func (s *supportService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSupportRequest) (*dto.SupportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Refund requests must reference one of the caller's own orders.
	if req.OrderId != nil {
		order, err := uow.OrderRepository().FindOne(ctx,
			specification.ByID{ID: *req.OrderId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, fiber.NewError(fiber.StatusNotFound, "order not found")
		}
	} else if req.Type == string(entity.SupportTypeRefund) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "refund requests require an order")
	}

	request := &entity.SupportRequest{
		Id:        uuid.New(),
		UserId:    userId,
		Type:      entity.SupportType(req.Type),
		Message:   req.Message,
		Status:    entity.SupportStatusOpen,
		OrderId:   req.OrderId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.SupportRepository().Create(ctx, request); err != nil {
		return nil, err
	}
	return toSupportResponse(request), nil
}

func (s *supportService) ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.SupportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.SupportRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SupportResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, toSupportResponse(r))
	}
	return res, nil
}

func (s *supportService) ListAll(ctx context.Context, status string) ([]*dto.SupportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if status != "" {
		specs = append([]specification.Specification{specification.Filter("status", status)}, specs...)
	}

	requests, err := uow.SupportRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SupportResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, toSupportResponse(r))
	}
	return res, nil
}

func (s *supportService) Review(ctx context.Context, req *dto.ReviewSupportRequest) (*dto.SupportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.SupportRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "support request not found")
	}

	request.Status = entity.SupportStatus(req.Status)
	request.AdminNotes = req.AdminNotes
	request.UpdatedAt = time.Now()

	if err := uow.SupportRepository().Update(ctx, request); err != nil {
		return nil, err
	}
	return toSupportResponse(request), nil
}
