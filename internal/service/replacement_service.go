package service

import (
	"context"
	"encoding/json"
	"time"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/entity"
	"freshsprout-be/internal/pkg/logger"
	"freshsprout-be/internal/repository/specification"
	"freshsprout-be/internal/repository/unitofwork"
	"freshsprout-be/pkg/events"
	pktNats "freshsprout-be/pkg/nats"
	"freshsprout-be/pkg/replacement"
	"freshsprout-be/pkg/schedule"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReplacementService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReplacementRequest) (*dto.ReplacementResponse, error)
	ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.ReplacementResponse, error)
	ListAll(ctx context.Context) ([]*dto.ReplacementResponse, error)
	Review(ctx context.Context, req *dto.ReviewReplacementRequest) (*dto.ReplacementResponse, error)
	Apply(ctx context.Context, req *dto.ApplyReplacementRequest) (*dto.ReplacementResponse, error)
}

type replacementService struct {
	uowFactory     unitofwork.RepositoryFactory
	scheduleCfg    schedule.Config
	publisher      IPublisherService
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewReplacementService(
	uowFactory unitofwork.RepositoryFactory,
	scheduleCfg schedule.Config,
	publisher IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IReplacementService {
	return &replacementService{
		uowFactory:     uowFactory,
		scheduleCfg:    scheduleCfg,
		publisher:      publisher,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func toReplacementResponse(r *entity.ReplacementRequest) *dto.ReplacementResponse {
	return &dto.ReplacementResponse{
		Id:             r.Id,
		WeekStartDate:  r.WeekStartDate,
		MonthlyCount:   r.MonthlyCount,
		Reason:         r.Reason,
		Status:         string(r.Status),
		AdminNotes:     r.AdminNotes,
		AppliedOrderId: r.AppliedOrderId,
		CreatedAt:      r.CreatedAt,
	}
}

func (s *replacementService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateReplacementRequest) (*dto.ReplacementResponse, error) {
	now := time.Now()
	if s.scheduleCfg.Location != nil {
		now = now.In(s.scheduleCfg.Location)
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	if user.ActiveOrderId == nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "fresh swap requires an active subscription")
	}

	monthStart, monthEnd := replacement.MonthBounds(now)
	count, err := uow.ReplacementRepository().CountInMonth(ctx, userId, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	if err := replacement.CheckCreate(s.scheduleCfg, now, int(count)); err != nil {
		return nil, err
	}

	request := &entity.ReplacementRequest{
		Id:            uuid.New(),
		UserId:        userId,
		WeekStartDate: s.scheduleCfg.WeekStart(now),
		MonthlyCount:  int(count) + 1,
		Reason:        req.Reason,
		Status:        entity.ReplacementStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uow.ReplacementRepository().Create(ctx, request); err != nil {
		return nil, err
	}
	return toReplacementResponse(request), nil
}

func (s *replacementService) ListMine(ctx context.Context, userId uuid.UUID) ([]*dto.ReplacementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.ReplacementRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ReplacementResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, toReplacementResponse(r))
	}
	return res, nil
}

func (s *replacementService) ListAll(ctx context.Context) ([]*dto.ReplacementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.ReplacementRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ReplacementResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, toReplacementResponse(r))
	}
	return res, nil
}

func (s *replacementService) Review(ctx context.Context, req *dto.ReviewReplacementRequest) (*dto.ReplacementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.ReplacementRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "replacement request not found")
	}
	if request.Status != entity.ReplacementStatusPending {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "request already reviewed")
	}

	if req.Approve {
		request.Status = entity.ReplacementStatusApproved
	} else {
		request.Status = entity.ReplacementStatusRejected
	}
	request.AdminNotes = req.AdminNotes
	request.UpdatedAt = time.Now()

	if err := uow.ReplacementRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	if req.Approve {
		s.notifySwapApproved(ctx, request)
	}
	return toReplacementResponse(request), nil
}

func (s *replacementService) Apply(ctx context.Context, req *dto.ApplyReplacementRequest) (*dto.ReplacementResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.ReplacementRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "replacement request not found")
	}
	if request.Status != entity.ReplacementStatusApproved {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "only approved requests can be applied")
	}

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: req.OrderId})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "order not found")
	}

	request.Status = entity.ReplacementStatusApplied
	request.AppliedOrderId = &order.Id
	request.UpdatedAt = time.Now()

	if err := uow.ReplacementRepository().Update(ctx, request); err != nil {
		return nil, err
	}
	return toReplacementResponse(request), nil
}

func (s *replacementService) notifySwapApproved(ctx context.Context, request *entity.ReplacementRequest) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: request.UserId})
	if err != nil || user == nil {
		return
	}

	weekStart := request.WeekStartDate.Format("2006-01-02")

	msg := dto.SwapNotificationMessage{
		RequestId: request.Id,
		Email:     user.Email,
		WeekStart: weekStart,
	}
	if payload, err := json.Marshal(msg); err == nil {
		if err := s.publisher.Publish(ctx, payload); err != nil {
			s.log.Warn("replacement", "failed to queue swap notification", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewSwapApproved(request.Id.String(), user.Email, weekStart)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("replacement", "failed to publish swap approved event", map[string]interface{}{"error": err.Error()})
		}
	}
}
