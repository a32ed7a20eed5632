package service

import (
	"context"
	"encoding/json"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/pkg/logger"
	"freshsprout-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// INotifierService drains the in-process notification topics and turns
// messages into emails. Email failures are logged, never retried; a lost
// notification must not block order processing.
type INotifierService interface {
	Consume(ctx context.Context) error
}

type notifierService struct {
	pubSub       *gochannel.GoChannel
	orderTopic   string
	swapTopic    string
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewNotifierService(
	pubSub *gochannel.GoChannel,
	orderTopic string,
	swapTopic string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) INotifierService {
	return &notifierService{
		pubSub:       pubSub,
		orderTopic:   orderTopic,
		swapTopic:    swapTopic,
		emailService: emailService,
		log:          log,
	}
}

func (s *notifierService) Consume(ctx context.Context) error {
	orderMessages, err := s.pubSub.Subscribe(ctx, s.orderTopic)
	if err != nil {
		return err
	}
	swapMessages, err := s.pubSub.Subscribe(ctx, s.swapTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range orderMessages {
			s.processOrderMessage(msg)
		}
	}()
	go func() {
		for msg := range swapMessages {
			s.processSwapMessage(msg)
		}
	}()

	return nil
}

func (s *notifierService) processOrderMessage(msg *message.Message) {
	var payload dto.OrderNotificationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.log.Error("notifier", "failed to unmarshal order notification", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if err := s.emailService.SendOrderConfirmation(payload.Email, payload.OrderId.String(), payload.Total, payload.Currency); err != nil {
		s.log.Error("notifier", "failed to send order confirmation", map[string]interface{}{
			"order_id": payload.OrderId.String(),
			"error":    err.Error(),
		})
	}
	msg.Ack()
}

func (s *notifierService) processSwapMessage(msg *message.Message) {
	var payload dto.SwapNotificationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.log.Error("notifier", "failed to unmarshal swap notification", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if err := s.emailService.SendSwapApproved(payload.Email, payload.WeekStart); err != nil {
		s.log.Error("notifier", "failed to send swap approval email", map[string]interface{}{
			"request_id": payload.RequestId.String(),
			"error":      err.Error(),
		})
	}
	msg.Ack()
}
