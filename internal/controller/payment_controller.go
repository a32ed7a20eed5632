package controller

import (
	"os"

	"freshsprout-be/internal/pkg/logger"
	"freshsprout-be/internal/pkg/serverutils"
	"freshsprout-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v79/webhook"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	Webhook(ctx *fiber.Ctx) error
}

type paymentController struct {
	paymentService service.IPaymentService
	log            logger.ILogger
}

func NewPaymentController(paymentService service.IPaymentService, log logger.ILogger) IPaymentController {
	return &paymentController{
		paymentService: paymentService,
		log:            log,
	}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment/v1")
	h.Post("webhook", c.Webhook)
}

// Webhook receives Stripe events. A 2xx acknowledges; any other status makes
// Stripe redeliver, so only storage failures return errors.
func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")

	event, err := webhook.ConstructEvent(ctx.Body(), ctx.Get("Stripe-Signature"), secret)
	if err != nil {
		c.log.Warn("payment", "webhook signature verification failed", map[string]interface{}{"error": err.Error()})
		return fiber.NewError(fiber.StatusBadRequest, "invalid signature")
	}

	ev, handled := service.TranslateStripeEvent(event)
	if !handled {
		c.log.Info("payment", "acknowledging unhandled webhook event", map[string]interface{}{"type": string(event.Type)})
		return ctx.JSON(serverutils.SuccessResponse("Acknowledged", fiber.Map{}))
	}

	if err := c.paymentService.HandleEvent(ctx.Context(), ev); err != nil {
		c.log.Error("payment", "webhook processing failed", map[string]interface{}{
			"type":  string(event.Type),
			"error": err.Error(),
		})
		return fiber.NewError(fiber.StatusInternalServerError, "event processing failed")
	}

	return ctx.JSON(serverutils.SuccessResponse("Processed", fiber.Map{}))
}
