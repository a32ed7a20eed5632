package controller

import (
	"time"

	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/pkg/serverutils"
	"freshsprout-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICheckoutController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	DeliveryInfo(ctx *fiber.Ctx) error
}

type checkoutController struct {
	checkoutService service.ICheckoutService
}

func NewCheckoutController(checkoutService service.ICheckoutService) ICheckoutController {
	return &checkoutController{
		checkoutService: checkoutService,
	}
}

func (c *checkoutController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/checkout/v1")
	h.Get("delivery-info", c.DeliveryInfo)
	// Guests may check out one-off orders, so auth is optional here.
	h.Post("session", serverutils.OptionalJwtMiddleware, c.CreateSession)
}

func (c *checkoutController) CreateSession(ctx *fiber.Ctx) error {
	userId := uuid.Nil
	if userIdStr, ok := ctx.Locals("user_id").(string); ok {
		userId, _ = uuid.Parse(userIdStr)
	}

	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.CreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create checkout session", res))
}

func (c *checkoutController) DeliveryInfo(ctx *fiber.Ctx) error {
	res := c.checkoutService.DeliveryInfo(ctx.Context(), time.Now())
	return ctx.JSON(serverutils.SuccessResponse("Success show delivery info", res))
}
