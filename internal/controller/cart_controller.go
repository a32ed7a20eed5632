package controller

import (
	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/pkg/serverutils"
	"freshsprout-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const cartTokenHeader = "X-Cart-Token"

type ICartController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
	UpdateItem(ctx *fiber.Ctx) error
	RemoveItem(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
}

type cartController struct {
	cartService service.ICartService
}

func NewCartController(cartService service.ICartService) ICartController {
	return &cartController{
		cartService: cartService,
	}
}

func (c *cartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cart/v1")
	h.Get("", c.Show)
	h.Post("items", c.AddItem)
	h.Put("items", c.UpdateItem)
	h.Delete("items/:slug", c.RemoveItem)
	h.Delete("", c.Clear)
}

// cartToken reads the client's cart token, minting a fresh one when absent.
// The response body always echoes the token so the client can persist it.
func cartToken(ctx *fiber.Ctx) string {
	token := ctx.Get(cartTokenHeader)
	if token == "" {
		token = uuid.NewString()
	}
	return token
}

func (c *cartController) Show(ctx *fiber.Ctx) error {
	res, err := c.cartService.Get(ctx.Context(), cartToken(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show cart", res))
}

func (c *cartController) AddItem(ctx *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.cartService.AddItem(ctx.Context(), cartToken(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add item", res))
}

func (c *cartController) UpdateItem(ctx *fiber.Ctx) error {
	var req dto.UpdateCartItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.cartService.UpdateItem(ctx.Context(), cartToken(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update item", res))
}

func (c *cartController) RemoveItem(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	res, err := c.cartService.RemoveItem(ctx.Context(), cartToken(ctx), slug)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove item", res))
}

func (c *cartController) Clear(ctx *fiber.Ctx) error {
	if err := c.cartService.Clear(ctx.Context(), cartToken(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear cart", fiber.Map{}))
}
