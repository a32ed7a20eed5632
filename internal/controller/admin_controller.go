package controller

import (
	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/pkg/serverutils"
	"freshsprout-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IAdminController groups the back-office surface: catalog management,
// fulfilment, replacement review, support triage and gift routing.
type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	productService     service.IProductService
	orderService       service.IOrderService
	replacementService service.IReplacementService
	supportService     service.ISupportService
	giftService        service.IGiftService
}

func NewAdminController(
	productService service.IProductService,
	orderService service.IOrderService,
	replacementService service.IReplacementService,
	supportService service.ISupportService,
	giftService service.IGiftService,
) IAdminController {
	return &adminController{
		productService:     productService,
		orderService:       orderService,
		replacementService: replacementService,
		supportService:     supportService,
		giftService:        giftService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.AdminMiddleware)

	h.Post("products", c.createProduct)
	h.Put("products/:id", c.updateProduct)
	h.Delete("products/:id", c.deleteProduct)

	h.Get("orders", c.listOrders)
	h.Put("orders/:id/status", c.updateOrderStatus)

	h.Get("replacements", c.listReplacements)
	h.Put("replacements/:id/review", c.reviewReplacement)
	h.Put("replacements/:id/apply", c.applyReplacement)

	h.Get("support", c.listSupport)
	h.Put("support/:id", c.reviewSupport)

	h.Get("centers", c.listCenters)
	h.Post("centers", c.createCenter)
	h.Put("centers/:id", c.updateCenter)

	h.Get("gifts", c.listGifts)
	h.Put("gifts/:id/status", c.updateGiftStatus)
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (c *adminController) createProduct(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create product", res))
}

func (c *adminController) updateProduct(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update product", res))
}

func (c *adminController) deleteProduct(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.productService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete product", fiber.Map{}))
}

func (c *adminController) listOrders(ctx *fiber.Ctx) error {
	var req dto.ListOrdersRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orderService.ListAll(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list orders", res))
}

func (c *adminController) updateOrderStatus(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateOrderStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orderService.UpdateStatus(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update order status", res))
}

func (c *adminController) listReplacements(ctx *fiber.Ctx) error {
	res, err := c.replacementService.ListAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list replacement requests", res))
}

func (c *adminController) reviewReplacement(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ReviewReplacementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.replacementService.Review(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success review replacement request", res))
}

func (c *adminController) applyReplacement(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ApplyReplacementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.replacementService.Apply(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success apply replacement request", res))
}

func (c *adminController) listSupport(ctx *fiber.Ctx) error {
	res, err := c.supportService.ListAll(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list support requests", res))
}

func (c *adminController) reviewSupport(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ReviewSupportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.supportService.Review(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success review support request", res))
}

func (c *adminController) listCenters(ctx *fiber.Ctx) error {
	res, err := c.giftService.ListCenters(ctx.Context(), ctx.QueryBool("active_only"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list senior centers", res))
}

func (c *adminController) createCenter(ctx *fiber.Ctx) error {
	var req dto.CreateSeniorCenterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.giftService.CreateCenter(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create senior center", res))
}

func (c *adminController) updateCenter(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateSeniorCenterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.giftService.UpdateCenter(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update senior center", res))
}

func (c *adminController) listGifts(ctx *fiber.Ctx) error {
	res, err := c.giftService.ListDeliveries(ctx.Context(), ctx.Query("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list gift deliveries", res))
}

func (c *adminController) updateGiftStatus(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateGiftStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.giftService.UpdateDeliveryStatus(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update gift delivery", res))
}
