package controller

import (
	"freshsprout-be/internal/dto"
	"freshsprout-be/internal/pkg/serverutils"
	"freshsprout-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type productController struct {
	productService service.IProductService
}

func NewProductController(productService service.IProductService) IProductController {
	return &productController{
		productService: productService,
	}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("", c.List)
	h.Get(":slug", c.Show)
}

func (c *productController) List(ctx *fiber.Ctx) error {
	var req dto.ListProductsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.List(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	res, err := c.productService.ShowBySlug(ctx.Context(), slug)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}
