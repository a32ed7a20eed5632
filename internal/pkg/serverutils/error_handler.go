package serverutils

import (
	"errors"

	"freshsprout-be/pkg/cart"
	"freshsprout-be/pkg/gift"
	"freshsprout-be/pkg/replacement"
	"freshsprout-be/pkg/schedule"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors to HTTP responses so controllers
// can return them directly. Window/cap rejections get distinct messages the
// storefront shows verbatim.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		case errors.Is(err, replacement.ErrWindowClosed):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(fiber.StatusUnprocessableEntity, "The Fresh Swap window for this week has closed"))
		case errors.Is(err, replacement.ErrCapExceeded):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(fiber.StatusUnprocessableEntity, "Monthly replacement limit reached"))
		case errors.Is(err, schedule.ErrOrderWindowClosed):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(fiber.StatusUnprocessableEntity, "Ordering is closed for this week's delivery"))
		case errors.Is(err, cart.ErrEmptyCart):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, "Cart is empty"))
		case errors.Is(err, gift.ErrCustomIncomplete):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, "Custom center requires a name and address"))
		case errors.Is(err, gift.ErrNoActiveCenter):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(fiber.StatusUnprocessableEntity, "No senior center is available in your region"))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
		}
	}
}
