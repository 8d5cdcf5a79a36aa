package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// CartHandler manages the session cart endpoints.
type CartHandler struct {
	carts    *service.CartService
	checkout *service.CheckoutService
}

// NewCartHandler constructs handler.
func NewCartHandler(carts *service.CartService, checkout *service.CheckoutService) *CartHandler {
	return &CartHandler{carts: carts, checkout: checkout}
}

// AddItem POST /cart/items.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ProductID <= 0 {
		return apperrors.NewValidationError("product_id required", nil)
	}

	updated, err := h.carts.Add(c.Context(), principal.SessionID(), req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": cartLines(updated)})
}

// RemoveItem DELETE /cart/items/:product_id.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	productID, err := strconv.ParseInt(c.Params("product_id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid product_id", nil)
	}

	updated, err := h.carts.Remove(c.Context(), principal.SessionID(), productID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": cartLines(updated)})
}

// View GET /cart.
func (h *CartHandler) View(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	current, err := h.carts.View(c.Context(), principal.SessionID())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": cartLines(current)})
}

// Checkout POST /checkout.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	result, err := h.checkout.Checkout(c.Context(), principal.SessionID())
	if err != nil {
		return err
	}

	resp := dto.CheckoutResponse{CartEmpty: result.CartEmpty}
	if !result.CartEmpty {
		resp.OrdersPlaced = len(result.OrderIDs)
		resp.OrderIDs = result.OrderIDs
		resp.DeliveryDate = result.DeliveryDate.Format(domain.DeliveryDateLayout)
	}
	return c.JSON(fiber.Map{"data": resp})
}

func cartLines(c domain.Cart) []dto.CartLineResponse {
	lines := make([]dto.CartLineResponse, 0, len(c))
	for _, line := range c {
		lines = append(lines, dto.CartLineResponse{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	return lines
}
