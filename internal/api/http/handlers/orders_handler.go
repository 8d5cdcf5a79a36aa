package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// OrdersHandler serves the customer-facing order listing.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// Place POST /orders. Writes one pending order for the caller without going
// through the cart.
func (h *OrdersHandler) Place(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"reason": err.Error()})
	}
	if req.ProductID <= 0 {
		return apperrors.NewValidationError("product_id must be a positive integer", map[string]any{"product_id": req.ProductID})
	}

	deliveryDate := time.Now().UTC()
	if req.DeliveryDate != "" {
		parsed, err := time.Parse(domain.DeliveryDateLayout, req.DeliveryDate)
		if err != nil {
			return apperrors.NewValidationError("delivery_date must be YYYY-MM-DD", map[string]any{"delivery_date": req.DeliveryDate})
		}
		deliveryDate = parsed
	}

	order, err := h.orders.Place(c.Context(), principal.User.ID, req.ProductID, req.Quantity, deliveryDate)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PlaceOrderResponse{
		ID:           order.ID,
		ProductID:    order.ProductID,
		Quantity:     order.Quantity,
		DeliveryDate: order.DeliveryDate.Format(domain.DeliveryDateLayout),
		Status:       order.Status,
	})
}

// ListMine GET /orders.
func (h *OrdersHandler) ListMine(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	summaries, err := h.orders.ListForUser(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderSummaries(summaries)})
}

func parseOrderID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid order id", nil)
	}
	return id, nil
}

func orderSummaries(items []domain.OrderSummary) []dto.OrderSummaryResponse {
	resp := make([]dto.OrderSummaryResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.OrderSummaryResponse{
			ID:           item.ID,
			CustomerName: item.CustomerName,
			ProductName:  item.ProductName,
			UnitPrice:    item.UnitPrice,
			Quantity:     item.Quantity,
			DeliveryDate: item.DeliveryDate.Format(domain.DeliveryDateLayout),
			Status:       item.Status,
		})
	}
	return resp
}
