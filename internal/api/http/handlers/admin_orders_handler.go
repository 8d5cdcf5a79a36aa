package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// AdminOrdersHandler exposes the fulfillment and aggregate endpoints. Routes
// are mounted behind the admin role guard.
type AdminOrdersHandler struct {
	orders *service.OrderService
}

// NewAdminOrdersHandler constructs handler.
func NewAdminOrdersHandler(orders *service.OrderService) *AdminOrdersHandler {
	return &AdminOrdersHandler{orders: orders}
}

// List GET /admin/orders?status=.
func (h *AdminOrdersHandler) List(c *fiber.Ctx) error {
	var filter *domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		status := domain.OrderStatus(raw)
		filter = &status
	}

	summaries, err := h.orders.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderSummaries(summaries)})
}

// MarkDelivered POST /admin/orders/:id/deliver.
func (h *AdminOrdersHandler) MarkDelivered(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return err
	}

	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.orders.MarkDelivered(c.Context(), principal.User.ID, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "status": domain.OrderStatusDelivered}})
}

// Delete DELETE /admin/orders/:id.
func (h *AdminOrdersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseOrderID(c)
	if err != nil {
		return err
	}

	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.orders.Delete(c.Context(), principal.User.ID, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"id": id, "deleted": true}})
}

// Stats GET /admin/stats.
func (h *AdminOrdersHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.orders.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StatsResponse{
		Total:     stats.Total,
		Pending:   stats.Pending,
		Delivered: stats.Delivered,
	}})
}

// Revenue GET /admin/revenue.
func (h *AdminOrdersHandler) Revenue(c *fiber.Ctx) error {
	total, err := h.orders.Revenue(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.RevenueResponse{Total: total}})
}
