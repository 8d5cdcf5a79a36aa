package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/dto"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// PaymentsHandler fronts the always-approve payment stub.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// Pay POST /payments.
func (h *PaymentsHandler) Pay(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	receipt, err := h.payments.Authorize(c.Context(), principal.User.ID, service.PaymentCard{
		HolderName: req.HolderName,
		Number:     req.Number,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PaymentResponse{
		Reference: receipt.Reference,
		Approved:  receipt.Approved,
	}})
}
