package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/cart"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// PaymentCard is the collected card form. Nothing here is stored or charged.
type PaymentCard struct {
	HolderName string
	Number     string
	Expiry     string
	CVV        string
}

// PaymentReceipt confirms an approved (stubbed) payment.
type PaymentReceipt struct {
	Reference string
	Approved  bool
}

// PaymentService is an always-approve stub with no settlement semantics. It
// validates that the form is complete, hands back a reference, and resets the
// session cart so a paid-for cart cannot be checked out again.
type PaymentService struct {
	store  cart.Store
	logger *zap.Logger
}

// NewPaymentService builds the stub.
func NewPaymentService(store cart.Store, logger *zap.Logger) *PaymentService {
	return &PaymentService{store: store, logger: logger}
}

// Authorize approves every complete payment form and clears the caller's cart.
func (s *PaymentService) Authorize(ctx context.Context, userID string, card PaymentCard) (*PaymentReceipt, error) {
	if strings.TrimSpace(card.HolderName) == "" ||
		strings.TrimSpace(card.Number) == "" ||
		strings.TrimSpace(card.Expiry) == "" ||
		strings.TrimSpace(card.CVV) == "" {
		return nil, apperrors.NewValidationError("all payment fields are required", nil)
	}

	receipt := &PaymentReceipt{
		Reference: uuid.NewString(),
		Approved:  true,
	}
	// Cart reset failure does not void the approval.
	if err := s.store.Clear(ctx, userID); err != nil {
		s.logger.Warn("failed to clear cart after payment",
			zap.String("user_id", userID),
			zap.Error(err))
	}
	s.logger.Info("payment approved (stub)",
		zap.String("user_id", userID),
		zap.String("reference", receipt.Reference))
	return receipt, nil
}
