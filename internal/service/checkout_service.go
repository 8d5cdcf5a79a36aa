package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/cart"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/observability"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// CheckoutResult summarizes a checkout attempt. CartEmpty is a legitimate
// outcome, not an error.
type CheckoutResult struct {
	CartEmpty    bool
	OrderIDs     []int64
	DeliveryDate time.Time
}

// CheckoutService converts a session cart into ledger orders. The conversion
// is all-or-nothing: order rows commit in one transaction and the cart is
// cleared only after the commit succeeds, so a failed checkout leaves the
// cart intact for retry.
type CheckoutService struct {
	store      cart.Store
	locker     cart.Locker
	orders     repository.OrderRepository
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewCheckoutService builds the coordinator.
func NewCheckoutService(
	store cart.Store,
	locker cart.Locker,
	orders repository.OrderRepository,
	dispatcher events.Dispatcher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		store:      store,
		locker:     locker,
		orders:     orders,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// Checkout drains the session cart into the order ledger. Concurrent calls
// for the same session are serialized; the loser observes either the pre- or
// post-checkout cart.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	release, err := s.locker.Acquire(ctx, sessionID)
	if err != nil {
		if err == cart.ErrLocked {
			return nil, apperrors.NewConflict("checkout already in progress", nil)
		}
		return nil, apperrors.NewStoreUnavailable(err)
	}
	defer release()

	start := s.now()

	lines, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if lines.IsEmpty() {
		return &CheckoutResult{CartEmpty: true}, nil
	}

	// One delivery date for every line: today, date precision only.
	deliveryDate := truncateToDate(s.now())

	orders := make([]*domain.Order, 0, len(lines))
	for _, line := range lines {
		orders = append(orders, &domain.Order{
			UserID:       sessionID,
			ProductID:    line.ProductID,
			Quantity:     line.Quantity,
			DeliveryDate: deliveryDate,
			Status:       domain.OrderStatusPending,
		})
	}

	if err := s.orders.CreateBatch(ctx, orders); err != nil {
		// The transaction rolled back; nothing was persisted and the cart
		// is untouched.
		return nil, apperrors.NewStoreUnavailable(err)
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		// Orders are durable at this point. A stale cart is recoverable by
		// the session's next mutation, so log instead of failing the checkout.
		s.logger.Warn("failed to clear cart after checkout",
			zap.String("session_id", sessionID), zap.Error(err))
	}

	orderIDs := make([]int64, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}

	if s.metrics != nil {
		s.metrics.OrdersPlaced.Add(float64(len(orderIDs)))
		s.metrics.CheckoutDuration.Observe(float64(s.now().Sub(start).Milliseconds()))
	}
	s.publish(ctx, sessionID, orderIDs, deliveryDate)

	return &CheckoutResult{OrderIDs: orderIDs, DeliveryDate: deliveryDate}, nil
}

func (s *CheckoutService) publish(ctx context.Context, sessionID string, orderIDs []int64, deliveryDate time.Time) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOrdersPlaced,
		ActorID:   sessionID,
		Timestamp: s.now(),
		Payload: events.OrdersPlacedPayload{
			OrderIDs:     orderIDs,
			DeliveryDate: deliveryDate.Format(domain.DeliveryDateLayout),
		},
	})
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
