package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/observability"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// OrderService covers direct order placement, fulfillment transitions and the
// aggregate views over the order ledger. Role enforcement happens at the route
// boundary; the service assumes an authorized caller.
type OrderService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, dispatcher events.Dispatcher, metrics *observability.Metrics) *OrderService {
	return &OrderService{orders: orders, products: products, dispatcher: dispatcher, metrics: metrics}
}

// Place writes one pending order directly, bypassing the cart. The caller
// supplies the delivery date; quantity and product reference are validated
// before the ledger write.
func (s *OrderService) Place(ctx context.Context, userID string, productID int64, quantity int, deliveryDate time.Time) (*domain.Order, error) {
	if quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be a positive integer", map[string]any{"quantity": quantity})
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("product", map[string]any{"product_id": productID})
		}
		return nil, err
	}

	order := &domain.Order{
		UserID:       userID,
		ProductID:    productID,
		Quantity:     quantity,
		DeliveryDate: truncateToDate(deliveryDate),
		Status:       domain.OrderStatusPending,
	}
	if err := s.orders.CreateBatch(ctx, []*domain.Order{order}); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}

	if s.metrics != nil {
		s.metrics.OrdersPlaced.Inc()
	}
	s.publish(ctx, userID, events.EventOrdersPlaced, events.OrdersPlacedPayload{
		OrderIDs:     []int64{order.ID},
		DeliveryDate: order.DeliveryDate.Format(domain.DeliveryDateLayout),
	})
	return order, nil
}

// MarkDelivered flips an order to delivered. Flipping an already-delivered
// order succeeds without effect.
func (s *OrderService) MarkDelivered(ctx context.Context, actorID string, orderID int64) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("order", map[string]any{"order_id": orderID})
		}
		return err
	}

	if err := s.orders.UpdateStatus(ctx, orderID, domain.OrderStatusDelivered); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("order", map[string]any{"order_id": orderID})
		}
		return err
	}

	if order.Status != domain.OrderStatusDelivered {
		if s.metrics != nil {
			s.metrics.OrdersDelivered.Inc()
		}
		s.publish(ctx, actorID, events.EventOrderDelivered, events.OrderDeliveredPayload{
			OrderID:        orderID,
			PreviousStatus: order.Status,
		})
	}
	return nil
}

// Delete removes an order regardless of status.
func (s *OrderService) Delete(ctx context.Context, actorID string, orderID int64) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("order", map[string]any{"order_id": orderID})
		}
		return err
	}

	if err := s.orders.Delete(ctx, orderID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("order", map[string]any{"order_id": orderID})
		}
		return err
	}

	if s.metrics != nil {
		s.metrics.OrdersDeleted.Inc()
	}
	s.publish(ctx, actorID, events.EventOrderDeleted, events.OrderDeletedPayload{
		OrderID: orderID,
		Status:  order.Status,
	})
	return nil
}

// List returns all orders joined with customer and product reference data,
// optionally filtered to a single status.
func (s *OrderService) List(ctx context.Context, status *domain.OrderStatus) ([]domain.OrderSummary, error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.NewValidationError("unknown status filter", map[string]any{"status": string(*status)})
	}
	return s.orders.ListJoined(ctx, status)
}

// ListForUser returns the caller's own orders.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]domain.OrderSummary, error) {
	return s.orders.ListByUser(ctx, userID)
}

// Stats returns the headline counters. Pending + Delivered == Total holds for
// any ledger state since the two statuses partition it.
func (s *OrderService) Stats(ctx context.Context) (domain.OrderStats, error) {
	return s.orders.Stats(ctx)
}

// Revenue sums quantity x unit price over delivered orders; zero when none.
func (s *OrderService) Revenue(ctx context.Context) (decimal.Decimal, error) {
	return s.orders.Revenue(ctx)
}

func (s *OrderService) publish(ctx context.Context, actorID string, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: timeNow(),
		Payload:   payload,
	})
}
