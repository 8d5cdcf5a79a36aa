package service_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// fakeCartStore is an in-memory cart.Store.
type fakeCartStore struct {
	mu     sync.Mutex
	carts  map[string]domain.Cart
	getErr error
	setErr error
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[string]domain.Cart{}}
}

func (s *fakeCartStore) Get(_ context.Context, sessionID string) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	return append(domain.Cart{}, s.carts[sessionID]...), nil
}

func (s *fakeCartStore) Save(_ context.Context, sessionID string, c domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.carts[sessionID] = append(domain.Cart{}, c...)
	return nil
}

func (s *fakeCartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// fakeLocker is a cart.Locker that always grants (or always fails).
type fakeLocker struct {
	acquireErr error
	acquired   int
	released   int
}

func (l *fakeLocker) Acquire(_ context.Context, _ string) (func(), error) {
	if l.acquireErr != nil {
		return nil, l.acquireErr
	}
	l.acquired++
	return func() { l.released++ }, nil
}

// fakeProductRepo is an in-memory repository.ProductRepository.
type fakeProductRepo struct {
	products map[int64]domain.Product
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[int64]domain.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

// fakeOrderRepo is an in-memory repository.OrderRepository honoring the
// all-or-nothing CreateBatch contract.
type fakeOrderRepo struct {
	mu        sync.Mutex
	nextID    int64
	orders    []*domain.Order
	products  map[int64]domain.Product
	createErr error
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1, products: products.products}
}

func (r *fakeOrderRepo) CreateBatch(_ context.Context, orders []*domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, order := range orders {
		order.ID = r.nextID
		r.nextID++
		stored := *order
		r.orders = append(r.orders, &stored)
	}
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.ID == id {
			copied := *order
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.ID == id {
			order.Status = status
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, order := range r.orders {
		if order.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeOrderRepo) ListJoined(_ context.Context, status *domain.OrderStatus) ([]domain.OrderSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.OrderSummary
	for _, order := range r.orders {
		if status != nil && order.Status != *status {
			continue
		}
		out = append(out, r.summarize(order))
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.OrderSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.OrderSummary
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, r.summarize(order))
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Stats(_ context.Context) (domain.OrderStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := domain.OrderStats{Total: int64(len(r.orders))}
	for _, order := range r.orders {
		switch order.Status {
		case domain.OrderStatusPending:
			stats.Pending++
		case domain.OrderStatusDelivered:
			stats.Delivered++
		}
	}
	return stats, nil
}

func (r *fakeOrderRepo) Revenue(_ context.Context) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, order := range r.orders {
		if order.Status != domain.OrderStatusDelivered {
			continue
		}
		price := r.products[order.ProductID].Price
		total = total.Add(price.Mul(decimal.NewFromInt(int64(order.Quantity))))
	}
	return total, nil
}

func (r *fakeOrderRepo) summarize(order *domain.Order) domain.OrderSummary {
	product := r.products[order.ProductID]
	return domain.OrderSummary{
		ID:           order.ID,
		CustomerName: fmt.Sprintf("user-%s", order.UserID),
		ProductName:  product.Name,
		UnitPrice:    product.Price,
		Quantity:     order.Quantity,
		DeliveryDate: order.DeliveryDate,
		Status:       order.Status,
	}
}
