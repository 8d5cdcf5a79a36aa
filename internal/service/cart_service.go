package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/cart"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/repository"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

// CartService mutates session-scoped cart state. It never touches the order
// ledger; the only durable-store access is the catalog existence check on add.
type CartService struct {
	store    cart.Store
	products repository.ProductRepository
}

// NewCartService builds the service.
func NewCartService(store cart.Store, products repository.ProductRepository) *CartService {
	return &CartService{store: store, products: products}
}

// Add merges quantity into the session cart. Quantity must be a strictly
// positive integer; anything else is rejected rather than coerced.
func (s *CartService) Add(ctx context.Context, sessionID string, productID int64, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return nil, apperrors.NewValidationError("quantity must be a positive integer", map[string]any{"quantity": quantity})
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("product", map[string]any{"product_id": productID})
		}
		return nil, err
	}

	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}

	updated := current.Merge(productID, quantity)
	if err := s.store.Save(ctx, sessionID, updated); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return updated, nil
}

// Remove drops every line for the product; absent products are a no-op.
func (s *CartService) Remove(ctx context.Context, sessionID string, productID int64) (domain.Cart, error) {
	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	if current.IsEmpty() {
		return domain.Cart{}, nil
	}

	updated := current.Remove(productID)
	if err := s.store.Save(ctx, sessionID, updated); err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return updated, nil
}

// View returns the ordered line sequence; an uninitialized cart is empty.
func (s *CartService) View(ctx context.Context, sessionID string) (domain.Cart, error) {
	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.NewStoreUnavailable(err)
	}
	return current, nil
}
