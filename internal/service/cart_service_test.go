package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

func testCatalog() *fakeProductRepo {
	return newFakeProductRepo(
		domain.Product{ID: 1, Name: "Torta Chocolinas", Price: decimal.NewFromInt(4500)},
		domain.Product{ID: 2, Name: "Cheesecake", Price: decimal.NewFromInt(5200)},
		domain.Product{ID: 3, Name: "Brownies", Price: decimal.NewFromInt(3000)},
	)
}

func TestCartAddMergesLines(t *testing.T) {
	store := newFakeCartStore()
	svc := service.NewCartService(store, testCatalog())
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", 1, 2)
	require.NoError(t, err)
	updated, err := svc.Add(ctx, "s1", 1, 3)
	require.NoError(t, err)

	require.Len(t, updated, 1)
	assert.Equal(t, domain.CartLine{ProductID: 1, Quantity: 5}, updated[0])
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	svc := service.NewCartService(newFakeCartStore(), testCatalog())

	for _, qty := range []int{0, -1, -10} {
		_, err := svc.Add(context.Background(), "s1", 1, qty)
		require.Error(t, err)
		var domainErr *apperrors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc := service.NewCartService(newFakeCartStore(), testCatalog())

	_, err := svc.Add(context.Background(), "s1", 99, 1)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestCartRemoveThenViewHasNoLine(t *testing.T) {
	store := newFakeCartStore()
	svc := service.NewCartService(store, testCatalog())
	ctx := context.Background()

	_, err := svc.Add(ctx, "s1", 1, 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "s1", 2, 1)
	require.NoError(t, err)

	_, err = svc.Remove(ctx, "s1", 1)
	require.NoError(t, err)
	_, err = svc.Remove(ctx, "s1", 1)
	require.NoError(t, err)

	current, err := svc.View(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, int64(2), current[0].ProductID)
}

func TestCartViewUninitializedIsEmpty(t *testing.T) {
	svc := service.NewCartService(newFakeCartStore(), testCatalog())

	current, err := svc.View(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestCartAddSurfacesStoreFailure(t *testing.T) {
	store := newFakeCartStore()
	store.getErr = errors.New("redis down")
	svc := service.NewCartService(store, testCatalog())

	_, err := svc.Add(context.Background(), "s1", 1, 1)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "STORE_UNAVAILABLE", domainErr.Code)
}

func TestCartsAreSessionScoped(t *testing.T) {
	store := newFakeCartStore()
	svc := service.NewCartService(store, testCatalog())
	ctx := context.Background()

	_, err := svc.Add(ctx, "alice", 1, 1)
	require.NoError(t, err)

	bobCart, err := svc.View(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, bobCart)
}
