package service_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/service"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	nextID    int
	byID      map[string]*domain.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byID: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = strconv.Itoa(r.nextID)
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.byID[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.byID[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func testAuthConfig() config.Config {
	return config.Config{Auth: config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
	}}
}

func TestRegisterIssuesCustomerToken(t *testing.T) {
	svc := service.NewAuthService(testAuthConfig(), newFakeUserRepo())

	user, token, exp, err := svc.Register(context.Background(), "Ana", "ana@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := service.NewAuthService(testAuthConfig(), newFakeUserRepo())
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "Ana", "ana@example.com", "hunter2")
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, "Other", "ana@example.com", "secret")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestRegisterConcurrentDuplicateEmail(t *testing.T) {
	// The email lookup can pass for two racing registrations; the unique
	// index rejects the loser and the service reports a conflict.
	repo := newFakeUserRepo()
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	svc := service.NewAuthService(testAuthConfig(), repo)

	_, _, _, err := svc.Register(context.Background(), "Ana", "ana@example.com", "hunter2")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc := service.NewAuthService(testAuthConfig(), newFakeUserRepo())

	_, _, _, err := svc.Register(context.Background(), "", "ana@example.com", "pw")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := service.NewAuthService(testAuthConfig(), newFakeUserRepo())
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "Ana", "ana@example.com", "hunter2")
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "ana@example.com", "wrong")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := service.NewAuthService(testAuthConfig(), newFakeUserRepo())

	_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "pw")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestLoginRoundTrip(t *testing.T) {
	svc := service.NewAuthService(testAuthConfig(), newFakeUserRepo())
	ctx := context.Background()

	registered, _, _, err := svc.Register(ctx, "Ana", "ana@example.com", "hunter2")
	require.NoError(t, err)

	user, token, _, err := svc.Login(ctx, "ana@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}
