package errorutil_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorutil "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := errorutil.NewValidationError("bad input", map[string]any{"field": "quantity"})

	mapped := errorutil.ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, "VALIDATION_FAILED", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, "quantity", mapped.Details["field"])
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	mapped := errorutil.ToDomainError(fmt.Errorf("lookup: %w", pgx.ErrNoRows))
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorMapsUniqueViolation(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	mapped := errorutil.ToDomainError(fmt.Errorf("insert: %w", cause))
	require.NotNil(t, mapped)
	assert.Equal(t, "CONFLICT", mapped.Code)
	assert.Equal(t, http.StatusConflict, mapped.HTTPStatus)
	assert.True(t, errorutil.IsUniqueViolation(mapped))
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	cause := errors.New("disk on fire")
	mapped := errorutil.ToDomainError(cause)
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.ErrorIs(t, mapped, cause)
}

func TestStoreUnavailableStatus(t *testing.T) {
	err := errorutil.NewStoreUnavailable(errors.New("dial tcp: refused"))
	mapped := errorutil.ToDomainError(err)
	assert.Equal(t, "STORE_UNAVAILABLE", mapped.Code)
	assert.Equal(t, http.StatusServiceUnavailable, mapped.HTTPStatus)
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, errorutil.ToDomainError(nil))
}
