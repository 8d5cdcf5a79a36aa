package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/storefront-service/internal/auth"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", hash)

	assert.NoError(t, auth.ComparePassword(hash, "hunter2"))
	assert.Error(t, auth.ComparePassword(hash, "wrong"))
}
