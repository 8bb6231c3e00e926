package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "rahasia-123"))
	assert.Error(t, CheckPasswordHash(hash, "salah"))
}
