package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"musea/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("museum-visitor-42")
	require.NoError(t, err)
	assert.NotEqual(t, "museum-visitor-42", hash)

	assert.True(t, hasher.Check("museum-visitor-42", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	t.Parallel()

	// Out-of-range cost falls back to the bcrypt default.
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
