package auth

import (
	"strings"
	"testing"

	"ondeta/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("abcdef")
	require.NoError(t, err)
	assert.NotEqual(t, "abcdef", hash)

	assert.True(t, hasher.Check("abcdef", hash))
	assert.False(t, hasher.Check("abcdeg", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}})

	hash, err := hasher.Hash("abcdef")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, newBcryptHasherWithCost(1).cost)
	assert.Equal(t, bcrypt.MaxCost, newBcryptHasherWithCost(99).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(nil).(*bcryptHasher).cost)
}

func TestBcryptHasher_LongPasswordsAreTruncated(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)
	password := strings.Repeat("a", 72) + "tail-one"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.True(t, hasher.Check(strings.Repeat("a", 72)+"tail-two", hash))
	assert.False(t, hasher.Check(strings.Repeat("a", 71), hash))
}
