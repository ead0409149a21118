package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasherCostRange(t *testing.T) {
	_, err := NewPasswordHasher(bcrypt.MinCost - 1)
	assert.Error(t, err)
	_, err = NewPasswordHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)

	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, h.Cost())
}

func TestHashAndCompare(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	hash, err := h.Hash("pw123")
	require.NoError(t, err)
	assert.NotContains(t, string(hash), "pw123")

	cost, err := bcrypt.Cost(hash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, h.Compare(hash, "pw123"))
	assert.False(t, h.Compare(hash, "pw124"))
	assert.False(t, h.Compare(hash, ""))
	assert.False(t, h.Compare([]byte("not-a-hash"), "pw123"))
}

func TestHashUsesFreshSalt(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.True(t, h.Compare(a, "same"))
	assert.True(t, h.Compare(b, "same"))
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)

	_, err = h.Hash(strings.Repeat("a", maxPasswordBytes+1))
	assert.Error(t, err)
}

func TestCompareDummyNeverMatches(t *testing.T) {
	h, err := NewPasswordHasher(bcrypt.MinCost)
	require.NoError(t, err)
	assert.False(t, h.CompareDummy("kanizsa-users/dummy-password"))
}
