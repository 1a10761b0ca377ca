package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	hash, err := Hash("password")
	require.NoError(t, err)
	assert.NotEqual(t, "password", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)
}

func TestHash_Salted(t *testing.T) {
	first, err := Hash("password")
	require.NoError(t, err)
	second, err := Hash("password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHash_Length(t *testing.T) {
	_, err := Hash("short")
	assert.ErrorIs(t, err, ErrTooShort)

	_, err = Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrTooLong)

	_, err = Hash(strings.Repeat("a", 72))
	assert.NoError(t, err)
}

func TestCompare(t *testing.T) {
	hash, err := Hash("password")
	require.NoError(t, err)

	assert.NoError(t, Compare(hash, "password"))
	assert.ErrorIs(t, Compare(hash, "wrong"), ErrMismatch)
	assert.Error(t, Compare("not-a-bcrypt-hash", "password"))
}
