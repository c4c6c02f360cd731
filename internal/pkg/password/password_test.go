package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	defer SetCost(SetCost(bcrypt.MinCost))

	hash, err := Hash("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)
	assert.True(t, Verify("secreto123", hash))
	assert.False(t, Verify("otro", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.False(t, ValidatePassword("1234567"))
	assert.True(t, ValidatePassword("12345678"))
}
