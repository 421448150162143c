package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateToken(42, models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken(7, models.RoleCustomer)
	require.NoError(t, err)

	SetSecret("a-different-secret")
	_, _, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	SetSecret("test-secret")

	_, _, err := ValidateToken("not.a.token")
	assert.Error(t, err)

	_, _, err = ValidateToken("")
	assert.Error(t, err)
}
