package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/airhart/airport-api/internal/model"
)

func TestTokenRoundtrip(t *testing.T) {
	tokens := NewTokenManager("test-secret")

	token, err := tokens.Generate(42, model.RoleStaff)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.RoleStaff, claims.Role)
}

func TestParseRejectsGarbage(t *testing.T) {
	tokens := NewTokenManager("test-secret")

	_, err := tokens.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Generate(1, model.RoleUser)
	assert.NoError(t, err)

	_, err = NewTokenManager("secret-b").Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
