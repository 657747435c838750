package utils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"

	"github.com/Rightupnext/South-mirror-backend/models"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := models.User{
		ID:     42,
		Name:   "Alice",
		Email:  "alice@example.com",
		Avatar: "https://media.example.com/avatars/a.jpg",
		Role:   "admin",
	}

	token, err := GenerateJWT(user, "secret")
	assert.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "alice@example.com", claims.Subject)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(models.User{ID: 1}, "secret")
	assert.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTExpired(t *testing.T) {
	claims := AuthClaims{
		UserID: 1,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
