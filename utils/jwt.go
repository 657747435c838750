package utils

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/Rightupnext/South-mirror-backend/models"
)

// AuthClaims is the payload carried by the access_token cookie.
type AuthClaims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

var ErrInvalidToken = errors.New("invalid or expired token")

func GenerateJWT(user models.User, secret string) (string, error) {
	claims := AuthClaims{
		UserID: user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.Email,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(72 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT verifies signature and expiry and returns the decoded claims. It
// is a pure function of the token string and the secret so the auth gate can
// be tested without an HTTP harness.
func ParseJWT(tokenStr, secret string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
