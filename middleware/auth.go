package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Rightupnext/South-mirror-backend/utils"
)

const AccessTokenCookie = "access_token"

const claimsKey = "claims"

// Authenticate is the auth gate: it pulls the signed token from the
// access_token cookie, rejects revoked tokens, verifies signature and expiry
// and attaches the decoded claims to the request context. It fails closed
// with 403 on every path.
func Authenticate(secret string, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AccessTokenCookie)
		if err != nil || token == "" {
			utils.Fail(c, http.StatusForbidden, "Unauthorized")
			return
		}

		// Logout puts tokens on the blacklist until they expire. Revocation
		// is best-effort: without Redis the check is skipped.
		if rdb != nil {
			if _, err := rdb.Get(c.Request.Context(), "blacklist:"+token).Result(); err == nil {
				utils.Fail(c, http.StatusForbidden, "Token has been revoked")
				return
			}
		}

		claims, err := utils.ParseJWT(token, secret)
		if err != nil {
			utils.Fail(c, http.StatusForbidden, "Unauthorized")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// OnlyAdmin rejects any request whose claims do not carry the admin role.
// It must run after Authenticate.
func OnlyAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || claims.Role != "admin" {
			utils.Fail(c, http.StatusForbidden, "Unauthorized")
			return
		}
		c.Next()
	}
}

// GetClaims returns the claims set by Authenticate, or nil on public routes.
func GetClaims(c *gin.Context) *utils.AuthClaims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*utils.AuthClaims)
	return claims
}
