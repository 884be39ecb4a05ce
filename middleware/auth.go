package middleware

import (
	"errors"
	"net/http"
	"strings"

	"bistro-boss-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ctxEmail = "email"

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": true, "message": msg})
}

// AuthRequired validates the bearer token and injects the identity into the
// context. Every failure gets the same 401.
func AuthRequired(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abort(c, http.StatusUnauthorized, "unauthorized access")
			return
		}
		id, err := tokens.Verify(strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")))
		if err != nil {
			abort(c, http.StatusUnauthorized, "unauthorized access")
			return
		}
		c.Set(ctxEmail, id.Email)
		c.Next()
	}
}

// AdminRequired must run after AuthRequired. It trusts whatever role is
// stored on the user document.
func AdminRequired(users store.UserStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByEmail(c.Request.Context(), GetEmail(c))
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("admin check: user lookup failed", zap.Error(err))
			abort(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if !user.IsAdmin() {
			abort(c, http.StatusForbidden, "forbidden message")
			return
		}
		c.Next()
	}
}

// GetEmail returns the verified caller email, or "" on unauthenticated routes.
func GetEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}
