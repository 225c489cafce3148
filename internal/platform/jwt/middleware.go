package jwtmw

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain/entity"
)

// ContextUser is the gin context key holding the *entity.AuthorizedUser.
const ContextUser = "authUser"

// Identify returns a Gin middleware that extracts a bearer token from the
// Authorization header and, if it verifies, attaches the authorized user to
// the request context. A missing or rejected token is not an error: the
// request simply continues unauthenticated and downstream handlers decide
// whether to reject it.
func Identify(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.Next()
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and expiry
		claims, err := v.Verify(tokenStr)
		if err != nil {
			// Logged for diagnosis, never surfaced to the caller
			slog.Warn("bearer token rejected", "error", err, "remote_addr", c.ClientIP())
			c.Next()
			return
		}

		// 3. Attach the verified projection to the context
		c.Set(ContextUser, &entity.AuthorizedUser{
			ID:       claims.Subject,
			UserName: claims.UserName,
			Email:    claims.Email,
		})
		c.Next()
	}
}

// RequireUser returns a Gin middleware that restricts access to requests
// carrying an authorized user set by Identify.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// UserFrom retrieves the authorized user attached by Identify, if any.
func UserFrom(c *gin.Context) (*entity.AuthorizedUser, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.AuthorizedUser)
	return user, ok
}
