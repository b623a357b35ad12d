package middleware

import (
	"context"
	"net/http"
	"strings"

	"AIChatbot_Backend/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ContextUser  = "user"
	ContextToken = "token"
)

type SessionResolver interface {
	ResolveUser(ctx context.Context, token string) (models.User, bool)
}

// TokenFromHeader accepts either a raw token or "Bearer <token>".
func TokenFromHeader(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// RequireSession aborts with 401 unless the request carries a live session.
// The response never says why the token was rejected.
func RequireSession(sessions SessionResolver, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromHeader(c)
		user, ok := sessions.ResolveUser(c.Request.Context(), token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authentication required",
				"message": message,
			})
			return
		}
		c.Set(ContextUser, user)
		c.Set(ContextToken, token)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
