package middleware

import (
	"net/http"
	"strings"

	"jobboard/internal/response"
	"jobboard/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserIDKey is the gin context key under which the authenticated user id
// is stored once the bearer token has been validated.
const UserIDKey = "user_id"

// Auth creates a Gin middleware that validates the bearer token before any
// protected handler runs. Every failure mode aborts with the same 401 body;
// the cause is logged, never returned.
func Auth(tokens *token.Manager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c)
			return
		}

		claims, err := tokens.Decode(parts[1])
		if err != nil {
			logger.Warn("Rejected bearer token", zap.Error(err))
			abortUnauthorized(c)
			return
		}

		// A refresh token is not a ticket into protected routes.
		if claims.TokenType != token.KindAccess {
			abortUnauthorized(c)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			logger.Warn("Rejected token with malformed subject", zap.String("sub", claims.Sub))
			abortUnauthorized(c)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID reads the authenticated user id set by Auth. The bool is false
// when the middleware did not run on this route.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func abortUnauthorized(c *gin.Context) {
	response.AbortError(c, http.StatusUnauthorized, "Invalid credentials")
}
