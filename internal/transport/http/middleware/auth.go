package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key the resolved caller ID is stored under.
const ContextUserID = "userID"

type tokenVerifier interface {
	Verify(raw string) (string, error)
}

// Auth guards protected routes: it expects "Authorization: <scheme> <token>",
// verifies the token, and stores the subject ID in the gin context.
//
// The scheme word is intentionally not checked against "Bearer" — existing
// clients send all sorts of first words and the deployed behavior accepts
// them, so tightening it here would break them.
func Auth(tokens tokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) < 2 || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token format"})
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token invalid or expired"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
