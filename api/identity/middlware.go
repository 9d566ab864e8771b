package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextClaims is the key used to store token claims in the Gin context.
	ContextClaims = "claims"
)

func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// BoardScope lets a request through only when the board named by the path
// parameter is the one the bearer's token was issued for. It must run after
// Authoriz.
func BoardScope(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param(param))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid board id"})
			return
		}

		raw, _ := c.Get(ContextClaims)
		claims, _ := raw.(map[string]any)
		claimed, _ := claims[i.ClaimBoardID].(string)
		scope, err := uuid.Parse(claimed)
		if err != nil || scope != id {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}
