package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tourney-hub/internal/auth"
)

const identityKey = "caller_identity"

// requireAuth extracts the bearer credential from the Authorization header,
// verifies it, and attaches the decoded identity to the request context.
// Any extraction or verification failure aborts the request before the
// downstream handler runs.
func requireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, credential, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || credential == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
			return
		}

		identity, err := tokens.Verify(strings.TrimSpace(credential))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// callerIdentity returns the identity attached by requireAuth.
func callerIdentity(c *gin.Context) (auth.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
