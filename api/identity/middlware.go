package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUserClaims is the key used to store user claims in the Gin context.
	ContextUserClaims = "userClaims"

	// ScopeMazeWrite grants every maze mutation.
	ScopeMazeWrite = "maze:write"

	scopeClaim = "scope"
)

// Authoriz rejects requests without a valid bearer token carrying the
// required scope in its space separated "scope" claim.
func Authoriz(ts i.Tokenizer, requiredScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if !hasScope(claims, requiredScope) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

func hasScope(claims map[string]interface{}, scope string) bool {
	if scope == "" {
		return true
	}
	granted, _ := claims[scopeClaim].(string)
	for _, s := range strings.Fields(granted) {
		if s == scope {
			return true
		}
	}
	return false
}
