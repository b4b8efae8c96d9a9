package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthoriz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ts := token.NewJwtService("test-secret", "vinom-identity")

	router := gin.New()
	router.GET("/protected", Authoriz(ts, ScopeMazeWrite), func(c *gin.Context) {
		claims, ok := c.Get(ContextUserClaims)
		assert.True(t, ok)
		assert.Equal(t, "editor", claims.(map[string]interface{})["sub"])
		c.Status(http.StatusNoContent)
	})

	mint := func(t *testing.T, claims map[string]interface{}) string {
		t.Helper()
		tok, err := ts.Generate(claims, time.Minute)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"invalid token", "Bearer abc", http.StatusUnauthorized},
		{"missing scope", "Bearer " + mint(t, map[string]interface{}{"sub": "editor", "scope": "maze:read"}), http.StatusForbidden},
		{"granted", "Bearer " + mint(t, map[string]interface{}{"sub": "editor", "scope": "maze:read maze:write"}), http.StatusNoContent},
		{"lower case scheme", "bearer " + mint(t, map[string]interface{}{"sub": "editor", "scope": "maze:write"}), http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
