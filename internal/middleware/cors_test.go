package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gumutoni/tasktidy/internal/middleware"
)

func newCORSRouter(allowlist []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CORS(allowlist))
	engine.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return engine
}

func TestCORSAllowsListedOrigin(t *testing.T) {
	engine := newCORSRouter([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "http://localhost:3000", resp.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", resp.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSIgnoresUnlistedOrigin(t *testing.T) {
	engine := newCORSRouter([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	engine := newCORSRouter([]string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
}

func TestCORSTrailingSlashOriginMatches(t *testing.T) {
	engine := newCORSRouter([]string{"https://tasktidy.example.com/"})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://tasktidy.example.com")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	require.Equal(t, "https://tasktidy.example.com", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSEmptyAllowlistAllowsAll(t *testing.T) {
	engine := newCORSRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://anywhere.example.com")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	require.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
}
