package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"travelog/pkg/utils"
)

func corsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &utils.Config{
		CORSAllowedOrigins: []string{"http://localhost:4200"},
	}
	r := gin.New()
	r.Use(CORSMiddleware(cfg))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func corsRequest(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCORSAllowsConfiguredAndLocalOrigins(t *testing.T) {
	r := corsRouter()

	for _, origin := range []string{
		"http://localhost:4200",
		"http://192.168.1.40:8080",
		"http://10.0.0.5",
		"https://demo.trycloudflare.com",
	} {
		w := corsRequest(r, http.MethodGet, origin)
		assert.Equal(t, origin, w.Header().Get("Access-Control-Allow-Origin"), origin)
	}
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	r := corsRouter()

	w := corsRequest(r, http.MethodGet, "https://evil.example.com")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := corsRouter()

	w := corsRequest(r, http.MethodOptions, "http://localhost:4200")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:4200", w.Header().Get("Access-Control-Allow-Origin"))
}
