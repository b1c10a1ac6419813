package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/baherjr/OODB-Project/internal/config"
)

func rateContext(method, path, remote string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remote
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(path)
	return c
}

func TestRateKeyBucketsByIPAndRoute(t *testing.T) {
	t.Parallel()
	cfg := config.RateLimitConfig{Prefix: "rl"}

	a := rateKey(cfg, rateContext(http.MethodGet, "/api/vehicles", "10.0.0.1:1234"))
	assert.Equal(t, "rl:10.0.0.1:GET /api/vehicles", a)

	// Same client, different route: separate buckets.
	b := rateKey(cfg, rateContext(http.MethodGet, "/api/parts", "10.0.0.1:1234"))
	assert.NotEqual(t, a, b)

	// Different clients on one route: separate buckets.
	c := rateKey(cfg, rateContext(http.MethodGet, "/api/vehicles", "10.0.0.2:1234"))
	assert.NotEqual(t, a, c)

	// Ports never leak into the key; only the IP does.
	d := rateKey(cfg, rateContext(http.MethodGet, "/api/vehicles", "10.0.0.1:9999"))
	assert.Equal(t, a, d)
}
