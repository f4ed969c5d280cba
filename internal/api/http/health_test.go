package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func healthCheck(t *testing.T, h *HealthHandler) (int, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHealthCheck_NoDependencies(t *testing.T) {
	code, resp := healthCheck(t, NewHealthHandler("portfolio", "1.2.3", nil, nil))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.2.3", resp.Version)
	assert.Equal(t, "disabled", resp.DB)
	assert.Equal(t, "disabled", resp.Redis)
}

func TestHealthCheck_DatabaseDown(t *testing.T) {
	db := pingFunc(func(context.Context) error { return errors.New("connection refused") })
	redis := pingFunc(func(context.Context) error { return nil })

	code, resp := healthCheck(t, NewHealthHandler("portfolio", "1.2.3", db, redis))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "down", resp.DB)
	assert.Equal(t, "up", resp.Redis)
}
