package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *pgxpool.Pool and by the redis ping adapter.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db,omitempty"`
	Redis     string    `json:"redis,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	db          Pinger
	redis       Pinger
}

// NewHealthHandler builds the health endpoint. Either dependency may be nil,
// in which case it is reported as "disabled".
func NewHealthHandler(serviceName, version string, db, redis Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		redis:       redis,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	dbStatus := ping(ctx, h.db)
	redisStatus := ping(ctx, h.redis)

	status, code := "healthy", http.StatusOK
	if dbStatus == "down" {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	c.JSON(code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
		Redis:     redisStatus,
	})
}

func ping(ctx context.Context, p Pinger) string {
	if p == nil {
		return "disabled"
	}
	pingCtx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	if err := p.Ping(pingCtx); err != nil {
		return "down"
	}
	return "up"
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
