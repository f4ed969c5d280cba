package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	httpapi "github.com/brightlane-studio/portfolio-backend/internal/api/http"
	"github.com/brightlane-studio/portfolio-backend/internal/api/http/middleware"
	"github.com/brightlane-studio/portfolio-backend/internal/api/http/routes"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	// TrustedProxies may set X-Forwarded-For; nil means the peer address is the client IP.
	TrustedProxies []string
	DB             httpapi.Pinger
	Redis          httpapi.Pinger
	Routes         routes.Deps
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		log.Warn().Err(err).Msg("invalid trusted proxies, trusting none")
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	routes.Register(r, dep.Routes)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
