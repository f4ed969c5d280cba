package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/brightlane-studio/portfolio-backend/internal/contact"
	imagesynchttp "github.com/brightlane-studio/portfolio-backend/internal/imagesync/http"
	imagesync "github.com/brightlane-studio/portfolio-backend/internal/imagesync/service"
	portfoliohttp "github.com/brightlane-studio/portfolio-backend/internal/portfolio/http"
	portfolio "github.com/brightlane-studio/portfolio-backend/internal/portfolio/service"
)

type Deps struct {
	Projects   *portfolio.ProjectService
	Reconciler *imagesync.Reconciler
	Contact    *contact.Handler
}

// Register mounts the public API at the router root.
func Register(r gin.IRouter, dep Deps) {
	portfoliohttp.New(dep.Projects).Register(r.Group("/portfolio"))
	imagesynchttp.New(dep.Reconciler).Register(r.Group("/google-drive-sync"))
	dep.Contact.Register(r.Group(""))
}
