package http

import "github.com/brightlane-studio/portfolio-backend/internal/portfolio/service"

// Handler bundles the dependencies for portfolio HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}
