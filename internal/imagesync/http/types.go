package http

import "github.com/brightlane-studio/portfolio-backend/internal/imagesync/service"

// Handler bundles the dependencies for image sync endpoints.
type Handler struct {
	rec *service.Reconciler
}

func New(rec *service.Reconciler) *Handler {
	return &Handler{rec: rec}
}

type syncReq struct {
	APIKey   string `json:"apiKey"`
	FolderID string `json:"folderId"`
}

type setImageReq struct {
	FileID string `json:"fileId"`
}
