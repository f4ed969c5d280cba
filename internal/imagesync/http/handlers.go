package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brightlane-studio/portfolio-backend/internal/imagesync/domain"
	"github.com/brightlane-studio/portfolio-backend/internal/platform/logger"
	portfolio "github.com/brightlane-studio/portfolio-backend/internal/portfolio/domain"
)

func (h *Handler) sync(c *gin.Context) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body"})
		return
	}

	report, err := h.rec.Reconcile(c.Request.Context(),
		strings.TrimSpace(req.APIKey), strings.TrimSpace(req.FolderID))
	if err != nil {
		h.fail(c, "imagesync.sync", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) setImage(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req setImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body"})
		return
	}

	p, err := h.rec.SetImage(c.Request.Context(), id, strings.TrimSpace(req.FileID))
	if err != nil {
		h.fail(c, "imagesync.set_image", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

func (h *Handler) last(c *gin.Context) {
	report, err := h.rec.LastReport(c.Request.Context())
	if err != nil {
		h.fail(c, "imagesync.last", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

const defaultHistoryLimit = 10

func (h *Handler) history(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit <= 0 {
		limit = defaultHistoryLimit
	}

	reports, err := h.rec.History(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, "imagesync.history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *Handler) fail(c *gin.Context, operation string, err error) {
	var uerr *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrMissingParams), errors.Is(err, domain.ErrMissingFileID),
		errors.Is(err, domain.ErrBadFolderID):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, domain.ErrNoReport):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, portfolio.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "project not found"})
	case errors.As(err, &uerr):
		logger.For(c.Request.Context(), operation).Warn().Int("upstream_status", uerr.Status).Msg("image source rejected request")
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": uerr.Error(), "details": uerr.Body})
	default:
		logger.For(c.Request.Context(), operation).Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}
