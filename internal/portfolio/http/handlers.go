package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brightlane-studio/portfolio-backend/internal/platform/logger"
	"github.com/brightlane-studio/portfolio-backend/internal/portfolio/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "portfolio.list", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "portfolio.get", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var req domain.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "portfolio.create", err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req domain.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, "portfolio.update", err)
		return
	}
	// A nonexistent id is reported as a null body, not an error.
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, "portfolio.delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) fail(c *gin.Context, operation string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "missing": verr.Fields})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	default:
		logger.For(c.Request.Context(), operation).Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
