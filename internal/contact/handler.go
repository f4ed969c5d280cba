package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightlane-studio/portfolio-backend/internal/platform/logger"
)

// Handler serves the contact form endpoint.
type Handler struct {
	relay   *Relay
	limiter *IPRateLimiter
}

// NewHandler wires the relay; a nil limiter disables rate limiting.
func NewHandler(relay *Relay, limiter *IPRateLimiter) *Handler {
	return &Handler{relay: relay, limiter: limiter}
}

// Register attaches the contact route to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	if h.limiter != nil {
		rg.POST("/send-contact", h.limiter.Middleware(), h.send)
		return
	}
	rg.POST("/send-contact", h.send)
}

func (h *Handler) send(c *gin.Context) {
	var msg Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := h.relay.Send(c.Request.Context(), msg); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) fail(c *gin.Context, err error) {
	var verr *ValidationError
	var uerr *UpstreamError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "missing": verr.Fields})
	case errors.Is(err, ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	case errors.As(err, &uerr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send email", "details": uerr.Body})
	default:
		logger.For(c.Request.Context(), "contact.send").Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send email"})
	}
}
