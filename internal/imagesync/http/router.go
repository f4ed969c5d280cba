package http

import "github.com/gin-gonic/gin"

// Register attaches image sync routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.sync)
	rg.GET("/last", h.last)
	rg.GET("/history", h.history)
	rg.POST("/projects/:id", h.setImage)
}
