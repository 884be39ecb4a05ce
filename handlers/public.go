package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Root is the liveness probe.
func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "boss is sitting")
}

// Health pings the store.
func (h *Handler) Health(c *gin.Context) {
	if err := h.Store.Conn.Ping(c.Request.Context()); err != nil {
		h.Log.Error("health-check: store ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

// ListReviews returns every review (public).
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.Store.Reviews.List(c.Request.Context())
	if err != nil {
		h.storeError(c, "list reviews", err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
