package handlers

import (
	"net/http"

	"bistro-boss-api/models"

	"github.com/gin-gonic/gin"
)

// AdminStats returns dashboard counts and total revenue (admin only).
// Nothing is cached; every call rescans payments.
func (h *Handler) AdminStats(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		stats models.AdminStats
		err   error
	)
	if stats.Users, err = h.Store.Users.Count(ctx); err != nil {
		h.storeError(c, "count users", err)
		return
	}
	if stats.Products, err = h.Store.Menu.Count(ctx); err != nil {
		h.storeError(c, "count menu", err)
		return
	}
	if stats.Orders, err = h.Store.Payments.Count(ctx); err != nil {
		h.storeError(c, "count payments", err)
		return
	}
	if stats.Revenue, err = h.Store.Payments.Revenue(ctx); err != nil {
		h.storeError(c, "sum revenue", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
