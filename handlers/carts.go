package handlers

import (
	"net/http"

	"bistro-boss-api/middleware"
	"bistro-boss-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListCart returns the caller's cart. Without an email query it answers []
// without touching the store; another user's email is forbidden.
func (h *Handler) ListCart(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.CartEntry{})
		return
	}
	if email != middleware.GetEmail(c) {
		errorJSON(c, http.StatusForbidden, "forbidden access")
		return
	}
	entries, err := h.Store.Carts.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.storeError(c, "list cart", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddToCart inserts a cart entry. Ownership is whatever email the body carries.
func (h *Handler) AddToCart(c *gin.Context) {
	var entry models.CartEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	h.Log.Debug("cart entry received", zap.String("menu_item_id", entry.MenuItemID))
	res, err := h.Store.Carts.Insert(c.Request.Context(), entry)
	if err != nil {
		h.storeError(c, "insert cart entry", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RemoveFromCart deletes a cart entry by id.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	res, err := h.Store.Carts.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, "delete cart entry", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
