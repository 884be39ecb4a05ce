package handlers

import (
	"net/http"

	"bistro-boss-api/models"

	"github.com/gin-gonic/gin"
)

// ListMenu returns the whole menu (public).
func (h *Handler) ListMenu(c *gin.Context) {
	items, err := h.Store.Menu.List(c.Request.Context())
	if err != nil {
		h.storeError(c, "list menu", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddMenuItem inserts a menu item (admin only).
func (h *Handler) AddMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.Store.Menu.Insert(c.Request.Context(), item)
	if err != nil {
		h.storeError(c, "insert menu item", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteMenuItem removes a menu item by id (admin only).
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	res, err := h.Store.Menu.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, "delete menu item", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
