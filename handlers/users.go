package handlers

import (
	"errors"
	"net/http"

	"bistro-boss-api/middleware"
	"bistro-boss-api/models"
	"bistro-boss-api/store"

	"github.com/gin-gonic/gin"
)

// ListUsers returns every user (admin only).
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.Users.List(c.Request.Context())
	if err != nil {
		h.storeError(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin answers whether the caller is an admin. Asking about another
// email always answers false.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.GetEmail(c) {
		c.JSON(http.StatusOK, gin.H{"admin": false})
		return
	}
	user, err := h.Store.Users.FindByEmail(c.Request.Context(), email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.storeError(c, "find user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// MakeAdmin sets role=admin on the user with the given id.
func (h *Handler) MakeAdmin(c *gin.Context) {
	res, err := h.Store.Users.MakeAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeError(c, "promote user", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateUser stores a user on first sign-in; later sign-ins get a message
// instead of a second document.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	if user.Email == "" {
		errorJSON(c, http.StatusBadRequest, "email is required")
		return
	}

	res, err := h.Store.Users.Create(c.Request.Context(), user)
	if errors.Is(err, store.ErrUserExists) {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}
	if err != nil {
		h.storeError(c, "create user", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
