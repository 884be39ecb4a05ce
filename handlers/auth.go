package handlers

import (
	"errors"
	"net/http"

	"bistro-boss-api/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IssueToken signs whatever claims the client posts. The body must carry an
// email, which becomes the token identity.
func (h *Handler) IssueToken(c *gin.Context) {
	var claims map[string]any
	if err := c.ShouldBindJSON(&claims); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.Tokens.Issue(claims)
	if errors.Is(err, middleware.ErrMissingIdentity) {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.Log.Error("sign token failed", zap.Error(err))
		errorJSON(c, http.StatusInternalServerError, "failed to generate token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
