package handlers

import (
	"context"
	"errors"
	"net/http"

	"bistro-boss-api/middleware"
	"bistro-boss-api/payment"
	"bistro-boss-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds what every endpoint needs. The store is opened once at
// startup and shared by all requests.
type Handler struct {
	Store    *store.Store
	Tokens   *middleware.TokenService
	Payments payment.IntentCreator
	Log      *zap.Logger
}

// NewHandler builds the handler set shared by every route.
func NewHandler(st *store.Store, tokens *middleware.TokenService, payments payment.IntentCreator, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    st,
		Tokens:   tokens,
		Payments: payments,
		Log:      logger,
	}
}

func errorJSON(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": true, "message": msg})
}

// storeError maps a store failure onto a response. Causes are logged, never echoed.
func (h *Handler) storeError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		errorJSON(c, http.StatusBadRequest, "invalid id")
	case errors.Is(err, context.Canceled):
		// Client went away; nobody is reading the response.
		c.Status(499)
	default:
		h.Log.Error(op+" failed", zap.Error(err), zap.String("path", c.FullPath()))
		errorJSON(c, http.StatusInternalServerError, "internal server error")
	}
}
