package handlers

import (
	"errors"
	"net/http"

	"bistro-boss-api/models"
	"bistro-boss-api/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent asks the processor for a card intent and returns its
// client secret. Processor failures keep the processor's status.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	secret, err := h.Payments.CreatePaymentIntent(c.Request.Context(), req.Price)
	if errors.Is(err, payment.ErrInvalidAmount) {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	var pe *payment.ProcessorError
	if errors.As(err, &pe) {
		h.Log.Warn("payment intent rejected", zap.Int("status", pe.Status), zap.Error(pe.Err))
		errorJSON(c, pe.Status, pe.Error())
		return
	}
	if err != nil {
		h.Log.Error("payment intent failed", zap.Error(err))
		errorJSON(c, http.StatusBadGateway, "payment processor unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// RecordPayment stores the payment and clears the cart entries it paid for.
func (h *Handler) RecordPayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	res, err := h.Store.Payments.Record(c.Request.Context(), p)
	if err != nil {
		h.storeError(c, "record payment", err)
		return
	}
	h.Log.Info("payment recorded",
		zap.String("payment_id", res.InsertResult.InsertedID.Hex()),
		zap.Int64("cart_entries_removed", res.DeleteResult.DeletedCount))
	c.JSON(http.StatusOK, res)
}
