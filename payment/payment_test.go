package payment

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v76"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{price: 20, want: 2000},
		{price: 19.99, want: 1999},
		{price: 0.1 + 0.2, want: 30},
		{price: 14.5, want: 1450},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.price), func(t *testing.T) {
			got, err := MinorUnits(tt.price)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinorUnits_Invalid(t *testing.T) {
	for _, p := range []float64{0, -5, math.NaN(), math.Inf(1), 1e17, math.MaxFloat64} {
		_, err := MinorUnits(p)
		assert.ErrorIs(t, err, ErrInvalidAmount, "price %v", p)
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusPaymentRequired, StatusOf(&stripe.Error{HTTPStatusCode: http.StatusPaymentRequired}))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(fmt.Errorf("wrapped: %w", &stripe.Error{HTTPStatusCode: 401})))
	assert.Equal(t, http.StatusBadGateway, StatusOf(errors.New("dial tcp: timeout")))
}

func TestProcessorError_Unwrap(t *testing.T) {
	inner := errors.New("card declined")
	err := error(&ProcessorError{Status: http.StatusPaymentRequired, Err: inner})

	assert.ErrorIs(t, err, inner)
	var pe *ProcessorError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, http.StatusPaymentRequired, pe.Status)
}
