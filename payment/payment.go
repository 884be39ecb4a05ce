// Package payment creates charge intents with the external processor.
package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const currency = "usd"

// ErrInvalidAmount is returned for non-positive or unrepresentable prices.
var ErrInvalidAmount = errors.New("price must be a positive amount in range")

// ProcessorError wraps a processor failure with the HTTP status to surface.
type ProcessorError struct {
	Status int
	Err    error
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("payment processor: %v", e.Err)
}

func (e *ProcessorError) Unwrap() error { return e.Err }

// IntentCreator is the processor call the API depends on.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, price float64) (clientSecret string, err error)
}

// Stripe creates card-only USD payment intents.
type Stripe struct {
	api *client.API
}

// NewStripe returns a processor using the live Stripe API.
func NewStripe(secretKey string) *Stripe {
	return newStripe(secretKey, nil)
}

// newStripe lets callers point the client at other backends; nil means Stripe's.
func newStripe(secretKey string, backends *stripe.Backends) *Stripe {
	sc := &client.API{}
	sc.Init(secretKey, backends)
	return &Stripe{api: sc}
}

// CreatePaymentIntent charges price dollars, converted to cents.
func (s *Stripe) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amount, err := MinorUnits(price)
	if err != nil {
		return "", err
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", &ProcessorError{Status: StatusOf(err), Err: err}
	}
	return pi.ClientSecret, nil
}

// MinorUnits converts a dollar price to whole cents, rounding away float noise
// such as 19.99*100 = 1998.9999.
func MinorUnits(price float64) (int64, error) {
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ErrInvalidAmount
	}
	cents := math.Round(price * 100)
	if cents >= math.MaxInt64 {
		return 0, ErrInvalidAmount
	}
	return int64(cents), nil
}

// StatusOf returns the processor's HTTP status for err, or 502 when the
// failure never reached the processor.
func StatusOf(err error) int {
	var se *stripe.Error
	if errors.As(err, &se) && se.HTTPStatusCode != 0 {
		return se.HTTPStatusCode
	}
	return http.StatusBadGateway
}
