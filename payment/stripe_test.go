package payment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

// stubStripe serves the payment intent endpoint and records each request form.
func stubStripe(t *testing.T, status int, body string) (*Stripe, func() []url.Values) {
	t.Helper()
	var (
		mu    sync.Mutex
		forms []url.Values
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		mu.Lock()
		forms = append(forms, r.PostForm)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	received := func() []url.Values {
		mu.Lock()
		defer mu.Unlock()
		return append([]url.Values(nil), forms...)
	}
	return newStripe("sk_test_123", &stripe.Backends{API: backend}), received
}

func TestStripe_CreatePaymentIntent(t *testing.T) {
	s, forms := stubStripe(t, http.StatusOK,
		`{"id":"pi_1","object":"payment_intent","amount":1999,"currency":"usd","client_secret":"pi_1_secret"}`)

	secret, err := s.CreatePaymentIntent(context.Background(), 19.99)
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", secret)

	got := forms()
	require.Len(t, got, 1)
	form := got[0]
	assert.Equal(t, "1999", form.Get("amount"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "card", form.Get("payment_method_types[0]"))
	assert.Empty(t, form.Get("payment_method_types[1]"))
}

func TestStripe_CreatePaymentIntent_Declined(t *testing.T) {
	s, _ := stubStripe(t, http.StatusPaymentRequired,
		`{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`)

	_, err := s.CreatePaymentIntent(context.Background(), 10)
	require.Error(t, err)

	var pe *ProcessorError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, http.StatusPaymentRequired, pe.Status)

	var se *stripe.Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, stripe.ErrorCodeCardDeclined, se.Code)
}

func TestStripe_CreatePaymentIntent_InvalidAmount(t *testing.T) {
	s, forms := stubStripe(t, http.StatusOK, `{}`)

	_, err := s.CreatePaymentIntent(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Empty(t, forms(), "invalid amounts never reach the processor")
}
