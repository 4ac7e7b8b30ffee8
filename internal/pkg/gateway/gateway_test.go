package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"partner-booking-service/config"
	"partner-booking-service/internal/pkg/gateway"
	"partner-booking-service/internal/pkg/log"

	circuit "github.com/rubyist/circuitbreaker"
	"github.com/stretchr/testify/assert"
)

func newClient(baseURL string) gateway.Client {
	log.Init(log.Setup())
	httpClient := circuit.NewHTTPClient(5*time.Second, 10, nil)
	cfg := &config.GatewayConfig{
		BaseURL:   baseURL,
		KeyID:     "rzp_test_key",
		KeySecret: "rzp_test_secret",
	}
	return gateway.New(httpClient, cfg, log.GetLogger())
}

func TestRefund(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payments/pay_abc/refund", r.URL.Path)
			user, _, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "rzp_test_key", user)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"rfnd_1","amount":7500,"status":"processed"}`))
		}))
		defer srv.Close()

		c := newClient(srv.URL)
		refundID, err := c.Refund(context.Background(), "pay_abc", 10000, 7500, map[string]string{"reason": "customer request"})

		assert.NoError(t, err)
		assert.Equal(t, "rfnd_1", refundID)
	})

	t.Run("gateway rejection surfaces as error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := newClient(srv.URL)
		_, err := c.Refund(context.Background(), "pay_abc", 10000, 7500, nil)

		assert.Error(t, err)
	})

	t.Run("amount validated before any call", func(t *testing.T) {
		c := newClient("http://gateway.invalid")

		_, err := c.Refund(context.Background(), "pay_abc", 10000, 0, nil)
		assert.Error(t, err)

		_, err = c.Refund(context.Background(), "pay_abc", 10000, 10001, nil)
		assert.Error(t, err)
	})
}
