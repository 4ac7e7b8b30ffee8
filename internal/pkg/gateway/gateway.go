package gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"partner-booking-service/config"
	"partner-booking-service/internal/pkg/errors"
	"partner-booking-service/internal/pkg/log"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

// Client is the payment-gateway refund capability. Both transient and
// permanent gateway failures surface as an error; the caller records the
// refund row as failed either way.
type Client interface {
	Refund(ctx context.Context, providerTxnID string, originalAmount, amountToRefund int64, notes map[string]string) (string, error)
}

type client struct {
	httpClient *circuit.HTTPClient
	cfg        *config.GatewayConfig
	log        log.Logger
}

func New(httpClient *circuit.HTTPClient, cfg *config.GatewayConfig, log log.Logger) Client {
	return &client{
		httpClient: httpClient,
		cfg:        cfg,
		log:        log,
	}
}

type refundRequest struct {
	Amount int64             `json:"amount"`
	Notes  map[string]string `json:"notes,omitempty"`
}

type refundResponse struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

func (c *client) Refund(ctx context.Context, providerTxnID string, originalAmount, amountToRefund int64, notes map[string]string) (string, error) {
	if amountToRefund <= 0 || amountToRefund > originalAmount {
		return "", errors.BadRequest("refund amount out of range")
	}

	body, err := json.Marshal(refundRequest{Amount: amountToRefund, Notes: notes})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1/payments/%s/refund", c.cfg.BaseURL, providerTxnID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.KeyID, c.cfg.KeySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error(ctx, "gateway refund rejected", resp.StatusCode)
		return "", errors.InternalServerError(fmt.Sprintf("gateway refund rejected with status %d", resp.StatusCode))
	}

	var respData refundResponse
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return "", err
	}

	return respData.ID, nil
}
