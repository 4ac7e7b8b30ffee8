package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"partner-booking-service/internal/pkg/errors"
	"partner-booking-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const signatureHeader = "X-Razorpay-Signature"

type Middleware struct {
	Log           *otelzap.Logger
	WebhookSecret string
}

// VerifyWebhookSignature authenticates provider callbacks before any business
// logic runs. The signature is an HMAC-SHA256 hex digest over the raw body.
func (m *Middleware) VerifyWebhookSignature(ctx *fiber.Ctx) error {
	signature := ctx.Get(signatureHeader)
	if signature == "" {
		m.Log.Ctx(ctx.UserContext()).Error("missing webhook signature header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid signature"))
	}

	if !VerifySignature(ctx.Body(), signature, m.WebhookSecret) {
		m.Log.Ctx(ctx.UserContext()).Error("webhook signature mismatch")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid signature"))
	}

	return ctx.Next()
}

func VerifySignature(rawBody []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
