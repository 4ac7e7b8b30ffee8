package request

import "github.com/goccy/go-json"

// PaymentWebhook is the provider callback body. Payload stays raw so the
// event row stores exactly what was delivered.
type PaymentWebhook struct {
	EventID string          `json:"event_id" validate:"required"`
	Event   string          `json:"event" validate:"required"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

type WebhookPayload struct {
	Payment *PaymentWrapper `json:"payment,omitempty"`
	Entity  *PaymentEntity  `json:"entity,omitempty"`
}

type PaymentWrapper struct {
	Entity PaymentEntity `json:"entity"`
}

type PaymentEntity struct {
	ID     string      `json:"id"`
	Amount int64       `json:"amount"`
	Notes  EntityNotes `json:"notes"`
}

type EntityNotes struct {
	BookingID string `json:"booking_id"`
	Reason    string `json:"reason,omitempty"`
}
