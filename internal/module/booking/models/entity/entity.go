package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

const (
	SlotStatusAvailable = "available"
	SlotStatusBooked    = "booked"

	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusCaptured = "captured"
	PaymentStatusFailed   = "failed"

	RefundStatusPending   = "pending"
	RefundStatusProcessed = "processed"
	RefundStatusFailed    = "failed"

	ProviderRazorpay = "razorpay"
)

type Partner struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	City      string    `db:"city"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

type Slot struct {
	ID        int64     `db:"id"`
	PartnerID int64     `db:"partner_id"`
	SlotStart time.Time `db:"slot_start"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// Booking links a customer to a slot. PartnerID and SlotID are null for
// self-service bookings.
type Booking struct {
	ID         uuid.UUID     `db:"id"`
	PartnerID  sql.NullInt64 `db:"partner_id"`
	SlotID     sql.NullInt64 `db:"slot_id"`
	CustomerID int64         `db:"customer_id"`
	Status     string        `db:"status"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  sql.NullTime  `db:"updated_at"`
}

// Payment rows are upserted by webhook ingestion, unique on
// (provider, provider_txn_id) so provider replays update in place.
type Payment struct {
	ID            int64          `db:"id"`
	BookingID     uuid.UUID      `db:"booking_id"`
	Provider      string         `db:"provider"`
	ProviderTxnID string         `db:"provider_txn_id"`
	Amount        int64          `db:"amount_paise"`
	Status        string         `db:"status"`
	CapturedAt    sql.NullTime   `db:"captured_at"`
	FailedAt      sql.NullTime   `db:"failed_at"`
	Metadata      types.JSONText `db:"metadata"`
	CreatedAt     time.Time      `db:"created_at"`
}

type Refund struct {
	ID               int64          `db:"id"`
	BookingID        uuid.UUID      `db:"booking_id"`
	PaymentID        sql.NullInt64  `db:"payment_id"`
	Amount           int64          `db:"amount_paise"`
	RefundType       string         `db:"refund_type"`
	Reason           string         `db:"reason"`
	Status           string         `db:"status"`
	ProviderRefundID sql.NullString `db:"provider_refund_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        sql.NullTime   `db:"updated_at"`
}

// WebhookEvent exists for idempotency and audit only; once processed it never
// re-triggers business logic.
type WebhookEvent struct {
	ID              int64          `db:"id"`
	EventID         string         `db:"event_id"`
	Provider        string         `db:"provider"`
	EventType       string         `db:"event_type"`
	Payload         types.JSONText `db:"payload"`
	Processed       bool           `db:"processed"`
	ProcessingError sql.NullString `db:"processing_error"`
	ProcessedAt     sql.NullTime   `db:"processed_at"`
	CreatedAt       time.Time      `db:"created_at"`
}
