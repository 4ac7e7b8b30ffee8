package repositories

import (
	"context"
	"database/sql"

	"partner-booking-service/internal/module/booking/models/entity"
	"partner-booking-service/internal/pkg/errors"
	"partner-booking-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	InsertEvent(ctx context.Context, eventID, provider, eventType string, payload []byte) (bool, error)
	FindEventByEventID(ctx context.Context, eventID string) (entity.WebhookEvent, error)
	ApplyPaymentCaptured(ctx context.Context, eventID string, bookingID uuid.UUID, providerTxnID string, amount int64, metadata []byte) error
	ApplyPaymentFailed(ctx context.Context, eventID string, bookingID uuid.UUID, providerTxnID string, amount int64, metadata []byte) error
	MarkEventProcessed(ctx context.Context, eventID string) error
	RecordProcessingError(ctx context.Context, eventID, message string) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertEvent implements Repositories. Returns false when the event id was
// already recorded; conflict is the normal case for provider redeliveries.
func (r *repositories) InsertEvent(ctx context.Context, eventID, provider, eventType string, payload []byte) (bool, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO webhook_events (event_id, provider, event_type, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO NOTHING
		RETURNING id
	`, eventID, provider, eventType, payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		r.log.Error(ctx, "error insert webhook event", err)
		return false, errors.InternalServerError("error insert webhook event")
	}
	return true, nil
}

// FindEventByEventID implements Repositories.
func (r *repositories) FindEventByEventID(ctx context.Context, eventID string) (entity.WebhookEvent, error) {
	query := `
		SELECT id, event_id, provider, event_type, payload, processed, processing_error, processed_at, created_at
		FROM webhook_events WHERE event_id = $1
	`
	var event entity.WebhookEvent
	err := r.db.GetContext(ctx, &event, query, eventID)
	if err == sql.ErrNoRows {
		return entity.WebhookEvent{}, errors.NotFound("webhook event not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find webhook event", err)
		return entity.WebhookEvent{}, errors.InternalServerError("error find webhook event")
	}
	return event, nil
}

// ApplyPaymentCaptured implements Repositories. Payment upsert, booking
// confirmation and the processed flag commit together.
func (r *repositories) ApplyPaymentCaptured(ctx context.Context, eventID string, bookingID uuid.UUID, providerTxnID string, amount int64, metadata []byte) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (booking_id, provider, provider_txn_id, amount_paise, status, captured_at, metadata)
		VALUES ($1, $2, $3, $4, $5, now(), $6)
		ON CONFLICT (provider, provider_txn_id) DO UPDATE SET status = $5, captured_at = now()
	`, bookingID, entity.ProviderRazorpay, providerTxnID, amount, entity.PaymentStatusCaptured, metadata)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error upsert captured payment", err)
		return errors.InternalServerError("error upsert captured payment")
	}

	res, err := tx.ExecContext(ctx, `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		bookingID, entity.BookingStatusConfirmed)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error confirm booking", err)
		return errors.InternalServerError("error confirm booking")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		tx.Rollback()
		return errors.UnprocessableEntity("booking not found for payment event")
	}

	if err := r.markProcessedTx(ctx, tx, eventID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// ApplyPaymentFailed implements Repositories. The booking's slot is released
// and the booking cancelled in the same transaction as the payment upsert.
func (r *repositories) ApplyPaymentFailed(ctx context.Context, eventID string, bookingID uuid.UUID, providerTxnID string, amount int64, metadata []byte) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (booking_id, provider, provider_txn_id, amount_paise, status, failed_at, metadata)
		VALUES ($1, $2, $3, $4, $5, now(), $6)
		ON CONFLICT (provider, provider_txn_id) DO UPDATE SET status = $5, failed_at = now()
	`, bookingID, entity.ProviderRazorpay, providerTxnID, amount, entity.PaymentStatusFailed, metadata)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error upsert failed payment", err)
		return errors.InternalServerError("error upsert failed payment")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE partner_slots SET status = $2
		WHERE id = (SELECT slot_id FROM bookings WHERE id = $1)
	`, bookingID, entity.SlotStatusAvailable)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error release slot", err)
		return errors.InternalServerError("error release slot")
	}

	res, err := tx.ExecContext(ctx, `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		bookingID, entity.BookingStatusCancelled)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error cancel booking", err)
		return errors.InternalServerError("error cancel booking")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		tx.Rollback()
		return errors.UnprocessableEntity("booking not found for payment event")
	}

	if err := r.markProcessedTx(ctx, tx, eventID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}
	return nil
}

// MarkEventProcessed implements Repositories. Used for event types the system
// records but does not act on.
func (r *repositories) MarkEventProcessed(ctx context.Context, eventID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE webhook_events SET processed = true, processed_at = now(), processing_error = NULL
		WHERE event_id = $1
	`, eventID)
	if err != nil {
		r.log.Error(ctx, "error mark webhook event processed", err)
		return errors.InternalServerError("error mark webhook event processed")
	}
	return nil
}

// RecordProcessingError implements Repositories. Runs outside the rolled-back
// business transaction so the failure survives for observability.
func (r *repositories) RecordProcessingError(ctx context.Context, eventID, message string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE webhook_events SET processing_error = $2 WHERE event_id = $1`,
		eventID, message)
	if err != nil {
		r.log.Error(ctx, "error record webhook processing error", err)
		return errors.InternalServerError("error record webhook processing error")
	}
	return nil
}

func (r *repositories) markProcessedTx(ctx context.Context, tx *sqlx.Tx, eventID string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE webhook_events SET processed = true, processed_at = now(), processing_error = NULL
		WHERE event_id = $1
	`, eventID)
	if err != nil {
		r.log.Error(ctx, "error mark webhook event processed", err)
		return errors.InternalServerError("error mark webhook event processed")
	}
	return nil
}
