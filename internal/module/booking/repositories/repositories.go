package repositories

import (
	"context"
	"database/sql"
	"time"

	"partner-booking-service/internal/module/booking/models/entity"
	"partner-booking-service/internal/module/booking/policy"
	"partner-booking-service/internal/pkg/errors"
	"partner-booking-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	pqCodeUniqueViolation  = "23505"
	pqCodeLockNotAvailable = "55P03"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	CreateBookingWithSlot(ctx context.Context, partnerID, slotID, customerID int64) (entity.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string, now time.Time) (entity.Refund, entity.Payment, error)
	FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error)
	FindLatestPaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (entity.Payment, error)
	FindRefundsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Refund, error)
	UpdateRefundProcessed(ctx context.Context, refundID int64, providerRefundID string) error
	UpdateRefundFailed(ctx context.Context, refundID int64) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// CreateBookingWithSlot implements Repositories. The slot claim and the
// booking insert share one transaction; any failure after the claim rolls the
// claim back too.
func (r *repositories) CreateBookingWithSlot(ctx context.Context, partnerID, slotID, customerID int64) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}

	// NOWAIT keeps contention latency bounded: a held lock fails immediately
	// instead of queueing behind the holder.
	var slot entity.Slot
	query := `SELECT id, partner_id, slot_start, status FROM partner_slots WHERE id = $1 FOR UPDATE NOWAIT`
	err = tx.GetContext(ctx, &slot, query, slotID)
	if err != nil {
		tx.Rollback()
		if isLockNotAvailable(err) {
			return entity.Booking{}, errors.Conflict("slot is being booked by another request")
		}
		if err == sql.ErrNoRows {
			return entity.Booking{}, errors.NotFound("slot not found")
		}
		r.log.Error(ctx, "error locking slot", err)
		return entity.Booking{}, errors.InternalServerError("error locking slot")
	}

	if slot.PartnerID != partnerID {
		tx.Rollback()
		return entity.Booking{}, errors.BadRequest("slot does not belong to this partner")
	}
	if slot.Status != entity.SlotStatusAvailable {
		tx.Rollback()
		return entity.Booking{}, errors.Conflict("slot is not available")
	}

	_, err = tx.ExecContext(ctx, `UPDATE partner_slots SET status = $2 WHERE id = $1`, slotID, entity.SlotStatusBooked)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error claiming slot", err)
		return entity.Booking{}, errors.InternalServerError("error claiming slot")
	}

	booking := entity.Booking{
		ID:         uuid.New(),
		PartnerID:  sql.NullInt64{Int64: partnerID, Valid: true},
		SlotID:     sql.NullInt64{Int64: slotID, Valid: true},
		CustomerID: customerID,
		Status:     entity.BookingStatusPending,
	}
	err = tx.GetContext(ctx, &booking.CreatedAt, `
		INSERT INTO bookings (id, partner_id, slot_id, customer_id, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING created_at
	`, booking.ID, partnerID, slotID, customerID, entity.BookingStatusPending)
	if err != nil {
		tx.Rollback()
		// unique violation on slot_id means another txn already booked it,
		// a race the row lock normally prevents
		if isUniqueViolation(err) {
			return entity.Booking{}, errors.Conflict("slot already booked")
		}
		r.log.Error(ctx, "error inserting booking", err)
		return entity.Booking{}, errors.InternalServerError("error inserting booking")
	}

	if err := tx.Commit(); err != nil {
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	return booking, nil
}

type bookingForCancel struct {
	ID        uuid.UUID     `db:"id"`
	PartnerID sql.NullInt64 `db:"partner_id"`
	SlotID    sql.NullInt64 `db:"slot_id"`
	Status    string        `db:"status"`
	SlotStart sql.NullTime  `db:"slot_start"`
}

// CancelBooking implements Repositories. Booking transition, slot release and
// the pending refund row commit together; gateway settlement happens after
// commit in the usecase so no row lock is held across network I/O.
func (r *repositories) CancelBooking(ctx context.Context, bookingID uuid.UUID, reason string, now time.Time) (entity.Refund, entity.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Refund{}, entity.Payment{}, errors.InternalServerError("error starting transaction")
	}

	var booking bookingForCancel
	query := `
		SELECT b.id, b.partner_id, b.slot_id, b.status, ps.slot_start
		FROM bookings b
		LEFT JOIN partner_slots ps ON ps.id = b.slot_id
		WHERE b.id = $1
		FOR UPDATE OF b
	`
	err = tx.GetContext(ctx, &booking, query, bookingID)
	if err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return entity.Refund{}, entity.Payment{}, errors.NotFound("booking not found")
		}
		r.log.Error(ctx, "error locking booking", err)
		return entity.Refund{}, entity.Payment{}, errors.InternalServerError("error locking booking")
	}

	if booking.Status == entity.BookingStatusCancelled {
		tx.Rollback()
		return entity.Refund{}, entity.Payment{}, errors.BadRequest("booking is already cancelled")
	}

	var payment entity.Payment
	hasPayment := true
	err = tx.GetContext(ctx, &payment, `
		SELECT id, booking_id, provider, provider_txn_id, amount_paise, status, captured_at, failed_at, metadata, created_at
		FROM payments
		WHERE booking_id = $1 AND status = $2
		ORDER BY captured_at DESC LIMIT 1
	`, bookingID, entity.PaymentStatusCaptured)
	if err == sql.ErrNoRows {
		hasPayment = false
	} else if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error finding captured payment", err)
		return entity.Refund{}, entity.Payment{}, errors.InternalServerError("error finding captured payment")
	}

	var capturedAmount int64
	if hasPayment {
		capturedAmount = payment.Amount
	}
	refundType, refundAmount := policy.ComputeRefund(booking.PartnerID.Valid, booking.SlotStart.Time, now, capturedAmount)

	_, err = tx.ExecContext(ctx, `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`,
		bookingID, entity.BookingStatusCancelled)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error cancelling booking", err)
		return entity.Refund{}, entity.Payment{}, errors.InternalServerError("error cancelling booking")
	}

	if booking.SlotID.Valid {
		// releasing an already-available slot is a no-op
		_, err = tx.ExecContext(ctx, `UPDATE partner_slots SET status = $2 WHERE id = $1`,
			booking.SlotID.Int64, entity.SlotStatusAvailable)
		if err != nil {
			tx.Rollback()
			r.log.Error(ctx, "error releasing slot", err)
			return entity.Refund{}, entity.Payment{}, errors.InternalServerError("error releasing slot")
		}
	}

	refund := entity.Refund{
		BookingID:  bookingID,
		Amount:     refundAmount,
		RefundType: refundType,
		Reason:     reason,
		Status:     entity.RefundStatusPending,
	}
	if hasPayment {
		refund.PaymentID = sql.NullInt64{Int64: payment.ID, Valid: true}
	}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO refunds (booking_id, payment_id, amount_paise, refund_type, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at
	`, bookingID, refund.PaymentID, refundAmount, refundType, reason, entity.RefundStatusPending).
		Scan(&refund.ID, &refund.CreatedAt)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error inserting refund", err)
		return entity.Refund{}, entity.Payment{}, errors.InternalServerError("error inserting refund")
	}

	if err := tx.Commit(); err != nil {
		return entity.Refund{}, entity.Payment{}, errors.InternalServerError("error committing transaction")
	}

	if !hasPayment {
		return refund, entity.Payment{}, nil
	}
	return refund, payment, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error) {
	query := `SELECT id, partner_id, slot_id, customer_id, status, created_at, updated_at FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find booking by id", err)
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindLatestPaymentByBookingID implements Repositories. A missing payment is
// not an error; the zero value signals absence.
func (r *repositories) FindLatestPaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (entity.Payment, error) {
	query := `
		SELECT id, booking_id, provider, provider_txn_id, amount_paise, status, captured_at, failed_at, metadata, created_at
		FROM payments WHERE booking_id = $1 ORDER BY created_at DESC LIMIT 1
	`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find payment by booking id", err)
		return entity.Payment{}, errors.InternalServerError("error find payment by booking id")
	}
	return payment, nil
}

// FindRefundsByBookingID implements Repositories.
func (r *repositories) FindRefundsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Refund, error) {
	query := `
		SELECT id, booking_id, payment_id, amount_paise, refund_type, reason, status, provider_refund_id, created_at, updated_at
		FROM refunds WHERE booking_id = $1 ORDER BY created_at DESC
	`
	var refunds []entity.Refund
	err := r.db.SelectContext(ctx, &refunds, query, bookingID)
	if err != nil {
		r.log.Error(ctx, "error find refunds by booking id", err)
		return nil, errors.InternalServerError("error find refunds by booking id")
	}
	return refunds, nil
}

// UpdateRefundProcessed implements Repositories.
func (r *repositories) UpdateRefundProcessed(ctx context.Context, refundID int64, providerRefundID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE refunds SET status = $2, provider_refund_id = $3, updated_at = now() WHERE id = $1
	`, refundID, entity.RefundStatusProcessed, providerRefundID)
	if err != nil {
		r.log.Error(ctx, "error update refund processed", err)
		return errors.InternalServerError("error update refund processed")
	}
	return nil
}

// UpdateRefundFailed implements Repositories.
func (r *repositories) UpdateRefundFailed(ctx context.Context, refundID int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE refunds SET status = $2, updated_at = now() WHERE id = $1
	`, refundID, entity.RefundStatusFailed)
	if err != nil {
		r.log.Error(ctx, "error update refund failed", err)
		return errors.InternalServerError("error update refund failed")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == pqCodeUniqueViolation
	}
	return false
}

func isLockNotAvailable(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == pqCodeLockNotAvailable
	}
	return false
}
