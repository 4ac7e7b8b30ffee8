package repositories_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"

	"partner-booking-service/internal/module/booking/models/entity"
	"partner-booking-service/internal/module/booking/policy"
	"partner-booking-service/internal/module/booking/repositories"
	"partner-booking-service/internal/pkg/errors"
	"partner-booking-service/internal/pkg/log"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock log.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logZap := log.SetupLogger()
	log.Init(logZap)
	logMock = log.GetLogger()
}

func TestCreateBookingWithSlot(t *testing.T) {
	slotStart := time.Now().Add(48 * time.Hour)

	t.Run("success claims slot and inserts booking", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, partner_id, slot_start, status FROM partner_slots").
			WithArgs(int64(10)).
			WillReturnRows(sqlxmock.NewRows([]string{"id", "partner_id", "slot_start", "status"}).
				AddRow(int64(10), int64(1), slotStart, entity.SlotStatusAvailable))
		mock.ExpectExec("UPDATE partner_slots SET status").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnRows(sqlxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectCommit()

		booking, err := repo.CreateBookingWithSlot(context.Background(), 1, 10, 42)

		assert.NoError(t, err)
		assert.Equal(t, entity.BookingStatusPending, booking.Status)
		assert.Equal(t, int64(1), booking.PartnerID.Int64)
		assert.Equal(t, int64(10), booking.SlotID.Int64)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("locked row fails fast with contended", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, partner_id, slot_start, status FROM partner_slots").
			WithArgs(int64(10)).
			WillReturnError(&pq.Error{Code: "55P03"})
		mock.ExpectRollback()

		_, err := repo.CreateBookingWithSlot(context.Background(), 1, 10, 42)

		assert.Error(t, err)
		assert.Equal(t, 409, errors.HTTPCode(err))
		assert.Equal(t, "slot is being booked by another request", errors.Message(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing slot yields not found", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, partner_id, slot_start, status FROM partner_slots").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.CreateBookingWithSlot(context.Background(), 1, 99, 42)

		assert.Error(t, err)
		assert.Equal(t, 404, errors.HTTPCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign partner yields mismatch", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, partner_id, slot_start, status FROM partner_slots").
			WithArgs(int64(10)).
			WillReturnRows(sqlxmock.NewRows([]string{"id", "partner_id", "slot_start", "status"}).
				AddRow(int64(10), int64(7), slotStart, entity.SlotStatusAvailable))
		mock.ExpectRollback()

		_, err := repo.CreateBookingWithSlot(context.Background(), 1, 10, 42)

		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booked slot yields not available", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, partner_id, slot_start, status FROM partner_slots").
			WithArgs(int64(10)).
			WillReturnRows(sqlxmock.NewRows([]string{"id", "partner_id", "slot_start", "status"}).
				AddRow(int64(10), int64(1), slotStart, entity.SlotStatusBooked))
		mock.ExpectRollback()

		_, err := repo.CreateBookingWithSlot(context.Background(), 1, 10, 42)

		assert.Error(t, err)
		assert.Equal(t, 409, errors.HTTPCode(err))
		assert.Equal(t, "slot is not available", errors.Message(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation on insert rolls back the claim", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, partner_id, slot_start, status FROM partner_slots").
			WithArgs(int64(10)).
			WillReturnRows(sqlxmock.NewRows([]string{"id", "partner_id", "slot_start", "status"}).
				AddRow(int64(10), int64(1), slotStart, entity.SlotStatusAvailable))
		mock.ExpectExec("UPDATE partner_slots SET status").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		_, err := repo.CreateBookingWithSlot(context.Background(), 1, 10, 42)

		assert.Error(t, err)
		assert.Equal(t, 409, errors.HTTPCode(err))
		assert.Equal(t, "slot already booked", errors.Message(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCancelBooking(t *testing.T) {
	now := time.Now()
	bookingID := uuid.New()

	t.Run("partnered booking with captured payment gets partial refund", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)
		slotStart := now.Add(48 * time.Hour)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT b.id, b.partner_id, b.slot_id, b.status, ps.slot_start").
			WillReturnRows(sqlxmock.NewRows([]string{"id", "partner_id", "slot_id", "status", "slot_start"}).
				AddRow(bookingID.String(), int64(1), int64(10), entity.BookingStatusConfirmed, slotStart))
		mock.ExpectQuery("SELECT id, booking_id, provider, provider_txn_id, amount_paise").
			WillReturnRows(sqlxmock.NewRows([]string{"id", "booking_id", "provider", "provider_txn_id", "amount_paise", "status", "captured_at", "failed_at", "metadata", "created_at"}).
				AddRow(int64(3), bookingID.String(), entity.ProviderRazorpay, "pay_abc123", int64(10000), entity.PaymentStatusCaptured, now, nil, []byte(`{}`), now))
		mock.ExpectExec("UPDATE bookings SET status").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE partner_slots SET status").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO refunds").
			WillReturnRows(sqlxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))
		mock.ExpectCommit()

		refund, payment, err := repo.CancelBooking(context.Background(), bookingID, "customer request", now)

		assert.NoError(t, err)
		assert.Equal(t, policy.RefundTypePartial, refund.RefundType)
		assert.Equal(t, int64(7500), refund.Amount)
		assert.Equal(t, entity.RefundStatusPending, refund.Status)
		assert.Equal(t, "pay_abc123", payment.ProviderTxnID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("partner-less booking without payment gets zero full refund", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT b.id, b.partner_id, b.slot_id, b.status, ps.slot_start").
			WillReturnRows(sqlxmock.NewRows([]string{"id", "partner_id", "slot_id", "status", "slot_start"}).
				AddRow(bookingID.String(), nil, nil, entity.BookingStatusPending, nil))
		mock.ExpectQuery("SELECT id, booking_id, provider, provider_txn_id, amount_paise").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec("UPDATE bookings SET status").
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectQuery("INSERT INTO refunds").
			WillReturnRows(sqlxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(8), now))
		mock.ExpectCommit()

		refund, payment, err := repo.CancelBooking(context.Background(), bookingID, "no show", now)

		assert.NoError(t, err)
		assert.Equal(t, policy.RefundTypeFull, refund.RefundType)
		assert.Equal(t, int64(0), refund.Amount)
		assert.Equal(t, int64(0), payment.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already cancelled booking is rejected", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT b.id, b.partner_id, b.slot_id, b.status, ps.slot_start").
			WillReturnRows(sqlxmock.NewRows([]string{"id", "partner_id", "slot_id", "status", "slot_start"}).
				AddRow(bookingID.String(), int64(1), int64(10), entity.BookingStatusCancelled, now))
		mock.ExpectRollback()

		_, _, err := repo.CancelBooking(context.Background(), bookingID, "again", now)

		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
		assert.Equal(t, "booking is already cancelled", errors.Message(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking yields not found", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT b.id, b.partner_id, b.slot_id, b.status, ps.slot_start").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, _, err := repo.CancelBooking(context.Background(), bookingID, "missing", now)

		assert.Error(t, err)
		assert.Equal(t, 404, errors.HTTPCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateRefundStatus(t *testing.T) {
	t.Run("processed stores provider refund id", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectExec("UPDATE refunds SET status").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.UpdateRefundProcessed(context.Background(), 7, "rfnd_xyz")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed leaves provider refund id empty", func(t *testing.T) {
		setup()
		repo := repositories.New(dbx, logMock)

		mock.ExpectExec("UPDATE refunds SET status").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.UpdateRefundFailed(context.Background(), 7)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
