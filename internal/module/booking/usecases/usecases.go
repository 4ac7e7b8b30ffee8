package usecases

import (
	"context"
	"time"

	"partner-booking-service/internal/module/booking/models/entity"
	"partner-booking-service/internal/module/booking/models/request"
	"partner-booking-service/internal/module/booking/models/response"
	"partner-booking-service/internal/module/booking/repositories"
	"partner-booking-service/internal/pkg/errors"
	"partner-booking-service/internal/pkg/gateway"
	"partner-booking-service/internal/pkg/log"
	"partner-booking-service/internal/pkg/scheduler"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TopicBookingCreated   = "booking_created"
	TopicBookingCancelled = "booking_cancelled"
	TopicRefundSettled    = "refund_settled"
)

// TaskEnqueuer is the subset of *asynq.Client the usecase needs.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type usecase struct {
	repo       repositories.Repositories
	log        log.Logger
	publisher  message.Publisher
	taskClient TaskEnqueuer
	gateway    gateway.Client
}

type Usecase interface {
	CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.Booking, error)
	CancelBooking(ctx context.Context, payload *request.CancelBooking) (response.Refund, error)
	ShowBooking(ctx context.Context, bookingID string) (response.BookingDetail, error)
	SettleRefund(ctx context.Context, payload *request.SettleRefund) error
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher, taskClient TaskEnqueuer, gw gateway.Client) Usecase {
	return &usecase{
		repo:       repo,
		log:        log,
		publisher:  publisher,
		taskClient: taskClient,
		gateway:    gw,
	}
}

func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.Booking, error) {
	booking, err := u.repo.CreateBookingWithSlot(ctx, payload.PartnerID, payload.SlotID, payload.CustomerID)
	if err != nil {
		return response.Booking{}, err
	}

	u.publishBookingEvent(ctx, TopicBookingCreated, booking.ID.String(), booking.Status)

	return toBookingResponse(booking), nil
}

func (u *usecase) CancelBooking(ctx context.Context, payload *request.CancelBooking) (response.Refund, error) {
	bookingID, err := uuid.Parse(payload.BookingID)
	if err != nil {
		return response.Refund{}, errors.BadRequest("invalid booking id")
	}

	refund, payment, err := u.repo.CancelBooking(ctx, bookingID, payload.Reason, time.Now())
	if err != nil {
		return response.Refund{}, err
	}

	// gateway settlement runs after commit so no row lock spans network I/O;
	// the caller sees the refund in pending state
	if refund.Amount > 0 && payment.ID != 0 {
		u.enqueueSettleRefund(ctx, refund, payment, payload.Reason)
	}

	u.publishBookingEvent(ctx, TopicBookingCancelled, payload.BookingID, entity.BookingStatusCancelled)

	resp := response.Refund{
		ID:         refund.ID,
		BookingID:  refund.BookingID.String(),
		Amount:     refund.Amount,
		RefundType: refund.RefundType,
		Reason:     refund.Reason,
		Status:     refund.Status,
	}
	if refund.PaymentID.Valid {
		resp.PaymentID = &refund.PaymentID.Int64
	}
	return resp, nil
}

func (u *usecase) ShowBooking(ctx context.Context, bookingID string) (response.BookingDetail, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return response.BookingDetail{}, errors.BadRequest("invalid booking id")
	}

	booking, err := u.repo.FindBookingByID(ctx, id)
	if err != nil {
		return response.BookingDetail{}, err
	}

	payment, err := u.repo.FindLatestPaymentByBookingID(ctx, id)
	if err != nil {
		return response.BookingDetail{}, err
	}

	refunds, err := u.repo.FindRefundsByBookingID(ctx, id)
	if err != nil {
		return response.BookingDetail{}, err
	}

	detail := response.BookingDetail{
		Booking: toBookingResponse(booking),
	}
	if payment.ID != 0 {
		detail.Payment = &response.Payment{
			ID:            payment.ID,
			Provider:      payment.Provider,
			ProviderTxnID: payment.ProviderTxnID,
			Amount:        payment.Amount,
			Status:        payment.Status,
		}
	}
	for _, refund := range refunds {
		r := response.Refund{
			ID:         refund.ID,
			BookingID:  refund.BookingID.String(),
			Amount:     refund.Amount,
			RefundType: refund.RefundType,
			Reason:     refund.Reason,
			Status:     refund.Status,
		}
		if refund.PaymentID.Valid {
			r.PaymentID = &refund.PaymentID.Int64
		}
		detail.Refunds = append(detail.Refunds, r)
	}
	return detail, nil
}

// SettleRefund runs inside the asynq worker. A gateway failure marks the
// refund row failed for operator follow-up; the task is not retried.
func (u *usecase) SettleRefund(ctx context.Context, payload *request.SettleRefund) error {
	notes := map[string]string{
		"booking_id": payload.BookingID,
		"reason":     payload.Reason,
	}

	providerRefundID, err := u.gateway.Refund(ctx, payload.ProviderTxnID, payload.OriginalAmount, payload.Amount, notes)
	if err != nil {
		u.log.Error(ctx, "refund gateway call failed", err)
		if err := u.repo.UpdateRefundFailed(ctx, payload.RefundID); err != nil {
			return err
		}
		u.publishRefundSettled(ctx, payload.RefundID, payload.BookingID, entity.RefundStatusFailed, "")
		return nil
	}

	if err := u.repo.UpdateRefundProcessed(ctx, payload.RefundID, providerRefundID); err != nil {
		return err
	}

	u.publishRefundSettled(ctx, payload.RefundID, payload.BookingID, entity.RefundStatusProcessed, providerRefundID)
	return nil
}

func (u *usecase) enqueueSettleRefund(ctx context.Context, refund entity.Refund, payment entity.Payment, reason string) {
	payload := request.SettleRefund{
		RefundID:       refund.ID,
		BookingID:      refund.BookingID.String(),
		ProviderTxnID:  payment.ProviderTxnID,
		OriginalAmount: payment.Amount,
		Amount:         refund.Amount,
		Reason:         reason,
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		u.log.Error(ctx, "error marshal settle refund task", err)
		return
	}

	task := asynq.NewTask(scheduler.TypeSettleRefund, jsonPayload)
	// no automatic retry: a failed settlement stays failed until an operator
	// reconciles it
	if _, err := u.taskClient.EnqueueContext(ctx, task, asynq.MaxRetry(0)); err != nil {
		u.log.Error(ctx, "error enqueue settle refund task", err)
	}
}

func (u *usecase) publishBookingEvent(ctx context.Context, topic, bookingID, status string) {
	event := request.BookingEvent{
		BookingID:  bookingID,
		Status:     status,
		OccurredAt: time.Now().Format(time.RFC3339),
	}
	jsonPayload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal booking event", err)
		return
	}
	if err := u.publisher.Publish(topic, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish booking event", err)
	}
}

func (u *usecase) publishRefundSettled(ctx context.Context, refundID int64, bookingID, status, providerRefundID string) {
	event := request.RefundSettledEvent{
		RefundID:         refundID,
		BookingID:        bookingID,
		Status:           status,
		ProviderRefundID: providerRefundID,
	}
	jsonPayload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal refund settled event", err)
		return
	}
	if err := u.publisher.Publish(TopicRefundSettled, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish refund settled event", err)
	}
}

func toBookingResponse(booking entity.Booking) response.Booking {
	resp := response.Booking{
		ID:         booking.ID.String(),
		CustomerID: booking.CustomerID,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if booking.PartnerID.Valid {
		resp.PartnerID = &booking.PartnerID.Int64
	}
	if booking.SlotID.Valid {
		resp.SlotID = &booking.SlotID.Int64
	}
	return resp
}
