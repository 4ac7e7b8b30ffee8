package usecases

import (
	"context"

	"partner-booking-service/internal/module/booking/models/entity"
	"partner-booking-service/internal/module/webhook/models/request"
	"partner-booking-service/internal/module/webhook/models/response"
	"partner-booking-service/internal/module/webhook/repositories"
	"partner-booking-service/internal/pkg/errors"
	"partner-booking-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	HandlePaymentEvent(ctx context.Context, payload *request.PaymentWebhook) (response.WebhookResult, error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// HandlePaymentEvent applies a provider payment event at most once. A replay
// of an already-processed event id short-circuits to {duplicate}; an event
// whose earlier attempt crashed mid-processing is retried, which is safe
// because the mutations below are upsert-based. Failures are recorded on the
// event row and propagated so the provider redelivers.
func (u *usecase) HandlePaymentEvent(ctx context.Context, payload *request.PaymentWebhook) (response.WebhookResult, error) {
	inserted, err := u.repo.InsertEvent(ctx, payload.EventID, entity.ProviderRazorpay, payload.Event, payload.Payload)
	if err != nil {
		return response.WebhookResult{}, err
	}

	if !inserted {
		event, err := u.repo.FindEventByEventID(ctx, payload.EventID)
		if err != nil {
			return response.WebhookResult{}, err
		}
		if event.Processed {
			return response.WebhookResult{Duplicate: true}, nil
		}
	}

	switch payload.Event {
	case EventPaymentCaptured, EventPaymentFailed:
	default:
		// recorded for audit, no state change
		if err := u.repo.MarkEventProcessed(ctx, payload.EventID); err != nil {
			return response.WebhookResult{}, err
		}
		return response.WebhookResult{Processed: true}, nil
	}

	bookingID, providerTxnID, amount, metadata, err := u.extractPaymentEntity(payload)
	if err != nil {
		u.log.Error(ctx, "error extract payment entity", err)
		u.recordError(ctx, payload.EventID, err)
		return response.WebhookResult{}, err
	}

	if payload.Event == EventPaymentCaptured {
		err = u.repo.ApplyPaymentCaptured(ctx, payload.EventID, bookingID, providerTxnID, amount, metadata)
	} else {
		err = u.repo.ApplyPaymentFailed(ctx, payload.EventID, bookingID, providerTxnID, amount, metadata)
	}
	if err != nil {
		u.recordError(ctx, payload.EventID, err)
		return response.WebhookResult{}, err
	}

	return response.WebhookResult{Processed: true}, nil
}

func (u *usecase) extractPaymentEntity(payload *request.PaymentWebhook) (uuid.UUID, string, int64, []byte, error) {
	var body request.WebhookPayload
	if err := json.Unmarshal(payload.Payload, &body); err != nil {
		return uuid.Nil, "", 0, nil, errors.BadRequest("malformed webhook payload")
	}

	var paymentEntity *request.PaymentEntity
	if body.Payment != nil {
		paymentEntity = &body.Payment.Entity
	} else if body.Entity != nil {
		paymentEntity = body.Entity
	}
	if paymentEntity == nil || paymentEntity.ID == "" {
		return uuid.Nil, "", 0, nil, errors.BadRequest("webhook payload missing payment entity")
	}

	bookingID, err := uuid.Parse(paymentEntity.Notes.BookingID)
	if err != nil {
		return uuid.Nil, "", 0, nil, errors.BadRequest("webhook payload missing booking id")
	}

	metadata, err := json.Marshal(paymentEntity)
	if err != nil {
		return uuid.Nil, "", 0, nil, err
	}

	return bookingID, paymentEntity.ID, paymentEntity.Amount, metadata, nil
}

func (u *usecase) recordError(ctx context.Context, eventID string, cause error) {
	if err := u.repo.RecordProcessingError(ctx, eventID, cause.Error()); err != nil {
		u.log.Error(ctx, "error persisting webhook processing error", err)
	}
}
