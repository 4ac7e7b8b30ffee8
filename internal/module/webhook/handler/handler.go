package handler

import (
	"context"
	"fmt"

	"partner-booking-service/internal/module/webhook/models/request"
	"partner-booking-service/internal/module/webhook/usecases"
	"partner-booking-service/internal/pkg/errors"
	"partner-booking-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const TopicPaymentEvents = "payment_events"

type WebhookHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *WebhookHandler) PaymentWebhook(ctx *fiber.Ctx) error {
	var req request.PaymentWebhook
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	// call usecase to handle payment event
	resp, err := h.Usecase.HandlePaymentEvent(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error handle payment event: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success handle payment event")
}

// ConsumePaymentEventQueue feeds bus-delivered payment events through the same
// idempotent usecase as the HTTP webhook.
func (h *WebhookHandler) ConsumePaymentEventQueue(msg *message.Message) error {
	msg.Ack() // acknowledge message
	var req request.PaymentWebhook
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	ctx := context.Background()

	// call usecase to handle payment event
	if _, err := h.Usecase.HandlePaymentEvent(ctx, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume payment event queue: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	return nil
}

func (h *WebhookHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := map[string]interface{}{
		"topic_target": TopicPaymentEvents,
		"error_msg":    cause.Error(),
		"payload":      json.RawMessage(msg.Payload),
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}
