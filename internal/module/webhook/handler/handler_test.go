package handler_test

import (
	"testing"

	"partner-booking-service/internal/module/webhook/handler"
	"partner-booking-service/internal/module/webhook/mocks"
	"partner-booking-service/internal/module/webhook/models/request"
	"partner-booking-service/internal/module/webhook/models/response"
	log_internal "partner-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"
)

type mockPublisher struct {
	mock.Mock
}

func (p *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	args := p.Called(topic, messages)
	return args.Error(0)
}

func (p *mockPublisher) Close() error { return nil }

var (
	h   *handler.WebhookHandler
	ucm *mocks.Usecase
	pub *mockPublisher
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	pub = &mockPublisher{}
	h = &handler.WebhookHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
		Publish:   pub,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	pub = nil
	h = nil
	app = nil
}

func TestPaymentWebhook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.PaymentWebhook{
			EventID: "evt_1",
			Event:   "payment.captured",
			Payload: json.RawMessage(`{"payment":{"entity":{"id":"pay_abc"}}}`),
		}
		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/webhooks/payment")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		ucm.On("HandlePaymentEvent", mock.Anything, mock.AnythingOfType("*request.PaymentWebhook")).
			Return(response.WebhookResult{Processed: true}, nil)

		err := h.PaymentWebhook(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("missing event id rejected", func(t *testing.T) {
		setup()
		defer teardown()

		jsonData, _ := json.Marshal(map[string]interface{}{"event": "payment.captured"})

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/webhooks/payment")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		err := h.PaymentWebhook(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}

func TestConsumePaymentEventQueue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.PaymentWebhook{
			EventID: "evt_1",
			Event:   "payment.captured",
			Payload: json.RawMessage(`{"payment":{"entity":{"id":"pay_abc"}}}`),
		}
		jsonData, _ := json.Marshal(payload)
		msg := message.NewMessage(watermill.NewUUID(), jsonData)

		ucm.On("HandlePaymentEvent", mock.Anything, mock.AnythingOfType("*request.PaymentWebhook")).
			Return(response.WebhookResult{Processed: true}, nil)

		err := h.ConsumePaymentEventQueue(msg)

		assert.NoError(t, err)
		pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("unparseable message goes to poison queue", func(t *testing.T) {
		setup()
		defer teardown()

		msg := message.NewMessage(watermill.NewUUID(), []byte("not-json"))

		pub.On("Publish", "poisoned_queue", mock.Anything).Return(nil)

		err := h.ConsumePaymentEventQueue(msg)

		assert.Error(t, err)
		pub.AssertCalled(t, "Publish", "poisoned_queue", mock.Anything)
	})
}
