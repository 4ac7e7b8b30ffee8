package handler_test

import (
	"context"
	"testing"

	"partner-booking-service/internal/module/booking/handler"
	"partner-booking-service/internal/module/booking/mocks"
	"partner-booking-service/internal/module/booking/models/request"
	"partner-booking-service/internal/module/booking/models/response"
	log_internal "partner-booking-service/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.BookingHandler
	ucm           *mocks.Usecase
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup() {
	ucm = &mocks.Usecase{}
	logMock := log_internal.Setup()
	validatorTest = validator.New()
	h = &handler.BookingHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	h = nil
	app = nil
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.CreateBooking{
			PartnerID:  1,
			SlotID:     10,
			CustomerID: 42,
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		// mock usecase
		ucm.On("CreateBooking", mock.Anything, &payload).Return(response.Booking{
			ID:     "2fcb6cbe-0b4c-4f32-9a0e-4c14a7fba021",
			Status: "pending",
		}, nil)

		// test
		err := h.CreateBooking(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, ctx.Response().StatusCode())
	})

	t.Run("missing fields rejected before usecase", func(t *testing.T) {
		jsonData, _ := json.Marshal(map[string]interface{}{"partner_id": 1})

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		err := h.CreateBooking(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}

func TestCancelBooking(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.CancelBooking{
			BookingID: "2fcb6cbe-0b4c-4f32-9a0e-4c14a7fba021",
			Reason:    "customer request",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings/cancel")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)

		// mock usecase
		ucm.On("CancelBooking", mock.Anything, &payload).Return(response.Refund{
			ID:         7,
			BookingID:  payload.BookingID,
			Amount:     7500,
			RefundType: "partial",
			Status:     "pending",
		}, nil)

		// test
		err := h.CancelBooking(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})
}

func TestShowBooking(t *testing.T) {
	setup()
	defer teardown()
	t.Run("missing id", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings/")
		ctx.Request().Header.SetMethod("GET")

		err := h.ShowBooking(ctx)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}

func TestSettleRefund(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.SettleRefund{
			RefundID:       7,
			BookingID:      "2fcb6cbe-0b4c-4f32-9a0e-4c14a7fba021",
			ProviderTxnID:  "pay_abc123",
			OriginalAmount: 10000,
			Amount:         7500,
			Reason:         "customer request",
		}

		// mock usecase
		ucm.On("SettleRefund", ctx, &payload).Return(nil)
		jsonData, _ := json.Marshal(payload)
		task := asynq.NewTask("settle_refund", jsonData)

		// test
		err := h.SettleRefund(ctx, task)

		// assertion
		assert.NoError(t, err)
	})
}
