package router

import (
	bookinghandler "partner-booking-service/internal/module/booking/handler"
	partnerhandler "partner-booking-service/internal/module/partner/handler"
	webhookhandler "partner-booking-service/internal/module/webhook/handler"
	"partner-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *bookinghandler.BookingHandler, handlerPartner *partnerhandler.PartnerHandler, handlerWebhook *webhookhandler.WebhookHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// public routes
	v1 := Api.Group("/v1")
	v1.Post("/bookings", handlerBooking.CreateBooking)
	v1.Post("/bookings/cancel", handlerBooking.CancelBooking)
	v1.Get("/bookings/:id", handlerBooking.ShowBooking)
	v1.Post("/partners/assign", handlerPartner.AssignPartner)

	// provider callbacks
	webhooks := app.Group("/webhooks")
	webhooks.Post("/payment", m.VerifyWebhookSignature, handlerWebhook.PaymentWebhook)

	return app

}
