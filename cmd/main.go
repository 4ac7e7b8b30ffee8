package main

import (
	"context"
	"log"

	"partner-booking-service/config"
	bookinghandler "partner-booking-service/internal/module/booking/handler"
	bookingrepo "partner-booking-service/internal/module/booking/repositories"
	bookingusecases "partner-booking-service/internal/module/booking/usecases"
	partnerhandler "partner-booking-service/internal/module/partner/handler"
	partnerrepo "partner-booking-service/internal/module/partner/repositories"
	partnerusecases "partner-booking-service/internal/module/partner/usecases"
	webhookhandler "partner-booking-service/internal/module/webhook/handler"
	webhookrepo "partner-booking-service/internal/module/webhook/repositories"
	webhookusecases "partner-booking-service/internal/module/webhook/usecases"
	"partner-booking-service/internal/pkg/database"
	"partner-booking-service/internal/pkg/gateway"
	"partner-booking-service/internal/pkg/http"
	"partner-booking-service/internal/pkg/httpclient"
	log_internal "partner-booking-service/internal/pkg/log"
	"partner-booking-service/internal/pkg/messagestream"
	"partner-booking-service/internal/pkg/middleware"
	"partner-booking-service/internal/pkg/redis"
	"partner-booking-service/internal/pkg/scheduler"
	router "partner-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, r := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			err := r.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)
	// init payment gateway client
	gatewayClient := gateway.New(httpClient, &cfg.Gateway, logger)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init task scheduler
	sched := scheduler.Scheduler{Log: logger}
	taskClient := sched.InitClient(&cfg.Redis)

	bookingRepo := bookingrepo.New(db, logger)
	bookingUsecase := bookingusecases.New(bookingRepo, logger, publisher, taskClient, gatewayClient)
	webhookRepo := webhookrepo.New(db, logger)
	webhookUsecase := webhookusecases.New(webhookRepo, logger)
	partnerRepo := partnerrepo.New(db, logger, redisClient)
	partnerUsecase := partnerusecases.New(partnerRepo, logger)

	m := &middleware.Middleware{
		Log:           logZap,
		WebhookSecret: cfg.Webhook.Secret,
	}

	validate := validator.New()
	bookingHandler := &bookinghandler.BookingHandler{
		Log:       logZap,
		Validator: validate,
		Usecase:   bookingUsecase,
	}
	webhookHandler := &webhookhandler.WebhookHandler{
		Log:       logZap,
		Validator: validate,
		Usecase:   webhookUsecase,
		Publish:   publisher,
	}
	partnerHandler := &partnerhandler.PartnerHandler{
		Log:       logZap,
		Validator: validate,
		Usecase:   partnerUsecase,
	}

	var messageRouters []*message.Router

	consumePaymentEventsRouter, err := messagestream.NewRouter("payment_events_handler", webhookhandler.TopicPaymentEvents, subscriber, webhookHandler.ConsumePaymentEventQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create consume_payment_events router", err)
	}

	messageRouters = append(messageRouters, consumePaymentEventsRouter)

	// refund settlement worker and its monitoring endpoint
	go sched.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeSettleRefund},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.SettleRefund},
	)
	go sched.StartMonitoring(&cfg.Redis)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, bookingHandler, partnerHandler, webhookHandler, m)

	return r, messageRouters

}
