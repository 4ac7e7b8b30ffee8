package messagestream

import (
	"partner-booking-service/config"

	"github.com/ThreeDotsLabs/watermill"
	wamqp "github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

type Ampq struct {
	cfg    *config.MessageStreamConfig
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) *Ampq {
	return &Ampq{
		cfg:    cfg,
		logger: watermill.NewStdLogger(false, false),
	}
}

func (a *Ampq) NewSubscriber() (message.Subscriber, error) {
	amqpConfig := wamqp.NewDurableQueueConfig(a.cfg.URI)
	return wamqp.NewSubscriber(amqpConfig, a.logger)
}

func (a *Ampq) NewPublisher() (message.Publisher, error) {
	amqpConfig := wamqp.NewDurableQueueConfig(a.cfg.URI)
	return wamqp.NewPublisher(amqpConfig, a.logger)
}

// NewRouter wires a single no-publish handler on a topic. Failed messages are
// republished to the poison topic by the handler itself.
func NewRouter(handlerName, topic string, subscriber message.Subscriber, handlerFunc message.NoPublishHandlerFunc) (*message.Router, error) {
	logger := watermill.NewStdLogger(false, false)
	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(middleware.Recoverer)
	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
