package workflow

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/airhart/airport-api/internal/mq"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationWorkflow consumes order.created events and delivers a
// confirmation to the buyer. Delivery is a structured log line for now;
// the queue contract stays the same when a mail sender replaces it.
type NotificationWorkflow struct {
	Logger *zap.Logger
}

func NewNotificationWorkflow(logger *zap.Logger) *NotificationWorkflow {
	return &NotificationWorkflow{
		Logger: logger,
	}
}

func (w *NotificationWorkflow) Start(mqConn *amqp.Connection) error {
	if err := w.ConsumeOrderCreated(mqConn); err != nil {
		return err
	}
	return nil
}

func (w *NotificationWorkflow) ConsumeOrderCreated(conn *amqp.Connection) error {
	ch, err := mq.NewChannel(conn)
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(mq.OrderCreatedQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			if err := w.handleOrderCreated(msg); err != nil {
				w.Logger.Error("failed to handle order.created", zap.Error(err))
			}
		}
	}()

	return nil
}

func (w *NotificationWorkflow) handleOrderCreated(msg amqp.Delivery) error {
	var message mq.OrderCreatedMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		msg.Nack(false, false)
		return err
	}

	w.Logger.Info("order confirmation",
		zap.String("reference", message.Reference),
		zap.String("email", message.UserEmail),
		zap.Int("tickets", message.TicketCount),
		zap.Time("created_at", message.CreatedAt),
	)

	msg.Ack(false)

	return nil
}
