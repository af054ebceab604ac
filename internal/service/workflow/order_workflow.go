package workflow

import (
	"go.uber.org/zap"

	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/mq"
	"github.com/airhart/airport-api/internal/repository"
	"github.com/airhart/airport-api/internal/service/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderWorkflow places an order and, once it is durably committed,
// hands the created event to the notifier queue. Publishing failures
// never undo a committed order.
type OrderWorkflow struct {
	OrderService domain.OrderService
	UserRepo     repository.UserRepo
	MQConn       *amqp.Connection
	Logger       *zap.Logger
}

func NewOrderWorkflow(orderService domain.OrderService, userRepo repository.UserRepo, mqConn *amqp.Connection, logger *zap.Logger) *OrderWorkflow {
	return &OrderWorkflow{
		OrderService: orderService,
		UserRepo:     userRepo,
		MQConn:       mqConn,
		Logger:       logger,
	}
}

func (w *OrderWorkflow) PlaceOrder(userID uint, tickets []domain.TicketRequest) (*model.Order, error) {
	order, err := w.OrderService.CreateOrder(userID, tickets)
	if err != nil {
		return nil, err
	}

	if w.MQConn != nil {
		if err := w.publishCreated(order); err != nil {
			w.Logger.Warn("failed to publish order.created",
				zap.Uint("order_id", order.ID),
				zap.Error(err),
			)
		}
	}

	return order, nil
}

func (w *OrderWorkflow) publishCreated(order *model.Order) error {
	email := ""
	if user, err := w.UserRepo.GetByID(order.UserID); err == nil {
		email = user.Email
	}

	ch, err := mq.NewChannel(w.MQConn)
	if err != nil {
		return err
	}
	defer ch.Close()

	return mq.SendImmediateMessage(ch, mq.OrderCreatedQueue,
		mq.OrderCreatedMessage{
			OrderID:     order.ID,
			Reference:   order.Reference,
			UserID:      order.UserID,
			UserEmail:   email,
			TicketCount: len(order.Tickets),
			CreatedAt:   order.CreatedAt,
		})
}
