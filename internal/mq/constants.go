package mq

import "time"

// Queue names and message definitions

// immediate queue from the order service to the notifier worker
// deliver message to notify the user that their order was placed
const (
	OrderCreatedQueue = "order.created.immediate"
)

type OrderCreatedMessage struct {
	OrderID     uint      `json:"order_id"`
	Reference   string    `json:"reference"`
	UserID      uint      `json:"user_id"`
	UserEmail   string    `json:"user_email"`
	TicketCount int       `json:"ticket_count"`
	CreatedAt   time.Time `json:"created_at"`
}
