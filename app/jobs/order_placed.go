// Package jobs defines the background jobs dispatched through pkg/queue.
package jobs

import (
	"eshop-back/pkg/logger"
	"eshop-back/pkg/queue"
)

// OrderPlacedJob notifies about a freshly placed order. Today the handler
// records the event in the log; a mail or push integration slots into
// Handle without touching the order flow.
type OrderPlacedJob struct {
	OrderID uint   `json:"orderId"`
	UserID  uint   `json:"userId"`
	Email   string `json:"email"`
	Items   int    `json:"items"`
}

func (j *OrderPlacedJob) Handle() error {
	logger.Info("order confirmation",
		"order_id", j.OrderID,
		"user_id", j.UserID,
		"email", j.Email,
		"items", j.Items,
	)
	return nil
}

// RegisterAll makes every job type decodable by the queue workers. Called
// once at boot.
func RegisterAll() {
	queue.Register("*jobs.OrderPlacedJob", func() queue.Job { return &OrderPlacedJob{} })
}
