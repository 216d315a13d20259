package services

import (
	"errors"
	"fmt"

	"eshop-back/app/jobs"
	"eshop-back/app/models"
	"eshop-back/app/repositories"
	"eshop-back/pkg/logger"
	"eshop-back/pkg/metrics"
	"eshop-back/pkg/queue"
)

// ErrEmptyOrder is returned when an order is placed with no items.
var ErrEmptyOrder = errors.New("order has no items")

// ProductNotFoundError names the missing product so the storefront can tell
// the shopper which line of the basket is stale.
type ProductNotFoundError struct {
	ID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product with ID %d not found.", e.ID)
}

// OrderLine is one requested item of a new order.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

// OrderService implements order placement and the admin status workflow.
type OrderService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
	users    *repositories.UserRepository
}

func NewOrderService(orders *repositories.OrderRepository, products *repositories.ProductRepository, users *repositories.UserRepository) *OrderService {
	return &OrderService{orders: orders, products: products, users: users}
}

// Place creates an order for userID. Every product is resolved before
// anything is written; the first missing one aborts the whole order. The
// aggregate is persisted in a single transaction, so a failure on any item
// leaves no partial order behind. Quantities are stored as sent.
func (s *OrderService) Place(userID uint, destination, nameRec, surnameRec *string, lines []OrderLine) (models.Order, error) {
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	status := models.OrderStatusPending
	order := models.Order{
		UserID:      userID,
		Destination: destination,
		NameRec:     nameRec,
		SurnameRec:  surnameRec,
		Status:      &status,
	}

	for _, line := range lines {
		product, err := s.products.FindByID(line.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return models.Order{}, &ProductNotFoundError{ID: line.ProductID}
			}
			return models.Order{}, err
		}

		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  line.Quantity,
			Product:   &product,
		})
	}

	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, err
	}

	metrics.OrdersPlaced.Inc()
	s.notify(&order)

	return order, nil
}

// notify dispatches the confirmation job. Strictly fire-and-forget: a full
// queue or a down Redis never fails the order that was already committed.
func (s *OrderService) notify(order *models.Order) {
	email := ""
	if user, err := s.users.FindByID(order.UserID); err == nil {
		email = user.Email
	}

	job := &jobs.OrderPlacedJob{
		OrderID: order.ID,
		UserID:  order.UserID,
		Email:   email,
		Items:   len(order.OrderItems),
	}
	if err := queue.Dispatch(job); err != nil {
		logger.Warn("order notification dispatch failed", "order_id", order.ID, "error", err)
	}
}

// ForUser returns the caller's orders with items and products nested.
func (s *OrderService) ForUser(userID uint) ([]models.Order, error) {
	return s.orders.ForUser(userID)
}

// UpdateStatus writes a new status on an existing order. Any string is
// accepted; the named states are a convention, not a constraint.
func (s *OrderService) UpdateStatus(id uint, status *string) error {
	return s.orders.UpdateStatus(id, status)
}

// Delete removes an order with its items.
func (s *OrderService) Delete(id uint) error {
	return s.orders.Delete(id)
}
