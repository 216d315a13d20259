package repositories

import (
	"time"

	"gorm.io/gorm"

	"eshop-back/app/models"
	"eshop-back/pkg/metrics"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ForUser returns the given user's orders with items and product details
// nested, newest first is not guaranteed; insertion order is kept.
func (r *OrderRepository) ForUser(userID uint) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("orders.for_user", time.Now())

	var orders []models.Order
	err := r.db.
		Preload("OrderItems.Product").
		Preload("OrderItems").
		Where("user_id = ?", userID).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	defer metrics.ObserveDBQuery("orders.find_by_id", time.Now())

	var order models.Order
	err := r.db.
		Preload("OrderItems.Product").
		Preload("OrderItems").
		First(&order, id).Error
	return order, translate(err)
}

// Create persists the order and all its items in one transaction. Either
// the whole aggregate lands or nothing does.
func (r *OrderRepository) Create(order *models.Order) error {
	defer metrics.ObserveDBQuery("orders.create", time.Now())

	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// UpdateStatus writes only the status column. Returns ErrNotFound when the
// order was deleted out from under the caller.
func (r *OrderRepository) UpdateStatus(id uint, status *string) error {
	defer metrics.ObserveDBQuery("orders.update_status", time.Now())

	res := r.db.Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an order and its items in one transaction.
func (r *OrderRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("orders.delete", time.Now())

	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("order_id = ?", id).
			Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}
