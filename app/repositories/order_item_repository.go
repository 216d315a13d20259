package repositories

import (
	"time"

	"gorm.io/gorm"

	"eshop-back/app/models"
	"eshop-back/pkg/metrics"
)

// OrderItemRepository handles database operations for OrderItem. Used by
// the admin surface only; storefront order creation goes through
// OrderRepository.
type OrderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

func (r *OrderItemRepository) All() ([]models.OrderItem, error) {
	defer metrics.ObserveDBQuery("order_items.all", time.Now())

	var items []models.OrderItem
	err := r.db.Find(&items).Error
	return items, err
}

func (r *OrderItemRepository) FindByID(id uint) (models.OrderItem, error) {
	defer metrics.ObserveDBQuery("order_items.find_by_id", time.Now())

	var item models.OrderItem
	err := r.db.First(&item, id).Error
	return item, translate(err)
}

func (r *OrderItemRepository) Create(item *models.OrderItem) error {
	defer metrics.ObserveDBQuery("order_items.create", time.Now())
	return r.db.Create(item).Error
}

func (r *OrderItemRepository) Update(item *models.OrderItem) error {
	defer metrics.ObserveDBQuery("order_items.update", time.Now())

	res := r.db.Model(&models.OrderItem{}).
		Where("id = ?", item.ID).
		Select("OrderID", "ProductID", "Quantity").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OrderItemRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("order_items.delete", time.Now())

	res := r.db.Delete(&models.OrderItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
