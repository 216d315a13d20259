package repositories

import (
	"time"

	"gorm.io/gorm"

	"eshop-back/app/models"
	"eshop-back/pkg/metrics"
)

// UserRepository handles database operations for User.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks up a user by email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	defer metrics.ObserveDBQuery("users.find_by_email", time.Now())

	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, translate(err)
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	defer metrics.ObserveDBQuery("users.find_by_id", time.Now())

	var user models.User
	err := r.db.First(&user, id).Error
	return user, translate(err)
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	defer metrics.ObserveDBQuery("users.create", time.Now())
	return r.db.Create(user).Error
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(user *models.User) error {
	defer metrics.ObserveDBQuery("users.update", time.Now())
	return r.db.Save(user).Error
}

// All returns every user with orders, items and products nested, the shape
// the admin screen renders.
func (r *UserRepository) All() ([]models.User, error) {
	defer metrics.ObserveDBQuery("users.all", time.Now())

	var users []models.User
	err := r.db.
		Preload("Orders.OrderItems.Product").
		Preload("Orders.OrderItems").
		Preload("Orders").
		Find(&users).Error
	return users, err
}

// Delete removes a user together with their orders and order items in one
// transaction. Returns ErrNotFound when no such user exists.
func (r *UserRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("users.delete", time.Now())

	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return translate(err)
		}

		var orderIDs []uint
		if err := tx.Model(&models.Order{}).
			Where("user_id = ?", id).
			Pluck("id", &orderIDs).Error; err != nil {
			return err
		}

		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", id).
				Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
}
