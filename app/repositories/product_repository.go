package repositories

import (
	"time"

	"gorm.io/gorm"

	"eshop-back/app/models"
	"eshop-back/pkg/metrics"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) All() ([]models.Product, error) {
	defer metrics.ObserveDBQuery("products.all", time.Now())

	var products []models.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	defer metrics.ObserveDBQuery("products.find_by_id", time.Now())

	var product models.Product
	err := r.db.First(&product, id).Error
	return product, translate(err)
}

func (r *ProductRepository) Create(product *models.Product) error {
	defer metrics.ObserveDBQuery("products.create", time.Now())
	return r.db.Create(product).Error
}

// Update overwrites the stored product. Returns ErrNotFound when the row
// vanished between the caller's existence check and the write.
func (r *ProductRepository) Update(product *models.Product) error {
	defer metrics.ObserveDBQuery("products.update", time.Now())

	res := r.db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Select("Name", "Description", "Brand", "Price").
		Updates(product)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("products.delete", time.Now())

	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
