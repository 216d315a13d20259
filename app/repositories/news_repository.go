package repositories

import (
	"time"

	"gorm.io/gorm"

	"eshop-back/app/models"
	"eshop-back/pkg/metrics"
)

// NewsRepository handles database operations for NewsItem.
type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) All() ([]models.NewsItem, error) {
	defer metrics.ObserveDBQuery("news.all", time.Now())

	var items []models.NewsItem
	err := r.db.Find(&items).Error
	return items, err
}

func (r *NewsRepository) FindByID(id uint) (models.NewsItem, error) {
	defer metrics.ObserveDBQuery("news.find_by_id", time.Now())

	var item models.NewsItem
	err := r.db.First(&item, id).Error
	return item, translate(err)
}

func (r *NewsRepository) Create(item *models.NewsItem) error {
	defer metrics.ObserveDBQuery("news.create", time.Now())
	return r.db.Create(item).Error
}

func (r *NewsRepository) Update(item *models.NewsItem) error {
	defer metrics.ObserveDBQuery("news.update", time.Now())

	res := r.db.Model(&models.NewsItem{}).
		Where("id = ?", item.ID).
		Select("Title", "Description", "Text").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NewsRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("news.delete", time.Now())

	res := r.db.Delete(&models.NewsItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
