package repository

import (
	"gorm.io/gorm"

	"github.com/rupeshthakur8550/FoodSpace/entity"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

// ListByLocation returns the catalog served near a location; an empty
// location means the whole catalog.
func (r *ItemRepository) ListByLocation(location string) ([]entity.Item, error) {
	var items []entity.Item
	q := r.DB.Order("id")
	if location != "" {
		q = q.Where("location = ?", location)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *ItemRepository) GetItem(itemID uint) (*entity.Item, error) {
	var it entity.Item
	if err := r.DB.First(&it, itemID).Error; err != nil {
		return nil, err
	}
	return &it, nil
}
