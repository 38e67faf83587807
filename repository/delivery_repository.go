package repository

import (
	"gorm.io/gorm"

	"github.com/rupeshthakur8550/FoodSpace/entity"
)

type DeliveryRepository struct {
	DB *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) GetByRef(ref string) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := r.DB.Where("ref = ?", ref).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) Create(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Create(d).Error
}
