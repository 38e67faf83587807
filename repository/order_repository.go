package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rupeshthakur8550/FoodSpace/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// GET /api/order/getorder/:sellerId → one row per order line
type SellerOrder struct {
	ID          uint               `json:"id"`
	ItemID      uint               `json:"itemId"`
	Name        string             `json:"name"`
	Image       string             `json:"image"`
	Price       decimal.Decimal    `json:"price"`
	Quantity    int                `json:"quantity"`
	Status      entity.OrderStatus `json:"status"`
	DeliveryRef string             `json:"delivery"`
}

func (r *OrderRepository) ListForSeller(sellerID uint) ([]SellerOrder, error) {
	var out []SellerOrder
	err := r.DB.Model(&entity.Order{}).
		Select("id, item_id, name, image, price, quantity, status, delivery_ref").
		Where("seller_id = ?", sellerID).
		Order("id DESC").
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetForSeller(sellerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND seller_id = ?", orderID, sellerID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// UpdateStatusGuard flips the status only when the order still holds the
// expected from-status, so a concurrent update loses cleanly instead of
// clobbering.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
