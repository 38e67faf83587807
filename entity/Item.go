package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Item struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Location    string          `json:"location"`

	SellerID uint `json:"sellerId"`
	Seller   User `json:"-"`
}
