package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is one purchased item line. Name, image and price are snapshotted
// from the catalog item at checkout time; only Status mutates afterwards.
type Order struct {
	gorm.Model
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Quantity int             `json:"quantity"`
	Status   OrderStatus     `json:"status" gorm:"type:varchar(20);default:'pending'"`

	ItemID uint `json:"itemId"`
	Item   Item `json:"-"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	SellerID uint `json:"sellerId"`

	// opaque reference to the delivery/address record
	DeliveryRef string `json:"delivery"`
}
