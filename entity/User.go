package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Location string `json:"location"`
	IsSeller bool   `json:"isSeller"`

	Items  []Item  `json:"-" gorm:"foreignKey:SellerID"`
	Orders []Order `json:"-" gorm:"foreignKey:SellerID"`
}
