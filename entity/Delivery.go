package entity

import (
	"gorm.io/gorm"
)

type Delivery struct {
	gorm.Model
	Ref     string `json:"-" gorm:"uniqueIndex"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`

	Orders []Order `json:"-" gorm:"foreignKey:DeliveryRef;references:Ref"`
}

// Fields flattens the address into the field-name → value map the client
// renders, without the row bookkeeping columns.
func (d *Delivery) Fields() map[string]string {
	return map[string]string{
		"name":    d.Name,
		"phone":   d.Phone,
		"street":  d.Street,
		"city":    d.City,
		"state":   d.State,
		"pincode": d.Pincode,
	}
}
