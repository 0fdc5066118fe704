package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a frozen copy of a CartItem at order time; never mutated.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null;index" json:"order_id"`
	Order   Order `json:"-"`
	ItemID  uint  `gorm:"not null;index" json:"item_id"`
	Item    Item  `json:"-"`

	Count    int             `json:"count"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Discount decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount"`
}
