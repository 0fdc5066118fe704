package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem holds the item's price and discount as a snapshot taken when
// the line was first added; later catalog price changes do not touch it.
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"uniqueIndex:idx_cart_item" json:"cart_id"`
	Cart   Cart `json:"-"`
	ItemID uint `gorm:"uniqueIndex:idx_cart_item" json:"item_id"`
	Item   Item `json:"-"`

	Count    int             `json:"count"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Discount decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount"`
}
