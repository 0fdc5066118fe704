package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ItemAvailable   = "available"
	ItemUnavailable = "unavailable"
)

type Item struct {
	gorm.Model
	RestaurantID uint              `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   RestaurantProfile `gorm:"foreignKey:RestaurantID" json:"-"`

	Name        string          `gorm:"not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Discount    decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount"` // percent 0–100
	Description string          `json:"description"`
	Photo       string          `json:"photo"`
	State       string          `gorm:"default:available" json:"state"`

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
