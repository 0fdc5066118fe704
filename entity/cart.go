package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is the pending basket for one (user, restaurant) pair. It is
// never persisted empty: removing the last line deletes the cart, and
// checkout consumes it.
type Cart struct {
	gorm.Model
	UserID       uint              `gorm:"uniqueIndex:idx_cart_user_restaurant" json:"user_id"`
	User         User              `json:"-"`
	RestaurantID uint              `gorm:"uniqueIndex:idx_cart_user_restaurant" json:"restaurant_id"`
	Restaurant   RestaurantProfile `gorm:"foreignKey:RestaurantID" json:"-"`

	// Cached Σ price×count over all lines; discount is not applied here.
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`

	CartItems []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cart_items"`
}
