package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderPending   = "pending"
	OrderPreparing = "preparing"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

const (
	DeliveryMethodDelivery = "delivery"
	DeliveryMethodPickup   = "pickup"
)

const (
	PaymentMethodOnline   = "online"
	PaymentMethodInPerson = "in_person"
)

// Order is an immutable snapshot materialized from a Cart at checkout.
// Only State changes after creation.
type Order struct {
	gorm.Model
	UserID       uint              `gorm:"not null;index" json:"user_id"`
	User         User              `json:"-"`
	RestaurantID uint              `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   RestaurantProfile `gorm:"foreignKey:RestaurantID" json:"-"`

	OrderDate      time.Time       `json:"order_date"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`
	State          string          `gorm:"default:pending" json:"state"`
	DeliveryMethod string          `json:"delivery_method"`
	PaymentMethod  string          `json:"payment_method"`
	Description    string          `json:"description"`

	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"order_items"`
	Reviews    []Review    `json:"-"`
}
