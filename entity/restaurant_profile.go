package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RestaurantPending  = "pending"
	RestaurantApproved = "approved"
	RestaurantRejected = "rejected"
)

type RestaurantProfile struct {
	gorm.Model
	ManagerID uint `gorm:"uniqueIndex" json:"manager_id"`
	Manager   User `gorm:"foreignKey:ManagerID" json:"-"`

	Name          string          `gorm:"not null" json:"name"`
	BusinessType  string          `json:"business_type"`
	CityName      string          `json:"city_name"`
	Address       string          `json:"address"`
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	OpenHour      string          `json:"open_hour"`  // "HH:MM"
	CloseHour     string          `json:"close_hour"` // "HH:MM"
	DeliveryPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"delivery_price"`
	Description   string          `json:"description"`
	Photo         string          `json:"photo"`
	State         string          `gorm:"default:pending" json:"state"`

	Items  []Item  `gorm:"foreignKey:RestaurantID" json:"-"`
	Orders []Order `gorm:"foreignKey:RestaurantID" json:"-"`
}
