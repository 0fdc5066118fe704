package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer          = "customer"
	RoleRestaurantManager = "restaurant_manager"
	RoleAdmin             = "admin"
)

type User struct {
	gorm.Model
	PhoneNumber string `gorm:"uniqueIndex;not null" json:"phone_number"`
	Password    string `json:"-"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// Relations, preload only when needed
	CustomerProfile *CustomerProfile   `gorm:"foreignKey:UserID" json:"-"`
	Restaurant      *RestaurantProfile `gorm:"foreignKey:ManagerID" json:"-"`
	Orders          []Order            `json:"-"`
	Reviews         []Review           `json:"-"`
	Favorites       []Favorite         `json:"-"`
}
