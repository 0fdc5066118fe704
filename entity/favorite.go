package entity

import (
	"gorm.io/gorm"
)

type Favorite struct {
	gorm.Model
	UserID       uint              `gorm:"uniqueIndex:idx_fav_user_restaurant" json:"user_id"`
	User         User              `json:"-"`
	RestaurantID uint              `gorm:"uniqueIndex:idx_fav_user_restaurant" json:"restaurant_id"`
	Restaurant   RestaurantProfile `gorm:"foreignKey:RestaurantID" json:"-"`
}
