package entity

import (
	"gorm.io/gorm"
)

type CustomerProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `json:"-"`

	State     string  `gorm:"default:approved" json:"state"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
