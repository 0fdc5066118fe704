package entity

import (
	"gorm.io/gorm"
)

// Review: at most one per (order, user); only completed orders are
// reviewable.
type Review struct {
	gorm.Model
	UserID  uint  `gorm:"uniqueIndex:idx_review_order_user" json:"user_id"`
	User    User  `json:"-"`
	OrderID uint  `gorm:"uniqueIndex:idx_review_order_user" json:"order_id"`
	Order   Order `json:"-"`

	Score       int    `json:"score"` // 1–5
	Description string `json:"description"`
}
