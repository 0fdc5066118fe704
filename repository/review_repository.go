package repository

import (
	"database/sql"

	"backend/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) ExistsForOrderUser(orderID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).
		Where("order_id = ? AND user_id = ?", orderID, userID).Count(&count).Error
	return count > 0, err
}

// ListForItem resolves the orders that contained the item and returns
// their reviews. No deduplication needed: reviews are unique per
// (order, user) and an order holds at most one line per item.
func (r *ReviewRepository) ListForItem(itemID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.
		Joins("JOIN order_items ON order_items.order_id = reviews.order_id").
		Where("order_items.item_id = ?", itemID).
		Preload("User").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) AverageForRestaurant(restID uint) (float64, bool, error) {
	var avg sql.NullFloat64
	err := r.DB.Model(&entity.Review{}).
		Joins("JOIN orders ON orders.id = reviews.order_id").
		Where("orders.restaurant_id = ?", restID).
		Select("AVG(reviews.score)").
		Scan(&avg).Error
	if err != nil {
		return 0, false, err
	}
	return avg.Float64, avg.Valid, nil
}

func (r *ReviewRepository) AverageForItem(itemID uint) (float64, bool, error) {
	var avg sql.NullFloat64
	err := r.DB.Model(&entity.Review{}).
		Joins("JOIN order_items ON order_items.order_id = reviews.order_id").
		Where("order_items.item_id = ?", itemID).
		Select("AVG(reviews.score)").
		Scan(&avg).Error
	if err != nil {
		return 0, false, err
	}
	return avg.Float64, avg.Valid, nil
}
