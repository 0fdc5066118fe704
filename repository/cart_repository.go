package repository

import (
	"errors"

	"backend/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetOrCreate returns the user's cart for the restaurant, creating it on
// the first add.
func (r *CartRepository) GetOrCreate(tx *gorm.DB, userID, restaurantID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, RestaurantID: restaurantID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) FindForUser(userID, cartID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("id = ? AND user_id = ?", cartID, userID).
		Preload("CartItems").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) ListForUser(userID uint, restaurantID *uint) ([]entity.Cart, error) {
	q := r.DB.Where("user_id = ?", userID).Preload("CartItems")
	if restaurantID != nil {
		q = q.Where("restaurant_id = ?", *restaurantID)
	}
	var carts []entity.Cart
	err := q.Find(&carts).Error
	return carts, err
}

// Carts are hard-deleted so the (user, restaurant) pair can be reused
// after checkout or an explicit delete.
func (r *CartRepository) Delete(tx *gorm.DB, cartID uint) error {
	if err := tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.Cart{}, cartID).Error
}

// ---------------- Lines ----------------

func (r *CartRepository) FindLineByItem(tx *gorm.DB, cartID, itemID uint) (*entity.CartItem, error) {
	var ci entity.CartItem
	if err := tx.Where("cart_id = ? AND item_id = ?", cartID, itemID).First(&ci).Error; err != nil {
		return nil, err
	}
	return &ci, nil
}

func (r *CartRepository) FindLine(tx *gorm.DB, cartID, lineID uint) (*entity.CartItem, error) {
	var ci entity.CartItem
	if err := tx.Where("id = ? AND cart_id = ?", lineID, cartID).First(&ci).Error; err != nil {
		return nil, err
	}
	return &ci, nil
}

func (r *CartRepository) SaveLine(tx *gorm.DB, ci *entity.CartItem) error {
	return tx.Save(ci).Error
}

func (r *CartRepository) DeleteLine(tx *gorm.DB, ci *entity.CartItem) error {
	return tx.Unscoped().Delete(ci).Error
}

func (r *CartRepository) Lines(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var lines []entity.CartItem
	err := tx.Where("cart_id = ?", cartID).Find(&lines).Error
	return lines, err
}

func (r *CartRepository) CountLines(tx *gorm.DB, cartID uint) (int64, error) {
	var count int64
	err := tx.Model(&entity.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error
	return count, err
}

func (r *CartRepository) UpdateTotal(tx *gorm.DB, cartID uint, total decimal.Decimal) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Update("total_price", total).Error
}
