package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) Create(item *entity.Item) error {
	return r.DB.Create(item).Error
}

func (r *ItemRepository) FindByID(id uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) FindForRestaurant(restID, itemID uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.DB.Where("id = ? AND restaurant_id = ?", itemID, restID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) ListByRestaurant(restID uint) ([]entity.Item, error) {
	var items []entity.Item
	err := r.DB.Where("restaurant_id = ?", restID).Find(&items).Error
	return items, err
}

// SearchAll lists items of approved restaurants only, so the public
// search never surfaces a menu the restaurant listing would hide.
func (r *ItemRepository) SearchAll(query string) ([]entity.Item, error) {
	q := r.DB.Model(&entity.Item{}).
		Select("items.*").
		Joins("JOIN restaurant_profiles ON restaurant_profiles.id = items.restaurant_id").
		Where("restaurant_profiles.state = ?", entity.RestaurantApproved)
	if query != "" {
		q = q.Where("items.name LIKE ?", "%"+query+"%")
	}
	var items []entity.Item
	err := q.Find(&items).Error
	return items, err
}

func (r *ItemRepository) Save(item *entity.Item) error {
	return r.DB.Save(item).Error
}

func (r *ItemRepository) Delete(item *entity.Item) error {
	return r.DB.Delete(item).Error
}
