package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

func (r *FavoriteRepository) Create(f *entity.Favorite) error {
	return r.DB.Create(f).Error
}

func (r *FavoriteRepository) ListForUser(userID uint) ([]entity.Favorite, error) {
	var favs []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).Find(&favs).Error
	return favs, err
}

func (r *FavoriteRepository) Exists(userID, restID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Favorite{}).
		Where("user_id = ? AND restaurant_id = ?", userID, restID).Count(&count).Error
	return count > 0, err
}

// Hard delete so the pair can be favorited again later.
func (r *FavoriteRepository) Delete(userID, restID uint) (int64, error) {
	res := r.DB.Unscoped().
		Where("user_id = ? AND restaurant_id = ?", userID, restID).
		Delete(&entity.Favorite{})
	return res.RowsAffected, res.Error
}
