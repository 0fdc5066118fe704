package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.RestaurantProfile) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.RestaurantProfile, error) {
	var rest entity.RestaurantProfile
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByManager(managerID uint) (*entity.RestaurantProfile, error) {
	var rest entity.RestaurantProfile
	if err := r.DB.Where("manager_id = ?", managerID).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Save(rest *entity.RestaurantProfile) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.RestaurantProfile{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) IsManagedBy(restID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.RestaurantProfile{}).
		Where("id = ? AND manager_id = ?", restID, userID).Count(&count).Error
	return count > 0, err
}

// SearchFilter narrows the public restaurant listing. Only approved
// restaurants are ever returned.
type SearchFilter struct {
	Query        string
	BusinessType string
	IsOpen       *bool
	Now          string // "HH:MM", compared against open/close hours
}

func (r *RestaurantRepository) SearchApproved(f SearchFilter) ([]entity.RestaurantProfile, error) {
	q := r.DB.Where("state = ?", entity.RestaurantApproved)
	if f.Query != "" {
		q = q.Where("name LIKE ?", "%"+f.Query+"%")
	}
	if f.BusinessType != "" {
		q = q.Where("business_type LIKE ?", "%"+f.BusinessType+"%")
	}
	if f.IsOpen != nil {
		if *f.IsOpen {
			q = q.Where("open_hour <= ? AND close_hour >= ?", f.Now, f.Now)
		} else {
			q = q.Where("NOT (open_hour <= ? AND close_hour >= ?)", f.Now, f.Now)
		}
	}
	var rests []entity.RestaurantProfile
	err := q.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) ListByState(state string) ([]entity.RestaurantProfile, error) {
	q := r.DB.Model(&entity.RestaurantProfile{})
	if state != "" {
		q = q.Where("state = ?", state)
	}
	var rests []entity.RestaurantProfile
	err := q.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) UpdateState(id uint, state string) (int64, error) {
	res := r.DB.Model(&entity.RestaurantProfile{}).
		Where("id = ? AND state = ?", id, entity.RestaurantPending).
		Update("state", state)
	return res.RowsAffected, res.Error
}
