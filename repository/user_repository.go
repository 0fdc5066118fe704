package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(tx *gorm.DB, user *entity.User) error {
	return tx.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByPhone(phone string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("phone_number = ?", phone).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByPhone(phone string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("phone_number = ?", phone).Count(&count).Error
	return count, err
}

func (r *UserRepository) UpdatePassword(userID uint, hash string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Update("password", hash).Error
}

func (r *UserRepository) SaveName(userID uint, firstName, lastName string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Updates(map[string]any{"first_name": firstName, "last_name": lastName}).Error
}

// ---------------- Customer profile ----------------

func (r *UserRepository) CreateCustomerProfile(tx *gorm.DB, p *entity.CustomerProfile) error {
	return tx.Create(p).Error
}

func (r *UserRepository) FindCustomerProfile(userID uint) (*entity.CustomerProfile, error) {
	var p entity.CustomerProfile
	if err := r.DB.Preload("User").Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) SaveCustomerProfile(p *entity.CustomerProfile) error {
	return r.DB.Save(p).Error
}
