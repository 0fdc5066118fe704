package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the approval admin on first boot.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminPhone == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_PHONE/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("phone_number = ?", cfg.AdminPhone).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		PhoneNumber: cfg.AdminPhone,
		Password:    string(hash),
		FirstName:   "Admin",
		Role:        entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}
