package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	RestRepo  *repository.RestaurantRepository
	jwtSecret string
	jwtTTL    time.Duration

	registrars map[string]profileRegistrar
}

func NewAuthService(db *gorm.DB, ur *repository.UserRepository, rr *repository.RestaurantRepository, secret string, ttl time.Duration) *AuthService {
	s := &AuthService{
		DB:        db,
		UserRepo:  ur,
		RestRepo:  rr,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
	// Closed set of roles; anything else fails fast in Register.
	s.registrars = map[string]profileRegistrar{
		entity.RoleCustomer:          registerCustomerProfile,
		entity.RoleRestaurantManager: registerRestaurantProfile,
	}
	return s
}

type RegisterIn struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`

	// customer only
	State string `json:"state"`

	// restaurant_manager only
	Name         string `json:"name"`
	BusinessType string `json:"business_type"`
	CityName     string `json:"city_name"`
}

// profileRegistrar builds the role-specific profile inside the same
// transaction that created the user row.
type profileRegistrar func(s *AuthService, tx *gorm.DB, user *entity.User, in *RegisterIn) error

func registerCustomerProfile(s *AuthService, tx *gorm.DB, user *entity.User, in *RegisterIn) error {
	state := in.State
	if state == "" {
		state = "approved"
	}
	return s.UserRepo.CreateCustomerProfile(tx, &entity.CustomerProfile{
		UserID: user.ID,
		State:  state,
	})
}

func registerRestaurantProfile(s *AuthService, tx *gorm.DB, user *entity.User, in *RegisterIn) error {
	if in.Name == "" || in.BusinessType == "" || in.CityName == "" {
		return errors.New("name, business_type and city_name are required")
	}
	return s.RestRepo.Create(tx, &entity.RestaurantProfile{
		ManagerID:    user.ID,
		Name:         in.Name,
		BusinessType: in.BusinessType,
		CityName:     in.CityName,
		State:        entity.RestaurantPending,
	})
}

// Register creates the user and its role profile atomically. The role is
// a closed tag: unknown roles are rejected before anything is written.
func (s *AuthService) Register(role string, in *RegisterIn) (*entity.User, error) {
	registrar, ok := s.registrars[role]
	if !ok {
		return nil, ErrUnknownRole
	}

	phone := strings.TrimSpace(in.PhoneNumber)
	count, err := s.UserRepo.CountByPhone(phone)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrPhoneTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		PhoneNumber: phone,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Role:        role,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.Create(tx, user); err != nil {
			return err
		}
		return registrar(s, tx, user, in)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

type LoginOut struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`

	// set for restaurant managers only
	RestaurantID    uint   `json:"restaurant_id,omitempty"`
	RestaurantState string `json:"restaurant_state,omitempty"`
}

func (s *AuthService) Login(phone, password string) (*LoginOut, error) {
	user, err := s.UserRepo.FindByPhone(strings.TrimSpace(phone))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}

	out := &LoginOut{Token: token, User: user}
	if user.Role == entity.RoleRestaurantManager {
		if rest, err := s.RestRepo.FindByManager(user.ID); err == nil {
			out.RestaurantID = rest.ID
			out.RestaurantState = rest.State
		}
	}
	return out, nil
}

func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(userID, string(hashed))
}
