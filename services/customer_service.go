package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB       *gorm.DB
	UserRepo *repository.UserRepository
	FavRepo  *repository.FavoriteRepository
	RestRepo *repository.RestaurantRepository
}

func NewCustomerService(db *gorm.DB, ur *repository.UserRepository, fr *repository.FavoriteRepository, rr *repository.RestaurantRepository) *CustomerService {
	return &CustomerService{DB: db, UserRepo: ur, FavRepo: fr, RestRepo: rr}
}

func (s *CustomerService) Profile(userID uint) (*entity.CustomerProfile, error) {
	p, err := s.UserRepo.FindCustomerProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

type UpdateProfileIn struct {
	FirstName *string  `json:"first_name"`
	LastName  *string  `json:"last_name"`
	Address   *string  `json:"address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// UpdateProfile edits the profile plus the nested user name fields.
// State is read-only for the customer.
func (s *CustomerService) UpdateProfile(userID uint, in *UpdateProfileIn) (*entity.CustomerProfile, error) {
	p, err := s.UserRepo.FindCustomerProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.Latitude != nil {
		p.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		p.Longitude = *in.Longitude
	}
	if err := s.UserRepo.SaveCustomerProfile(p); err != nil {
		return nil, err
	}

	if in.FirstName != nil || in.LastName != nil {
		first, last := p.User.FirstName, p.User.LastName
		if in.FirstName != nil {
			first = *in.FirstName
		}
		if in.LastName != nil {
			last = *in.LastName
		}
		if err := s.UserRepo.SaveName(userID, first, last); err != nil {
			return nil, err
		}
	}

	return s.UserRepo.FindCustomerProfile(userID)
}

// ---------------- Favorites ----------------

func (s *CustomerService) ListFavorites(userID uint) ([]entity.Favorite, error) {
	return s.FavRepo.ListForUser(userID)
}

func (s *CustomerService) AddFavorite(userID, restID uint) (*entity.Favorite, error) {
	ok, err := s.RestRepo.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}

	exists, err := s.FavRepo.Exists(userID, restID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateFavorite
	}

	fav := &entity.Favorite{UserID: userID, RestaurantID: restID}
	if err := s.FavRepo.Create(fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *CustomerService) RemoveFavorite(userID, restID uint) error {
	affected, err := s.FavRepo.Delete(userID, restID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
