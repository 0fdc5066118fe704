package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RestaurantService struct {
	DB       *gorm.DB
	Repo     *repository.RestaurantRepository
	ItemRepo *repository.ItemRepository
	Reviews  *ReviewService
}

func NewRestaurantService(db *gorm.DB, rr *repository.RestaurantRepository, ir *repository.ItemRepository, rs *ReviewService) *RestaurantService {
	return &RestaurantService{DB: db, Repo: rr, ItemRepo: ir, Reviews: rs}
}

// RestaurantOut is a RestaurantProfile with its read-time score attached.
type RestaurantOut struct {
	entity.RestaurantProfile
	Score float64 `json:"score"`
}

// ItemOut is an Item with its read-time score attached.
type ItemOut struct {
	entity.Item
	Score float64 `json:"score"`
}

func (s *RestaurantService) withScore(rest entity.RestaurantProfile) (RestaurantOut, error) {
	score, err := s.Reviews.RestaurantScore(rest.ID)
	if err != nil {
		return RestaurantOut{}, err
	}
	return RestaurantOut{RestaurantProfile: rest, Score: score}, nil
}

func (s *RestaurantService) itemWithScore(item entity.Item) (ItemOut, error) {
	score, err := s.Reviews.ItemScore(item.ID)
	if err != nil {
		return ItemOut{}, err
	}
	return ItemOut{Item: item, Score: score}, nil
}

type SearchIn struct {
	Query        string
	BusinessType string
	IsOpen       *bool
}

type SearchOut struct {
	Restaurants []RestaurantOut `json:"restaurants"`
	Items       []ItemOut       `json:"items"`
}

// Search lists approved restaurants (and matching items) filtered by
// name, business type, and open/closed status at the current time.
func (s *RestaurantService) Search(in SearchIn, now time.Time) (*SearchOut, error) {
	filter := repository.SearchFilter{
		Query:        in.Query,
		BusinessType: in.BusinessType,
		IsOpen:       in.IsOpen,
		Now:          now.Format("15:04"),
	}
	rests, err := s.Repo.SearchApproved(filter)
	if err != nil {
		return nil, err
	}

	items, err := s.ItemRepo.SearchAll(in.Query)
	if err != nil {
		return nil, err
	}

	out := &SearchOut{
		Restaurants: make([]RestaurantOut, 0, len(rests)),
		Items:       make([]ItemOut, 0, len(items)),
	}
	for _, r := range rests {
		ro, err := s.withScore(r)
		if err != nil {
			return nil, err
		}
		out.Restaurants = append(out.Restaurants, ro)
	}
	for _, it := range items {
		io, err := s.itemWithScore(it)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, io)
	}
	return out, nil
}

func (s *RestaurantService) PublicDetail(id uint) (*RestaurantOut, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	out, err := s.withScore(*rest)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------------- Manager profile ----------------

func (s *RestaurantService) MyProfile(managerID uint) (*RestaurantOut, error) {
	rest, err := s.Repo.FindByManager(managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	out, err := s.withScore(*rest)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type UpdateRestaurantIn struct {
	Name          *string          `json:"name"`
	BusinessType  *string          `json:"business_type"`
	CityName      *string          `json:"city_name"`
	Address       *string          `json:"address"`
	Latitude      *float64         `json:"latitude"`
	Longitude     *float64         `json:"longitude"`
	OpenHour      *string          `json:"open_hour"`
	CloseHour     *string          `json:"close_hour"`
	DeliveryPrice *decimal.Decimal `json:"delivery_price"`
	Description   *string          `json:"description"`
	Photo         *string          `json:"photo"`
}

func (s *RestaurantService) UpdateMyProfile(managerID uint, in *UpdateRestaurantIn) (*RestaurantOut, error) {
	rest, err := s.Repo.FindByManager(managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		rest.Name = *in.Name
	}
	if in.BusinessType != nil {
		rest.BusinessType = *in.BusinessType
	}
	if in.CityName != nil {
		rest.CityName = *in.CityName
	}
	if in.Address != nil {
		rest.Address = *in.Address
	}
	if in.Latitude != nil {
		rest.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		rest.Longitude = *in.Longitude
	}
	if in.OpenHour != nil {
		rest.OpenHour = *in.OpenHour
	}
	if in.CloseHour != nil {
		rest.CloseHour = *in.CloseHour
	}
	if in.DeliveryPrice != nil {
		rest.DeliveryPrice = *in.DeliveryPrice
	}
	if in.Description != nil {
		rest.Description = *in.Description
	}
	if in.Photo != nil {
		rest.Photo = *in.Photo
	}

	if err := s.Repo.Save(rest); err != nil {
		return nil, err
	}
	out, err := s.withScore(*rest)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------------- Catalog reads ----------------

func (s *RestaurantService) ListItems(restID uint) ([]ItemOut, error) {
	ok, err := s.Repo.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}

	items, err := s.ItemRepo.ListByRestaurant(restID)
	if err != nil {
		return nil, err
	}
	out := make([]ItemOut, 0, len(items))
	for _, it := range items {
		io, err := s.itemWithScore(it)
		if err != nil {
			return nil, err
		}
		out = append(out, io)
	}
	return out, nil
}

func (s *RestaurantService) ItemDetail(restID, itemID uint) (*ItemOut, error) {
	item, err := s.ItemRepo.FindForRestaurant(restID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	out, err := s.itemWithScore(*item)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------------- Manager item CRUD ----------------

type ItemIn struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Discount    decimal.Decimal `json:"discount"`
	Description string          `json:"description"`
	Photo       string          `json:"photo"`
	State       string          `json:"state"`
}

func validateItemIn(in *ItemIn) error {
	if in.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if in.Discount.IsNegative() || in.Discount.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("discount must be between 0 and 100")
	}
	return nil
}

func (s *RestaurantService) CreateItem(managerID uint, in *ItemIn) (*entity.Item, error) {
	if err := validateItemIn(in); err != nil {
		return nil, err
	}
	rest, err := s.Repo.FindByManager(managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	state := in.State
	if state == "" {
		state = entity.ItemAvailable
	}
	item := &entity.Item{
		RestaurantID: rest.ID,
		Name:         in.Name,
		Price:        in.Price,
		Discount:     in.Discount,
		Description:  in.Description,
		Photo:        in.Photo,
		State:        state,
	}
	if err := s.ItemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *RestaurantService) UpdateItem(managerID, itemID uint, in *ItemIn) (*entity.Item, error) {
	if err := validateItemIn(in); err != nil {
		return nil, err
	}
	rest, err := s.Repo.FindByManager(managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	item, err := s.ItemRepo.FindForRestaurant(rest.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item.Name = in.Name
	item.Price = in.Price
	item.Discount = in.Discount
	item.Description = in.Description
	item.Photo = in.Photo
	if in.State != "" {
		item.State = in.State
	}
	if err := s.ItemRepo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *RestaurantService) DeleteItem(managerID, itemID uint) error {
	rest, err := s.Repo.FindByManager(managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	item, err := s.ItemRepo.FindForRestaurant(rest.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return s.ItemRepo.Delete(item)
}

func (s *RestaurantService) ManagerItem(managerID, itemID uint) (*entity.Item, error) {
	rest, err := s.Repo.FindByManager(managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	item, err := s.ItemRepo.FindForRestaurant(rest.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *RestaurantService) ManagerItems(managerID uint) ([]entity.Item, error) {
	rest, err := s.Repo.FindByManager(managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return s.ItemRepo.ListByRestaurant(rest.ID)
}

// ---------------- Admin approval ----------------

func (s *RestaurantService) ListByState(state string) ([]entity.RestaurantProfile, error) {
	return s.Repo.ListByState(state)
}

// Approve and Reject move a pending restaurant out of review; anything
// already decided is reported as not found.
func (s *RestaurantService) Approve(restID uint) error {
	return s.decide(restID, entity.RestaurantApproved)
}

func (s *RestaurantService) Reject(restID uint) error {
	return s.decide(restID, entity.RestaurantRejected)
}

func (s *RestaurantService) decide(restID uint, state string) error {
	affected, err := s.Repo.UpdateState(restID, state)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}
