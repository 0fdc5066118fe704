package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository, rr *repository.RestaurantRepository) *OrderService {
	return &OrderService{DB: db, Repo: or, CartRepo: cr, RestRepo: rr}
}

type CreateOrderIn struct {
	CartID         uint   `json:"cart_id" binding:"required"`
	DeliveryMethod string `json:"delivery_method" binding:"required,oneof=delivery pickup"`
	PaymentMethod  string `json:"payment_method" binding:"required,oneof=online in_person"`
	Description    string `json:"description"`
}

// CreateOrder materializes the cart into an immutable order snapshot and
// discards the cart, all in one transaction. The delivery fee is waived
// for delivery_method "delivery" and charged for pickup, even though
// that reads inverted.
func (s *OrderService) CreateOrder(userID uint, in *CreateOrderIn) (uint, error) {
	cart, err := s.CartRepo.FindForUser(userID, in.CartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCartNotFound
		}
		return 0, err
	}

	restaurant, err := s.RestRepo.FindByID(cart.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrRestaurantNotFound
		}
		return 0, err
	}

	deliveryPrice := restaurant.DeliveryPrice
	if in.DeliveryMethod == entity.DeliveryMethodDelivery {
		deliveryPrice = decimal.Zero
	}
	totalPrice := cart.TotalPrice.Add(deliveryPrice)

	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:         userID,
			RestaurantID:   cart.RestaurantID,
			OrderDate:      time.Now(),
			TotalPrice:     totalPrice,
			State:          entity.OrderPending,
			DeliveryMethod: in.DeliveryMethod,
			PaymentMethod:  in.PaymentMethod,
			Description:    in.Description,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		for _, line := range cart.CartItems {
			oi := entity.OrderItem{
				OrderID:  order.ID,
				ItemID:   line.ItemID,
				Count:    line.Count,
				Price:    line.Price,
				Discount: line.Discount,
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
		}

		if err := s.CartRepo.Delete(tx, cart.ID); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// ListForUser returns the caller's most recent orders, newest first.
func (s *OrderService) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.FindForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// ListForRestaurant returns the orders of the manager's own restaurant.
func (s *OrderService) ListForRestaurant(managerID uint) ([]entity.Order, error) {
	restaurant, err := s.RestRepo.FindByManager(managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return s.Repo.ListForRestaurant(restaurant.ID)
}
