package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	ItemRepo *repository.ItemRepository
	RestRepo *repository.RestaurantRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, ir *repository.ItemRepository, rr *repository.RestaurantRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ItemRepo: ir, RestRepo: rr}
}

type AddItemIn struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
	ItemID       uint `json:"item_id" binding:"required"`
	Count        int  `json:"count" binding:"required"`
}

type UpdateItemIn struct {
	CartItemID uint `json:"cart_item_id" binding:"required"`
	Count      *int `json:"count" binding:"required"`
}

// AddItem looks up or creates the (user, restaurant) cart, then upserts
// the line: a new line snapshots the item's current price and discount,
// an existing one just accumulates count. The count is taken as-is, even
// negative. The cart total is recomputed as Σ price×count over all
// lines; the stored discount does not participate.
func (s *CartService) AddItem(userID uint, in *AddItemIn) (*entity.Cart, error) {
	ok, err := s.RestRepo.Exists(in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}

	item, err := s.ItemRepo.FindByID(in.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	var cartID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, userID, in.RestaurantID)
		if err != nil {
			return err
		}
		cartID = cart.ID

		line, err := s.CartRepo.FindLineByItem(tx, cart.ID, item.ID)
		switch {
		case err == nil:
			line.Count += in.Count
			if err := s.CartRepo.SaveLine(tx, line); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = &entity.CartItem{
				CartID:   cart.ID,
				ItemID:   item.ID,
				Count:    in.Count,
				Price:    item.Price,
				Discount: item.Discount,
			}
			if err := s.CartRepo.SaveLine(tx, line); err != nil {
				return err
			}
		default:
			return err
		}

		return s.recomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	return s.CartRepo.FindForUser(userID, cartID)
}

// UpdateItem overwrites a line's count; zero means remove the line.
// Removing the last line deletes the cart itself, same as RemoveItem.
// A nil cart with a nil error reports that deletion.
func (s *CartService) UpdateItem(userID, cartID uint, in *UpdateItemIn) (*entity.Cart, error) {
	cart, err := s.CartRepo.FindForUser(userID, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	var deletedCart bool
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := s.CartRepo.FindLine(tx, cart.ID, in.CartItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartItemNotFound
			}
			return err
		}

		if *in.Count == 0 {
			if err := s.CartRepo.DeleteLine(tx, line); err != nil {
				return err
			}
			remaining, err := s.CartRepo.CountLines(tx, cart.ID)
			if err != nil {
				return err
			}
			if remaining == 0 {
				deletedCart = true
				return s.CartRepo.Delete(tx, cart.ID)
			}
		} else {
			line.Count = *in.Count
			if err := s.CartRepo.SaveLine(tx, line); err != nil {
				return err
			}
		}

		return s.recomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	if deletedCart {
		return nil, nil
	}

	return s.CartRepo.FindForUser(userID, cart.ID)
}

// RemoveItem deletes one line; deleting the last line deletes the cart
// itself.
func (s *CartService) RemoveItem(userID, cartID, cartItemID uint) (deletedCart bool, err error) {
	cart, err := s.CartRepo.FindForUser(userID, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrCartNotFound
		}
		return false, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := s.CartRepo.FindLine(tx, cart.ID, cartItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartItemNotFound
			}
			return err
		}

		if err := s.CartRepo.DeleteLine(tx, line); err != nil {
			return err
		}

		remaining, err := s.CartRepo.CountLines(tx, cart.ID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			deletedCart = true
			return s.CartRepo.Delete(tx, cart.ID)
		}
		return s.recomputeTotal(tx, cart.ID)
	})
	return deletedCart, err
}

func (s *CartService) DeleteCart(userID, cartID uint) error {
	cart, err := s.CartRepo.FindForUser(userID, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCartNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Delete(tx, cart.ID)
	})
}

func (s *CartService) GetCart(userID, cartID uint) (*entity.Cart, error) {
	cart, err := s.CartRepo.FindForUser(userID, cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return cart, nil
}

func (s *CartService) ListCarts(userID uint, restaurantID *uint) ([]entity.Cart, error) {
	return s.CartRepo.ListForUser(userID, restaurantID)
}

func (s *CartService) recomputeTotal(tx *gorm.DB, cartID uint) error {
	lines, err := s.CartRepo.Lines(tx, cartID)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Count))))
	}
	return s.CartRepo.UpdateTotal(tx, cartID, total)
}
