package services

import (
	"errors"
	"math"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB        *gorm.DB
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
	ItemRepo  *repository.ItemRepository
}

func NewReviewService(db *gorm.DB, rr *repository.ReviewRepository, or *repository.OrderRepository, ir *repository.ItemRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: rr, OrderRepo: or, ItemRepo: ir}
}

type CreateReviewIn struct {
	OrderID     uint   `json:"order" binding:"required"`
	Score       int    `json:"score" binding:"required,min=1,max=5"`
	Description string `json:"description"`
}

// Create attaches a review to one of the caller's completed orders. The
// author is always the principal; ownership and existence collapse into
// a single lookup.
func (s *ReviewService) Create(userID uint, in *CreateReviewIn) (*entity.Review, error) {
	order, err := s.OrderRepo.FindForUser(userID, in.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotReviewable
		}
		return nil, err
	}

	if order.State != entity.OrderCompleted {
		return nil, ErrOrderNotCompleted
	}

	exists, err := s.Repo.ExistsForOrderUser(order.ID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	review := &entity.Review{
		UserID:      userID,
		OrderID:     order.ID,
		Score:       in.Score,
		Description: in.Description,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListForItem returns every review of an order that contained the item.
func (s *ReviewService) ListForItem(itemID uint) ([]entity.Review, error) {
	if _, err := s.ItemRepo.FindByID(itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return s.Repo.ListForItem(itemID)
}

// RestaurantScore is the mean review score over the restaurant's orders,
// rounded to two decimals; 0.0 with no reviews. Always computed on read.
func (s *ReviewService) RestaurantScore(restID uint) (float64, error) {
	avg, ok, err := s.Repo.AverageForRestaurant(restID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0.0, nil
	}
	return round2(avg), nil
}

// ItemScore is the same aggregation restricted to orders containing the
// item.
func (s *ReviewService) ItemScore(itemID uint) (float64, error) {
	avg, ok, err := s.Repo.AverageForItem(itemID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0.0, nil
	}
	return round2(avg), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
