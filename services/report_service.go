package services

import (
	"errors"
	"time"

	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// reportRange yields the (start, end) window for one report filter.
// New periods are added by registering another entry.
type reportRange func(now time.Time) (time.Time, time.Time)

var reportRanges = map[string]reportRange{
	"today": func(now time.Time) (time.Time, time.Time) {
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, now
	},
	"last_week": func(now time.Time) (time.Time, time.Time) {
		return now.AddDate(0, 0, -7), now
	},
	"last_month": func(now time.Time) (time.Time, time.Time) {
		return now.AddDate(0, 0, -30), now
	},
}

type ReportService struct {
	DB       *gorm.DB
	Repo     *repository.ReportRepository
	RestRepo *repository.RestaurantRepository
}

func NewReportService(db *gorm.DB, rr *repository.ReportRepository, restRepo *repository.RestaurantRepository) *ReportService {
	return &ReportService{DB: db, Repo: rr, RestRepo: restRepo}
}

type SoldItem struct {
	Name       string          `json:"name"`
	Photo      string          `json:"photo"`
	TotalCount int             `json:"total_count"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type SalesReport struct {
	Filter      string          `json:"filter"`
	TotalIncome decimal.Decimal `json:"total_income"`
	Items       []SoldItem      `json:"items"`
}

var hundred = decimal.NewFromInt(100)

// SalesReport aggregates the manager's completed orders in the selected
// window per item. Revenue here is net of the per-line discount:
// price × count × (1 − discount/100).
func (s *ReportService) SalesReport(managerID uint, filter string, now time.Time) (*SalesReport, error) {
	rangeFn, ok := reportRanges[filter]
	if !ok {
		return nil, ErrInvalidFilter
	}

	rest, err := s.RestRepo.FindByManager(managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	start, end := rangeFn(now)
	lines, err := s.Repo.CompletedOrderLines(rest.ID, start, end)
	if err != nil {
		return nil, err
	}

	byItem := make(map[uint]*SoldItem)
	order := make([]uint, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		revenue := l.Price.
			Mul(decimal.NewFromInt(int64(l.Count))).
			Mul(decimal.NewFromInt(1).Sub(l.Discount.Div(hundred)))

		agg, seen := byItem[l.ItemID]
		if !seen {
			agg = &SoldItem{Name: l.Name, Photo: l.Photo}
			byItem[l.ItemID] = agg
			order = append(order, l.ItemID)
		}
		agg.TotalCount += l.Count
		agg.TotalPrice = agg.TotalPrice.Add(revenue)
		total = total.Add(revenue)
	}

	items := make([]SoldItem, 0, len(order))
	for _, id := range order {
		items = append(items, *byItem[id])
	}

	return &SalesReport{Filter: filter, TotalIncome: total, Items: items}, nil
}
