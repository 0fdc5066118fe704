package repository

import (
	"time"

	"backend/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// SoldLine is one order line of a completed order, joined with the item
// it referenced. Revenue math happens in the service with decimals.
type SoldLine struct {
	ItemID   uint
	Name     string
	Photo    string
	Count    int
	Price    decimal.Decimal
	Discount decimal.Decimal
}

func (r *ReportRepository) CompletedOrderLines(restID uint, start, end time.Time) ([]SoldLine, error) {
	var lines []SoldLine
	err := r.DB.Model(&entity.OrderItem{}).
		Select("order_items.item_id AS item_id, items.name AS name, items.photo AS photo, order_items.count AS count, order_items.price AS price, order_items.discount AS discount").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN items ON items.id = order_items.item_id").
		Where("orders.restaurant_id = ?", restID).
		Where("orders.state = ?", entity.OrderCompleted).
		Where("orders.order_date BETWEEN ? AND ?", start, end).
		Scan(&lines).Error
	return lines, err
}
