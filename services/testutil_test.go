package services_test

import (
	"fmt"
	"testing"
	"time"

	"backend/configs"
	"backend/entity"
	"backend/repository"
	"backend/services"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type env struct {
	DB *gorm.DB

	Auth       *services.AuthService
	Carts      *services.CartService
	Orders     *services.OrderService
	Reviews    *services.ReviewService
	Restaurant *services.RestaurantService
	Customers  *services.CustomerService
	Reports    *services.ReportService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	// One shared in-memory database per test, named after the test so
	// parallel tests never collide.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{}, &entity.CustomerProfile{}, &entity.RestaurantProfile{},
		&entity.Item{}, &entity.Favorite{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Review{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	itemRepo := repository.NewItemRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	reportRepo := repository.NewReportRepository(db)

	cfg := configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}

	reviews := services.NewReviewService(db, reviewRepo, orderRepo, itemRepo)
	return &env{
		DB:         db,
		Auth:       services.NewAuthService(db, userRepo, restRepo, cfg.JWTSecret, cfg.JWTTTL),
		Carts:      services.NewCartService(db, cartRepo, itemRepo, restRepo),
		Orders:     services.NewOrderService(db, orderRepo, cartRepo, restRepo),
		Reviews:    reviews,
		Restaurant: services.NewRestaurantService(db, restRepo, itemRepo, reviews),
		Customers:  services.NewCustomerService(db, userRepo, favRepo, restRepo),
		Reports:    services.NewReportService(db, reportRepo, restRepo),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("decimal mismatch: want %s, got %s", want, got)
	}
}

// ---------------- fixtures ----------------

func (e *env) createCustomer(t *testing.T, phone string) *entity.User {
	t.Helper()
	u := &entity.User{PhoneNumber: phone, Password: "x", Role: entity.RoleCustomer}
	if err := e.DB.Create(u).Error; err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return u
}

func (e *env) createRestaurant(t *testing.T, managerPhone string, deliveryPrice string) *entity.RestaurantProfile {
	t.Helper()
	m := &entity.User{PhoneNumber: managerPhone, Password: "x", Role: entity.RoleRestaurantManager}
	if err := e.DB.Create(m).Error; err != nil {
		t.Fatalf("create manager: %v", err)
	}
	r := &entity.RestaurantProfile{
		ManagerID:     m.ID,
		Name:          "Test Restaurant",
		BusinessType:  "restaurant",
		CityName:      "Tehran",
		DeliveryPrice: decimal.RequireFromString(deliveryPrice),
		State:         entity.RestaurantApproved,
	}
	if err := e.DB.Create(r).Error; err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	return r
}

func (e *env) createItem(t *testing.T, restID uint, name, price, discount string) *entity.Item {
	t.Helper()
	it := &entity.Item{
		RestaurantID: restID,
		Name:         name,
		Price:        decimal.RequireFromString(price),
		Discount:     decimal.RequireFromString(discount),
		State:        entity.ItemAvailable,
	}
	if err := e.DB.Create(it).Error; err != nil {
		t.Fatalf("create item: %v", err)
	}
	return it
}
