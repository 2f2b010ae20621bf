package services

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"eats-backend/models"
	"eats-backend/utils"
)

var testDBSeq atomic.Int64

// setupTestDB opens a fresh in-memory database per test so tests never
// see each other's rows. The named shared-cache DSN keeps gorm's pooled
// connections on the same database.
func setupTestDB() *gorm.DB {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.User{}, &models.Verification{},
		&models.Category{}, &models.Restaurant{}, &models.Dish{},
		&models.OrderItem{}, &models.Order{},
		&models.Payment{},
	)
	if err != nil {
		panic(err)
	}
	utils.InitLogger()
	return db
}

// fakeMailer records sent verification mails instead of hitting Mailgun.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	Email string
	Code  string
}

func (f *fakeMailer) SendVerificationEmail(email, code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{Email: email, Code: code})
}

func (f *fakeMailer) sentMails() []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMail(nil), f.sent...)
}

func seedUser(db *gorm.DB, email string, role models.UserRole) *models.User {
	hash, err := utils.HashPassword("secret")
	if err != nil {
		panic(err)
	}
	user := &models.User{Email: email, Password: hash, Role: role}
	if err := db.Create(user).Error; err != nil {
		panic(err)
	}
	return user
}

func seedRestaurant(db *gorm.DB, owner *models.User, name string) *models.Restaurant {
	restaurant := &models.Restaurant{
		Name:    name,
		Address: "Jl. Test No. 1",
		OwnerID: owner.ID,
	}
	if err := db.Create(restaurant).Error; err != nil {
		panic(err)
	}
	return restaurant
}

func seedDish(db *gorm.DB, restaurant *models.Restaurant, name string, price float64, options []models.DishOption) *models.Dish {
	dish := &models.Dish{
		Name:         name,
		Price:        price,
		Description:  "test dish",
		RestaurantID: restaurant.ID,
		Options:      options,
	}
	if err := db.Create(dish).Error; err != nil {
		panic(err)
	}
	return dish
}

func seedOrder(db *gorm.DB, customer, driver *models.User, restaurant *models.Restaurant, status models.OrderStatus) *models.Order {
	order := &models.Order{
		RestaurantID: &restaurant.ID,
		Status:       status,
	}
	if customer != nil {
		order.CustomerID = &customer.ID
	}
	if driver != nil {
		order.DriverID = &driver.ID
	}
	if err := db.Create(order).Error; err != nil {
		panic(err)
	}
	return order
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
