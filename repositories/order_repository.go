package repositories

import (
	"eats-backend/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateItem persists one order line snapshot. Items are written one by
// one before the order that links them; there is deliberately no
// surrounding transaction.
func (r *OrderRepository) CreateItem(item *models.OrderItem) error {
	return r.db.Create(item).Error
}

func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Restaurant").Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByCustomer(customerID uint, status *models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	q := r.db.Preload("Restaurant").Preload("Items").Where("customer_id = ?", customerID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	err := q.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Save(order *models.Order) error {
	return r.db.Save(order).Error
}

// UpdateStatus writes just the status column.
func (r *OrderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

// UpdateDriver assigns a driver without touching the item associations.
func (r *OrderRepository) UpdateDriver(id uint, driverID uint) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("driver_id", driverID).Error
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepository) FindByUser(userID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("user_id = ?", userID).Find(&payments).Error
	return payments, err
}
