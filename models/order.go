package models

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCooking   OrderStatus = "Cooking"
	StatusCooked    OrderStatus = "Cooked"
	StatusPickedUp  OrderStatus = "PickedUp"
	StatusDelivered OrderStatus = "Delivered"
)

// OrderItemOption records the choice a customer made for one dish option,
// by name only. Prices are resolved against the dish at order time and
// never re-evaluated.
type OrderItemOption struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

// OrderItem is an immutable snapshot of one dish selection.
type OrderItem struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	DishID    uint              `gorm:"not null" json:"dish_id"`
	Dish      Dish              `gorm:"foreignKey:DishID" json:"dish,omitempty"`
	Options   []OrderItemOption `gorm:"serializer:json" json:"options,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CustomerID   *uint       `gorm:"index" json:"customer_id,omitempty"`
	Customer     *User       `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"customer,omitempty"`
	DriverID     *uint       `gorm:"index" json:"driver_id,omitempty"`
	Driver       *User       `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	RestaurantID *uint       `gorm:"index" json:"restaurant_id,omitempty"`
	Restaurant   *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:SET NULL" json:"restaurant,omitempty"`
	Items        []OrderItem `gorm:"many2many:order_order_items" json:"items,omitempty"`
	Total        *float64    `json:"total,omitempty"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
