package models

import "time"

// Payment is an append-only record of an external transaction against a
// restaurant. Creating one is what promotes the restaurant.
type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	TransactionID string     `gorm:"type:varchar(255);not null" json:"transaction_id"`
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	User          User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RestaurantID  uint       `gorm:"index;not null" json:"restaurant_id"`
	Restaurant    Restaurant `gorm:"foreignKey:RestaurantID" json:"restaurant,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
