package models

import "time"

type UserRole string

const (
	RoleClient   UserRole = "Client"
	RoleOwner    UserRole = "Owner"
	RoleDelivery UserRole = "Delivery"
)

type User struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Email       string       `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password    string       `gorm:"type:varchar(255);not null" json:"-"`
	Role        UserRole     `gorm:"type:varchar(20);not null" json:"role"`
	Verified    bool         `gorm:"not null;default:false" json:"verified"`
	Restaurants []Restaurant `gorm:"foreignKey:OwnerID" json:"restaurants,omitempty"`
	Orders      []Order      `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
	Rides       []Order      `gorm:"foreignKey:DriverID" json:"rides,omitempty"`
	Payments    []Payment    `gorm:"foreignKey:UserID" json:"payments,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Verification holds the one-time email confirmation code for a user.
// Created on signup and on email change, deleted once consumed.
type Verification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"type:varchar(64);unique;not null" json:"code"`
	UserID    uint      `gorm:"unique;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
