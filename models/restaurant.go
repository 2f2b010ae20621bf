package models

import "time"

type Category struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:varchar(255);unique;not null" json:"name"`
	CoverImage  *string      `gorm:"type:varchar(255)" json:"cover_image,omitempty"`
	Slug        string       `gorm:"type:varchar(255);unique;not null" json:"slug"`
	Restaurants []Restaurant `gorm:"foreignKey:CategoryID" json:"restaurants,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Restaurant struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	CoverImage   string     `gorm:"type:varchar(255)" json:"cover_image"`
	Address      string     `gorm:"type:varchar(255);not null" json:"address"`
	CategoryID   *uint      `gorm:"index" json:"category_id,omitempty"`
	Category     *Category  `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	OwnerID      uint       `gorm:"index;not null" json:"owner_id"`
	Owner        User       `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Menu         []Dish     `gorm:"foreignKey:RestaurantID" json:"menu,omitempty"`
	Orders       []Order    `gorm:"foreignKey:RestaurantID" json:"orders,omitempty"`
	IsPromoted   bool       `gorm:"not null;default:false" json:"is_promoted"`
	PromoteUntil *time.Time `json:"promote_until,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
