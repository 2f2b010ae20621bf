package models

import "time"

// DishChoice is a nested selection under a DishOption, e.g. option "Size"
// with choices "Large" (+3) and "Regular".
type DishChoice struct {
	Name  string   `json:"name"`
	Extra *float64 `json:"extra,omitempty"`
}

// DishOption is a named customization on a dish. It carries either a flat
// Extra or a list of Choices with their own extras.
type DishOption struct {
	Name    string       `json:"name"`
	Extra   *float64     `json:"extra,omitempty"`
	Choices []DishChoice `json:"choices,omitempty"`
}

type Dish struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	Price        float64      `gorm:"not null" json:"price"`
	Photo        *string      `gorm:"type:varchar(255)" json:"photo,omitempty"`
	Description  string       `gorm:"type:varchar(255)" json:"description"`
	RestaurantID uint         `gorm:"index;not null" json:"restaurant_id"`
	Restaurant   Restaurant   `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"restaurant,omitempty"`
	Options      []DishOption `gorm:"serializer:json" json:"options,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
