package models

import (
	"time"

	"gorm.io/datatypes"
)

// Package is a sellable tour package. Activities is a free-form JSON document.
type Package struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Location    string         `gorm:"size:255;not null" json:"location"`
	Description string         `gorm:"type:text;not null" json:"description"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	Price       float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	Reviews     *string        `gorm:"type:text" json:"reviews"`
	Rating      *float64       `gorm:"type:decimal(3,2)" json:"rating"`
	Activities  datatypes.JSON `json:"activities"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
