package models

import (
	"time"

	"gorm.io/datatypes"
)

type Hotel struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Location    string         `gorm:"size:255;not null" json:"location"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	Price       float64        `gorm:"type:decimal(10,2);not null" json:"price"`
	Reviews     *string        `gorm:"type:text" json:"reviews"`
	Rating      *float64       `gorm:"type:decimal(3,2)" json:"rating"`
	Amenities   datatypes.JSON `json:"amenities"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
