package models

import "time"

// HeroImageID is the only row id the hero_images table ever holds.
const HeroImageID uint = 1

type HeroImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement:false"`
	ImageURL  string `gorm:"size:255;not null"`
	UpdatedAt time.Time
}
