package models

import "time"

type BookingType string

const (
	BookingTypeHotel   BookingType = "hotel"
	BookingTypePackage BookingType = "package"
)

func (t BookingType) Valid() bool {
	return t == BookingTypeHotel || t == BookingTypePackage
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Booking links one user to one catalog item. ItemID resolves against the
// hotels or packages table depending on Type, so it has no foreign key.
type Booking struct {
	ID          uint          `gorm:"primaryKey"`
	UserID      uint          `gorm:"not null;index"`
	User        *User         `gorm:"constraint:OnDelete:RESTRICT"`
	Type        BookingType   `gorm:"size:20;not null"`
	ItemID      uint          `gorm:"not null"`
	BookingDate time.Time     `gorm:"type:date;not null;index"`
	Status      BookingStatus `gorm:"size:20;not null;default:'Pending'"`
	CreatedAt   time.Time
}
