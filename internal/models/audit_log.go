package models

import (
	"time"

	"gorm.io/datatypes"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Admin tokens carry id 0, so ActorEmail is what identifies them.
	ActorID    uint   `json:"actor_id"`
	ActorEmail string `gorm:"size:255" json:"actor_email"`

	// "hotel", "package", "hero_image"
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   uint   `gorm:"index" json:"entity_id"`

	Action      AuditAction `gorm:"size:20" json:"action"`
	Description string      `gorm:"size:255" json:"description"`

	BeforeData datatypes.JSON `json:"before_data"`
	AfterData  datatypes.JSON `json:"after_data"`
}

// JSONNull is written instead of SQL NULL so JSON columns always scan back
// as a document.
var JSONNull = datatypes.JSON("null")
