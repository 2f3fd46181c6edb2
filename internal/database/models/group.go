package models

import (
	"time"
)

const DefaultGroupColor = "#6B7280"

type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OwnerID     uint   `gorm:"index;not null" json:"owner_id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Color       string `gorm:"size:7;default:'#6B7280'" json:"color"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled by the query layer, not a column.
	ContactCount int64 `gorm:"-" json:"contact_count"`
}
