package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Company struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	OwnerID    uint   `gorm:"index;not null" json:"owner_id"`
	Name       string `gorm:"size:100;index;not null" json:"name"`
	Email      string `gorm:"size:255" json:"email"`
	Phone      string `gorm:"size:20" json:"phone"`
	Website    string `gorm:"size:255" json:"website"`
	Industry   string `gorm:"size:100" json:"industry"`
	Address    string `gorm:"size:500" json:"address"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:100" json:"state"`
	Country    string `gorm:"size:100" json:"country"`
	PostalCode string `gorm:"size:20" json:"postal_code"`
	Logo       string `gorm:"size:255" json:"-"`
	Notes      string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Filled by the query layer, not a column.
	ContactCount int64 `gorm:"-" json:"contact_count"`
}

// FullAddress joins the non-empty address parts with commas. Returns ""
// when every part is empty.
func (c *Company) FullAddress() string {
	return joinAddress(c.Address, c.City, c.State, c.PostalCode, c.Country)
}

func joinAddress(parts ...string) string {
	filled := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			filled = append(filled, p)
		}
	}
	return strings.Join(filled, ", ")
}
