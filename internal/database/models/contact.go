package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContactStatus string

const (
	StatusActive   ContactStatus = "active"
	StatusInactive ContactStatus = "inactive"
	StatusLead     ContactStatus = "lead"
	StatusCustomer ContactStatus = "customer"
)

// Valid reports whether s is one of the closed status values. Invalid
// values are rejected at the request boundary, the column itself is a
// plain varchar.
func (s ContactStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusLead, StatusCustomer:
		return true
	}
	return false
}

type Contact struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	OwnerID   uint   `gorm:"index;not null" json:"owner_id"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Email     string `gorm:"size:255;index" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Mobile    string `gorm:"size:20" json:"mobile"`
	JobTitle  string `gorm:"size:100" json:"job_title"`
	CompanyID *uint  `gorm:"index" json:"company_id"`

	Address    string `gorm:"size:500" json:"address"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:100" json:"state"`
	Country    string `gorm:"size:100" json:"country"`
	PostalCode string `gorm:"size:20" json:"postal_code"`

	Linkedin string `gorm:"size:255" json:"linkedin"`
	Twitter  string `gorm:"size:100" json:"twitter"`
	Facebook string `gorm:"size:255" json:"facebook"`

	Photo        string            `gorm:"size:255" json:"-"`
	Birthday     *time.Time        `json:"birthday"`
	Notes        string            `gorm:"type:text" json:"notes"`
	Status       ContactStatus     `gorm:"type:varchar(20);default:'active';index" json:"status"`
	Source       string            `gorm:"size:100" json:"source"`
	CustomFields datatypes.JSONMap `json:"custom_fields"`

	LastContactedAt *time.Time     `json:"last_contacted_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Loaded explicitly by the query layer.
	Company *Company `gorm:"-" json:"company,omitempty"`
	Groups  []Group  `gorm:"-" json:"groups,omitempty"`
}

func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Contact) Initials() string {
	var b strings.Builder
	if r := []rune(c.FirstName); len(r) > 0 {
		b.WriteRune(r[0])
	}
	if r := []rune(c.LastName); len(r) > 0 {
		b.WriteRune(r[0])
	}
	return strings.ToUpper(b.String())
}

func (c *Contact) FullAddress() string {
	return joinAddress(c.Address, c.City, c.State, c.PostalCode, c.Country)
}

// ContactGroup is the contact/group membership row. Memberships are
// managed explicitly so that replace-sync and cascades stay visible in
// the query layer instead of hiding behind association magic.
type ContactGroup struct {
	ContactID uint `gorm:"primaryKey" json:"contact_id"`
	GroupID   uint `gorm:"primaryKey" json:"group_id"`
}
