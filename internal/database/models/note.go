package models

import (
	"time"
)

// Note is an append-only journal entry on a contact. Notes are never
// edited after creation and are removed together with their contact.
type Note struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ContactID uint   `gorm:"index;not null" json:"contact_id"`
	AuthorID  uint   `gorm:"not null" json:"author_id"`
	Body      string `gorm:"type:text;not null" json:"body"`
	IsPinned  bool   `gorm:"not null;default:false" json:"is_pinned"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
