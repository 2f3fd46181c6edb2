package database

import (
	"contactcrm/internal/database/models"
)

func CreateNote(note *models.Note) error {
	db := GetConnect()
	return db.Create(note).Error
}

// ListNotes returns a contact's notes, pinned first, newest first.
func ListNotes(contactID uint) ([]models.Note, error) {
	db := GetConnect()

	var notes []models.Note
	result := db.Where("contact_id = ?", contactID).
		Order("is_pinned DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&notes)
	if result.Error != nil {
		return nil, result.Error
	}

	return notes, nil
}
