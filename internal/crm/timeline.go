package crm

import (
	"time"

	"contactcrm/internal/database"
	"contactcrm/internal/database/models"
)

// LogActivity appends a row to the contact's timeline. Call, email and
// meeting activities also stamp last_contacted_at with now.
func (s *Service) LogActivity(ownerID, contactID uint, typ models.ActivityType, title, description string, scheduledAt *time.Time) (*models.Activity, error) {
	if _, err := database.GetContact(ownerID, contactID); err != nil {
		return nil, mapDBErr(err)
	}

	activity := &models.Activity{
		ContactID:   contactID,
		AuthorID:    ownerID,
		Type:        typ,
		Title:       title,
		Description: description,
		ScheduledAt: scheduledAt,
	}
	if activity.Type == "" {
		activity.Type = models.ActivityNote
	}

	if err := database.CreateActivity(activity); err != nil {
		return nil, err
	}

	return activity, nil
}

// CompleteActivity stamps completed_at on the activity, checking
// ownership through its contact.
func (s *Service) CompleteActivity(ownerID, activityID uint) (*models.Activity, error) {
	activity, err := database.CompleteActivity(ownerID, activityID)
	if err != nil {
		return nil, mapDBErr(err)
	}
	return activity, nil
}

// AddNote appends a note to the contact. Notes have no side effects
// beyond their own persistence.
func (s *Service) AddNote(ownerID, contactID uint, body string, pinned bool) (*models.Note, error) {
	if _, err := database.GetContact(ownerID, contactID); err != nil {
		return nil, mapDBErr(err)
	}

	note := &models.Note{
		ContactID: contactID,
		AuthorID:  ownerID,
		Body:      body,
		IsPinned:  pinned,
	}

	if err := database.CreateNote(note); err != nil {
		return nil, err
	}

	return note, nil
}
