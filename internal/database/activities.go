package database

import (
	"time"

	"contactcrm/internal/database/models"

	"gorm.io/gorm"
)

// CreateActivity appends a timeline row. Contact-type activities (call,
// email, meeting) also stamp the parent contact's last_contacted_at with
// the current time, in the same transaction. The stamp always overwrites
// the previous value: a new logged event is by definition the latest one.
func CreateActivity(activity *models.Activity) error {
	db := GetConnect()

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(activity).Error; err != nil {
			return err
		}
		if activity.Type.IsContactEvent() {
			now := time.Now()
			err := tx.Model(&models.Contact{}).
				Where("id = ?", activity.ContactID).
				Update("last_contacted_at", now).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ListActivities returns a contact's newest timeline rows, up to limit.
func ListActivities(contactID uint, limit int) ([]models.Activity, error) {
	db := GetConnect()

	query := db.Where("contact_id = ?", contactID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var activities []models.Activity
	result := query.Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

// CompleteActivity marks an activity done. Ownership is checked through
// the parent contact.
func CompleteActivity(ownerID, activityID uint) (*models.Activity, error) {
	db := GetConnect()

	var activity models.Activity
	result := db.Model(&models.Activity{}).
		Select("activities.*").
		Joins("JOIN contacts ON contacts.id = activities.contact_id").
		Where("contacts.owner_id = ? AND activities.id = ?", ownerID, activityID).
		First(&activity)
	if result.Error != nil {
		return nil, result.Error
	}

	now := time.Now()
	err := db.Model(&models.Activity{}).
		Where("id = ?", activity.ID).
		Update("completed_at", now).Error
	if err != nil {
		return nil, err
	}
	activity.CompletedAt = &now

	return &activity, nil
}

// UpcomingActivities lists the owner's scheduled, not yet completed
// activities from now on, soonest first.
func UpcomingActivities(ownerID uint, limit int) ([]models.Activity, error) {
	return scheduledActivities(ownerID, limit, true)
}

// OverdueActivities lists scheduled activities whose time has passed
// without being completed.
func OverdueActivities(ownerID uint, limit int) ([]models.Activity, error) {
	return scheduledActivities(ownerID, limit, false)
}

func scheduledActivities(ownerID uint, limit int, upcoming bool) ([]models.Activity, error) {
	db := GetConnect()

	query := db.Model(&models.Activity{}).
		Select("activities.*").
		Joins("JOIN contacts ON contacts.id = activities.contact_id AND contacts.deleted_at IS NULL").
		Where("contacts.owner_id = ?", ownerID).
		Where("activities.scheduled_at IS NOT NULL").
		Where("activities.completed_at IS NULL")

	now := time.Now()
	if upcoming {
		query = query.Where("activities.scheduled_at >= ?", now).Order("activities.scheduled_at ASC")
	} else {
		query = query.Where("activities.scheduled_at < ?", now).Order("activities.scheduled_at ASC")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var activities []models.Activity
	result := query.Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

// DashboardCounts holds the owner's entity totals for the dashboard.
type DashboardCounts struct {
	Contacts  int64 `json:"contacts"`
	Companies int64 `json:"companies"`
	Groups    int64 `json:"groups"`
}

func GetDashboardCounts(ownerID uint) (*DashboardCounts, error) {
	db := GetConnect()

	var counts DashboardCounts
	err := db.Model(&models.Contact{}).Where("owner_id = ?", ownerID).Count(&counts.Contacts).Error
	if err != nil {
		return nil, err
	}
	err = db.Model(&models.Company{}).Where("owner_id = ?", ownerID).Count(&counts.Companies).Error
	if err != nil {
		return nil, err
	}
	err = db.Model(&models.Group{}).Where("owner_id = ?", ownerID).Count(&counts.Groups).Error
	if err != nil {
		return nil, err
	}

	return &counts, nil
}
