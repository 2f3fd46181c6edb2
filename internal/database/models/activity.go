package models

import (
	"time"
)

type ActivityType string

const (
	ActivityCall    ActivityType = "call"
	ActivityEmail   ActivityType = "email"
	ActivityMeeting ActivityType = "meeting"
	ActivityNote    ActivityType = "note"
	ActivityTask    ActivityType = "task"
	ActivityOther   ActivityType = "other"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityCall, ActivityEmail, ActivityMeeting, ActivityNote, ActivityTask, ActivityOther:
		return true
	}
	return false
}

// IsContactEvent reports whether logging this activity counts as having
// been in touch with the contact. Only these three advance
// last_contacted_at; notes, tasks and the rest never do.
func (t ActivityType) IsContactEvent() bool {
	return t == ActivityCall || t == ActivityEmail || t == ActivityMeeting
}

// Activity is one row on a contact's interaction timeline.
type Activity struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	ContactID   uint         `gorm:"index:idx_activities_contact_type;not null" json:"contact_id"`
	AuthorID    uint         `gorm:"not null" json:"author_id"`
	Type        ActivityType `gorm:"type:varchar(20);default:'note';index:idx_activities_contact_type" json:"type"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	ScheduledAt *time.Time   `json:"scheduled_at"`
	CompletedAt *time.Time   `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Icon returns the timeline marker for the activity type.
func (a *Activity) Icon() string {
	switch a.Type {
	case ActivityCall:
		return "📞"
	case ActivityEmail:
		return "✉️"
	case ActivityMeeting:
		return "📅"
	case ActivityNote:
		return "📝"
	case ActivityTask:
		return "✅"
	default:
		return "📌"
	}
}
