package database

import (
	"contactcrm/internal/database/models"

	"gorm.io/gorm"
)

// PageSize is the fixed page size for every list endpoint.
const PageSize = 25

type ContactFilters struct {
	Search    string
	Status    models.ContactStatus
	CompanyID uint
	GroupID   uint
	Sort      string
	Direction string
	Page      int
}

// Sort keys are whitelisted, anything else falls back to first_name.
var contactSortKeys = map[string]string{
	"first_name":        "first_name",
	"last_name":         "last_name",
	"email":             "email",
	"status":            "status",
	"created_at":        "created_at",
	"last_contacted_at": "last_contacted_at",
}

// ListContacts returns one page of the owner's contacts plus the total
// match count. A page past the end yields an empty slice, not an error.
func ListContacts(ownerID uint, f ContactFilters) ([]models.Contact, int64, error) {
	db := GetConnect()

	query := db.Model(&models.Contact{}).Where("contacts.owner_id = ?", ownerID)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.
			Joins("LEFT JOIN companies ON companies.id = contacts.company_id AND companies.deleted_at IS NULL").
			Where(db.Where("contacts.first_name LIKE ?", like).
				Or("contacts.last_name LIKE ?", like).
				Or("contacts.email LIKE ?", like).
				Or("contacts.phone LIKE ?", like).
				Or("companies.name LIKE ?", like))
	}
	if f.Status != "" {
		query = query.Where("contacts.status = ?", f.Status)
	}
	if f.CompanyID > 0 {
		query = query.Where("contacts.company_id = ?", f.CompanyID)
	}
	if f.GroupID > 0 {
		query = query.Where("contacts.id IN (?)",
			db.Model(&models.ContactGroup{}).Select("contact_id").Where("group_id = ?", f.GroupID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := contactSortKeys[f.Sort]
	if !ok {
		column = "first_name"
	}
	direction := "ASC"
	if f.Direction == "desc" {
		direction = "DESC"
	}

	page := f.Page
	if page < 1 {
		page = 1
	}

	var contacts []models.Contact
	result := query.
		Select("contacts.*").
		Order("contacts." + column + " " + direction).
		Order("contacts.id ASC").
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Find(&contacts)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return contacts, total, nil
}

// GetContact loads one contact with its company and groups attached.
func GetContact(ownerID, contactID uint) (*models.Contact, error) {
	db := GetConnect()

	var contact models.Contact
	result := db.Where("owner_id = ? AND id = ?", ownerID, contactID).First(&contact)
	if result.Error != nil {
		return nil, result.Error
	}

	if contact.CompanyID != nil {
		var company models.Company
		err := db.Where("owner_id = ? AND id = ?", ownerID, *contact.CompanyID).First(&company).Error
		if err == nil {
			contact.Company = &company
		} else if !IsNotFound(err) {
			return nil, err
		}
	}

	groups, err := GroupsForContact(contact.ID)
	if err != nil {
		return nil, err
	}
	contact.Groups = groups

	return &contact, nil
}

func CreateContact(contact *models.Contact) error {
	db := GetConnect()
	return db.Create(contact).Error
}

// UpdateContactFields applies a partial update. Ownership must already
// have been verified by the caller via GetContact.
func UpdateContactFields(ownerID, contactID uint, fields map[string]interface{}) error {
	db := GetConnect()
	return db.Model(&models.Contact{}).
		Where("owner_id = ? AND id = ?", ownerID, contactID).
		Updates(fields).Error
}

// DeleteContactCascade soft-deletes the contact and hard-deletes its
// notes, activities and group memberships in one transaction. It returns
// the photo blob key so the caller can clean up the blob store.
func DeleteContactCascade(ownerID, contactID uint) (string, error) {
	db := GetConnect()

	var contact models.Contact
	result := db.Where("owner_id = ? AND id = ?", ownerID, contactID).First(&contact)
	if result.Error != nil {
		return "", result.Error
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", contact.ID).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contact_id = ?", contact.ID).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contact_id = ?", contact.ID).Delete(&models.ContactGroup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&contact).Error
	})
	if err != nil {
		return "", err
	}

	return contact.Photo, nil
}

// FindDuplicateContacts returns the owner's contacts matching the given
// email or phone. When both are supplied the result is the union of the
// two matches: the check intentionally over-reports candidates for
// manual review.
func FindDuplicateContacts(ownerID uint, email, phone string) ([]models.Contact, error) {
	if email == "" && phone == "" {
		return nil, nil
	}

	db := GetConnect()

	var match *gorm.DB
	if email != "" {
		match = db.Where("email = ?", email)
	}
	if phone != "" {
		byPhone := db.Where("phone = ?", phone).Or("mobile = ?", phone)
		if match != nil {
			match = match.Or(byPhone)
		} else {
			match = byPhone
		}
	}

	var contacts []models.Contact
	result := db.Where("owner_id = ?", ownerID).Where(match).Find(&contacts)
	if result.Error != nil {
		return nil, result.Error
	}

	return contacts, nil
}
