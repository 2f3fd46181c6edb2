package crm

import (
	"errors"
	"time"

	"contactcrm/internal/database"
	"contactcrm/internal/database/models"

	"gorm.io/datatypes"
)

const blobCategoryContacts = "contacts"

// ContactInput carries the validated fields of a contact create or
// update. Update is full replacement of these fields; photo and group
// membership travel separately because they may be absent.
type ContactInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Mobile       string
	JobTitle     string
	CompanyID    *uint
	Address      string
	City         string
	State        string
	Country      string
	PostalCode   string
	Linkedin     string
	Twitter      string
	Facebook     string
	Birthday     *time.Time
	Notes        string
	Status       models.ContactStatus
	Source       string
	CustomFields map[string]interface{}
}

// CreateContact persists a contact for ownerID. The photo blob is
// written first: if it fails nothing is persisted, if the row insert
// fails afterwards the blob is removed again. A nil groupIDs leaves the
// membership empty, otherwise it is set to exactly those groups. One
// "Contact created" activity is always appended.
func (s *Service) CreateContact(ownerID uint, in ContactInput, photo *Photo, groupIDs []uint) (*models.Contact, error) {
	if err := s.checkContactRefs(ownerID, in.CompanyID, groupIDs); err != nil {
		return nil, err
	}

	photoKey := ""
	if photo != nil {
		key, err := s.blobs.Store(blobCategoryContacts, photo.Data, photo.Ext)
		if err != nil {
			return nil, &StorageError{Op: "store", Err: err}
		}
		photoKey = key
	}

	contact := &models.Contact{
		OwnerID:      ownerID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Mobile:       in.Mobile,
		JobTitle:     in.JobTitle,
		CompanyID:    in.CompanyID,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Country:      in.Country,
		PostalCode:   in.PostalCode,
		Linkedin:     in.Linkedin,
		Twitter:      in.Twitter,
		Facebook:     in.Facebook,
		Photo:        photoKey,
		Birthday:     in.Birthday,
		Notes:        in.Notes,
		Status:       in.Status,
		Source:       in.Source,
		CustomFields: datatypes.JSONMap(in.CustomFields),
	}
	if contact.Status == "" {
		contact.Status = models.StatusActive
	}

	if err := database.CreateContact(contact); err != nil {
		if photoKey != "" {
			_ = s.blobs.Delete(photoKey)
		}
		return nil, err
	}

	if groupIDs != nil {
		if err := database.SyncContactGroups(ownerID, contact.ID, groupIDs); err != nil {
			return nil, mapGroupErr(err)
		}
	}

	activity := &models.Activity{
		ContactID: contact.ID,
		AuthorID:  ownerID,
		Type:      models.ActivityNote,
		Title:     "Contact created",
	}
	if err := database.CreateActivity(activity); err != nil {
		return nil, err
	}

	return database.GetContact(ownerID, contact.ID)
}

// UpdateContact replaces the contact's fields after verifying
// ownership. A new photo deletes the old blob before storing the new
// one. Group sync is replace-semantics when groupIDs is non-nil and a
// no-op otherwise.
func (s *Service) UpdateContact(ownerID, contactID uint, in ContactInput, photo *Photo, groupIDs []uint) (*models.Contact, error) {
	existing, err := database.GetContact(ownerID, contactID)
	if err != nil {
		return nil, mapDBErr(err)
	}

	if err := s.checkContactRefs(ownerID, in.CompanyID, groupIDs); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"first_name":    in.FirstName,
		"last_name":     in.LastName,
		"email":         in.Email,
		"phone":         in.Phone,
		"mobile":        in.Mobile,
		"job_title":     in.JobTitle,
		"company_id":    in.CompanyID,
		"address":       in.Address,
		"city":          in.City,
		"state":         in.State,
		"country":       in.Country,
		"postal_code":   in.PostalCode,
		"linkedin":      in.Linkedin,
		"twitter":       in.Twitter,
		"facebook":      in.Facebook,
		"birthday":      in.Birthday,
		"notes":         in.Notes,
		"source":        in.Source,
		"custom_fields": datatypes.JSONMap(in.CustomFields),
	}
	if in.Status != "" {
		fields["status"] = in.Status
	}

	newKey := ""
	if photo != nil {
		if existing.Photo != "" {
			if err := s.blobs.Delete(existing.Photo); err != nil {
				return nil, &StorageError{Op: "delete", Err: err}
			}
		}
		key, err := s.blobs.Store(blobCategoryContacts, photo.Data, photo.Ext)
		if err != nil {
			return nil, &StorageError{Op: "store", Err: err}
		}
		newKey = key
		fields["photo"] = key
	}

	if err := database.UpdateContactFields(ownerID, contactID, fields); err != nil {
		if newKey != "" {
			_ = s.blobs.Delete(newKey)
		}
		return nil, err
	}

	if groupIDs != nil {
		if err := database.SyncContactGroups(ownerID, contactID, groupIDs); err != nil {
			return nil, mapGroupErr(err)
		}
	}

	return database.GetContact(ownerID, contactID)
}

// DeleteContact removes the photo blob, soft-deletes the contact and
// hard-deletes its notes, activities and memberships.
func (s *Service) DeleteContact(ownerID, contactID uint) error {
	existing, err := database.GetContact(ownerID, contactID)
	if err != nil {
		return mapDBErr(err)
	}

	if existing.Photo != "" {
		if err := s.blobs.Delete(existing.Photo); err != nil {
			return &StorageError{Op: "delete", Err: err}
		}
	}

	if _, err := database.DeleteContactCascade(ownerID, contactID); err != nil {
		return mapDBErr(err)
	}

	return nil
}

// CheckDuplicates reports contacts that share the email or the
// phone/mobile number. With both given the result is the union of
// matches, never the intersection.
func (s *Service) CheckDuplicates(ownerID uint, email, phone string) ([]models.Contact, error) {
	return database.FindDuplicateContacts(ownerID, email, phone)
}

// checkContactRefs rejects references that do not resolve inside the
// owner's scope before any write happens.
func (s *Service) checkContactRefs(ownerID uint, companyID *uint, groupIDs []uint) error {
	if companyID != nil {
		if _, err := database.GetCompany(ownerID, *companyID); err != nil {
			return mapDBErr(err)
		}
	}
	if groupIDs != nil {
		if err := database.ValidateGroupIDs(ownerID, groupIDs); err != nil {
			return mapGroupErr(err)
		}
	}
	return nil
}

func mapGroupErr(err error) error {
	if errors.Is(err, database.ErrUnknownGroup) {
		return ErrConflict
	}
	return err
}
