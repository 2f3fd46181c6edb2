package database

import (
	"errors"

	"contactcrm/internal/database/models"

	"gorm.io/gorm"
)

// ErrUnknownGroup is returned by SyncContactGroups when a requested
// group id does not exist within the owner's scope.
var ErrUnknownGroup = errors.New("unknown group id")

// ListGroups returns all of the owner's groups with their member counts.
// Groups are few, so they are not paginated.
func ListGroups(ownerID uint) ([]models.Group, error) {
	db := GetConnect()

	var groups []models.Group
	result := db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}

	if len(groups) == 0 {
		return groups, nil
	}

	ids := make([]uint, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}

	// Only live contacts count as members.
	var rows []struct {
		GroupID uint
		N       int64
	}
	err := db.Table("contact_groups").
		Select("contact_groups.group_id AS group_id, COUNT(*) AS n").
		Joins("JOIN contacts ON contacts.id = contact_groups.contact_id AND contacts.deleted_at IS NULL").
		Where("contact_groups.group_id IN ?", ids).
		Group("contact_groups.group_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.GroupID] = r.N
	}
	for i := range groups {
		groups[i].ContactCount = counts[groups[i].ID]
	}

	return groups, nil
}

func GetGroup(ownerID, groupID uint) (*models.Group, error) {
	db := GetConnect()

	var group models.Group
	result := db.Where("owner_id = ? AND id = ?", ownerID, groupID).First(&group)
	if result.Error != nil {
		return nil, result.Error
	}

	return &group, nil
}

func CreateGroup(group *models.Group) error {
	db := GetConnect()
	if group.Color == "" {
		group.Color = models.DefaultGroupColor
	}
	return db.Create(group).Error
}

func UpdateGroupFields(ownerID, groupID uint, fields map[string]interface{}) error {
	db := GetConnect()
	return db.Model(&models.Group{}).
		Where("owner_id = ? AND id = ?", ownerID, groupID).
		Updates(fields).Error
}

// DeleteGroup hard-deletes a group and its membership rows. Contacts
// themselves are untouched.
func DeleteGroup(ownerID, groupID uint) error {
	db := GetConnect()

	var group models.Group
	result := db.Where("owner_id = ? AND id = ?", ownerID, groupID).First(&group)
	if result.Error != nil {
		return result.Error
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", group.ID).Delete(&models.ContactGroup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
}

// GroupsForContact returns the groups a contact belongs to.
func GroupsForContact(contactID uint) ([]models.Group, error) {
	db := GetConnect()

	var groups []models.Group
	result := db.Model(&models.Group{}).
		Joins("JOIN contact_groups ON contact_groups.group_id = groups.id").
		Where("contact_groups.contact_id = ?", contactID).
		Order("groups.name ASC").
		Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}

	return groups, nil
}

// ValidateGroupIDs checks that every id names a group owned by ownerID.
func ValidateGroupIDs(ownerID uint, groupIDs []uint) error {
	unique := dedupe(groupIDs)
	if len(unique) == 0 {
		return nil
	}

	db := GetConnect()

	var owned int64
	err := db.Model(&models.Group{}).
		Where("owner_id = ? AND id IN ?", ownerID, unique).
		Count(&owned).Error
	if err != nil {
		return err
	}
	if owned != int64(len(unique)) {
		return ErrUnknownGroup
	}

	return nil
}

func dedupe(ids []uint) []uint {
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	return unique
}

// SyncContactGroups replaces the contact's membership set with exactly
// the given group ids. Every id must name a group owned by ownerID or
// the whole sync fails with ErrUnknownGroup.
func SyncContactGroups(ownerID, contactID uint, groupIDs []uint) error {
	if err := ValidateGroupIDs(ownerID, groupIDs); err != nil {
		return err
	}

	db := GetConnect()
	unique := dedupe(groupIDs)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", contactID).Delete(&models.ContactGroup{}).Error; err != nil {
			return err
		}
		for _, id := range unique {
			row := models.ContactGroup{ContactID: contactID, GroupID: id}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
