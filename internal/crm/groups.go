package crm

import (
	"contactcrm/internal/database"
	"contactcrm/internal/database/models"
)

type GroupInput struct {
	Name        string
	Color       string
	Description string
}

func (s *Service) CreateGroup(ownerID uint, in GroupInput) (*models.Group, error) {
	group := &models.Group{
		OwnerID:     ownerID,
		Name:        in.Name,
		Color:       in.Color,
		Description: in.Description,
	}

	if err := database.CreateGroup(group); err != nil {
		return nil, err
	}

	return group, nil
}

func (s *Service) UpdateGroup(ownerID, groupID uint, in GroupInput) (*models.Group, error) {
	if _, err := database.GetGroup(ownerID, groupID); err != nil {
		return nil, mapDBErr(err)
	}

	fields := map[string]interface{}{
		"name":        in.Name,
		"description": in.Description,
	}
	if in.Color != "" {
		fields["color"] = in.Color
	}

	if err := database.UpdateGroupFields(ownerID, groupID, fields); err != nil {
		return nil, err
	}

	return database.GetGroup(ownerID, groupID)
}

// DeleteGroup hard-deletes the group together with its membership rows.
func (s *Service) DeleteGroup(ownerID, groupID uint) error {
	if err := database.DeleteGroup(ownerID, groupID); err != nil {
		return mapDBErr(err)
	}
	return nil
}
