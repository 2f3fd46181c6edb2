package crm

import (
	"contactcrm/internal/database"
	"contactcrm/internal/database/models"
)

const blobCategoryCompanies = "companies"

type CompanyInput struct {
	Name       string
	Email      string
	Phone      string
	Website    string
	Industry   string
	Address    string
	City       string
	State      string
	Country    string
	PostalCode string
	Notes      string
}

// CreateCompany persists a company for ownerID, storing the logo blob
// first so a blob failure leaves no metadata behind.
func (s *Service) CreateCompany(ownerID uint, in CompanyInput, logo *Photo) (*models.Company, error) {
	logoKey := ""
	if logo != nil {
		key, err := s.blobs.Store(blobCategoryCompanies, logo.Data, logo.Ext)
		if err != nil {
			return nil, &StorageError{Op: "store", Err: err}
		}
		logoKey = key
	}

	company := &models.Company{
		OwnerID:    ownerID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Website:    in.Website,
		Industry:   in.Industry,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		Country:    in.Country,
		PostalCode: in.PostalCode,
		Logo:       logoKey,
		Notes:      in.Notes,
	}

	if err := database.CreateCompany(company); err != nil {
		if logoKey != "" {
			_ = s.blobs.Delete(logoKey)
		}
		return nil, err
	}

	return database.GetCompany(ownerID, company.ID)
}

// UpdateCompany replaces the company's fields after verifying
// ownership. A new logo deletes the old blob before storing its
// replacement.
func (s *Service) UpdateCompany(ownerID, companyID uint, in CompanyInput, logo *Photo) (*models.Company, error) {
	existing, err := database.GetCompany(ownerID, companyID)
	if err != nil {
		return nil, mapDBErr(err)
	}

	fields := map[string]interface{}{
		"name":        in.Name,
		"email":       in.Email,
		"phone":       in.Phone,
		"website":     in.Website,
		"industry":    in.Industry,
		"address":     in.Address,
		"city":        in.City,
		"state":       in.State,
		"country":     in.Country,
		"postal_code": in.PostalCode,
		"notes":       in.Notes,
	}

	newKey := ""
	if logo != nil {
		if existing.Logo != "" {
			if err := s.blobs.Delete(existing.Logo); err != nil {
				return nil, &StorageError{Op: "delete", Err: err}
			}
		}
		key, err := s.blobs.Store(blobCategoryCompanies, logo.Data, logo.Ext)
		if err != nil {
			return nil, &StorageError{Op: "store", Err: err}
		}
		newKey = key
		fields["logo"] = key
	}

	if err := database.UpdateCompanyFields(ownerID, companyID, fields); err != nil {
		if newKey != "" {
			_ = s.blobs.Delete(newKey)
		}
		return nil, err
	}

	return database.GetCompany(ownerID, companyID)
}

// DeleteCompany removes the logo blob and soft-deletes the company.
// Its contacts survive with company_id nulled, never cascade-deleted.
func (s *Service) DeleteCompany(ownerID, companyID uint) error {
	existing, err := database.GetCompany(ownerID, companyID)
	if err != nil {
		return mapDBErr(err)
	}

	if existing.Logo != "" {
		if err := s.blobs.Delete(existing.Logo); err != nil {
			return &StorageError{Op: "delete", Err: err}
		}
	}

	if _, err := database.DeleteCompanyCascade(ownerID, companyID); err != nil {
		return mapDBErr(err)
	}

	return nil
}
