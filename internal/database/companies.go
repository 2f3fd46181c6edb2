package database

import (
	"contactcrm/internal/database/models"

	"gorm.io/gorm"
)

type CompanyFilters struct {
	Search    string
	Industry  string
	Sort      string
	Direction string
	Page      int
}

var companySortKeys = map[string]string{
	"name":       "name",
	"email":      "email",
	"industry":   "industry",
	"city":       "city",
	"created_at": "created_at",
}

// ListCompanies returns one page of the owner's companies with their
// live contact counts, plus the total match count.
func ListCompanies(ownerID uint, f CompanyFilters) ([]models.Company, int64, error) {
	db := GetConnect()

	query := db.Model(&models.Company{}).Where("owner_id = ?", ownerID)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where(db.Where("name LIKE ?", like).
			Or("email LIKE ?", like).
			Or("industry LIKE ?", like))
	}
	if f.Industry != "" {
		query = query.Where("industry = ?", f.Industry)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := companySortKeys[f.Sort]
	if !ok {
		column = "name"
	}
	direction := "ASC"
	if f.Direction == "desc" {
		direction = "DESC"
	}

	page := f.Page
	if page < 1 {
		page = 1
	}

	var companies []models.Company
	result := query.
		Order(column + " " + direction).
		Order("id ASC").
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Find(&companies)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	if err := fillContactCounts(ownerID, companies); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func fillContactCounts(ownerID uint, companies []models.Company) error {
	if len(companies) == 0 {
		return nil
	}

	db := GetConnect()

	ids := make([]uint, 0, len(companies))
	for _, c := range companies {
		ids = append(ids, c.ID)
	}

	var rows []struct {
		CompanyID uint
		N         int64
	}
	err := db.Model(&models.Contact{}).
		Select("company_id AS company_id, COUNT(*) AS n").
		Where("owner_id = ? AND company_id IN ?", ownerID, ids).
		Group("company_id").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.CompanyID] = r.N
	}
	for i := range companies {
		companies[i].ContactCount = counts[companies[i].ID]
	}

	return nil
}

func GetCompany(ownerID, companyID uint) (*models.Company, error) {
	db := GetConnect()

	var company models.Company
	result := db.Where("owner_id = ? AND id = ?", ownerID, companyID).First(&company)
	if result.Error != nil {
		return nil, result.Error
	}

	err := db.Model(&models.Contact{}).
		Where("owner_id = ? AND company_id = ?", ownerID, companyID).
		Count(&company.ContactCount).Error
	if err != nil {
		return nil, err
	}

	return &company, nil
}

// CompanyContacts lists the company's contacts ordered by first name.
func CompanyContacts(ownerID, companyID uint) ([]models.Contact, error) {
	db := GetConnect()

	var contacts []models.Contact
	result := db.Where("owner_id = ? AND company_id = ?", ownerID, companyID).
		Order("first_name ASC").
		Find(&contacts)
	if result.Error != nil {
		return nil, result.Error
	}

	return contacts, nil
}

func CreateCompany(company *models.Company) error {
	db := GetConnect()
	return db.Create(company).Error
}

func UpdateCompanyFields(ownerID, companyID uint, fields map[string]interface{}) error {
	db := GetConnect()
	return db.Model(&models.Company{}).
		Where("owner_id = ? AND id = ?", ownerID, companyID).
		Updates(fields).Error
}

// DeleteCompanyCascade soft-deletes the company after detaching its
// contacts. Contacts are never deleted with their company, their
// company_id is nulled instead. Returns the logo blob key for cleanup.
func DeleteCompanyCascade(ownerID, companyID uint) (string, error) {
	db := GetConnect()

	var company models.Company
	result := db.Where("owner_id = ? AND id = ?", ownerID, companyID).First(&company)
	if result.Error != nil {
		return "", result.Error
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Contact{}).
			Where("owner_id = ? AND company_id = ?", ownerID, company.ID).
			Update("company_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&company).Error
	})
	if err != nil {
		return "", err
	}

	return company.Logo, nil
}

// ListIndustries returns the owner's distinct non-empty industries for
// the filter dropdown.
func ListIndustries(ownerID uint) ([]string, error) {
	db := GetConnect()

	var industries []string
	result := db.Model(&models.Company{}).
		Where("owner_id = ? AND industry <> ''", ownerID).
		Distinct().
		Order("industry ASC").
		Pluck("industry", &industries)
	if result.Error != nil {
		return nil, result.Error
	}

	return industries, nil
}
