package handlers

import (
	"net/http"

	"contactcrm/internal/crm"
	"contactcrm/internal/database"
	"contactcrm/internal/database/models"
	"contactcrm/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	Service *crm.Service
}

type companyReq struct {
	Name       string `json:"name" form:"name" binding:"required,max=100"`
	Email      string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Phone      string `json:"phone" form:"phone" binding:"omitempty,max=20"`
	Website    string `json:"website" form:"website" binding:"omitempty,url,max=255"`
	Industry   string `json:"industry" form:"industry" binding:"omitempty,max=100"`
	Address    string `json:"address" form:"address" binding:"omitempty,max=500"`
	City       string `json:"city" form:"city" binding:"omitempty,max=100"`
	State      string `json:"state" form:"state" binding:"omitempty,max=100"`
	Country    string `json:"country" form:"country" binding:"omitempty,max=100"`
	PostalCode string `json:"postal_code" form:"postal_code" binding:"omitempty,max=20"`
	Notes      string `json:"notes" form:"notes" binding:"omitempty,max=5000"`
}

func (r *companyReq) toInput() crm.CompanyInput {
	return crm.CompanyInput{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Website:    r.Website,
		Industry:   r.Industry,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		Country:    r.Country,
		PostalCode: r.PostalCode,
		Notes:      r.Notes,
	}
}

type companyResponse struct {
	*models.Company
	FullAddress string `json:"full_address,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}

func (h *CompanyHandler) render(company *models.Company) companyResponse {
	return companyResponse{
		Company:     company,
		FullAddress: company.FullAddress(),
		LogoURL:     h.Service.BlobURL(company.Logo),
	}
}

func (h *CompanyHandler) List(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)

	filters := database.CompanyFilters{
		Search:    c.Query("search"),
		Industry:  c.Query("industry"),
		Sort:      c.Query("sort"),
		Direction: c.Query("direction"),
		Page:      queryInt(c, "page"),
	}

	companies, total, err := database.ListCompanies(ownerID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]companyResponse, 0, len(companies))
	for i := range companies {
		items = append(items, h.render(&companies[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": items, "meta": pageMeta(filters.Page, total)})
}

func (h *CompanyHandler) Industries(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)

	industries, err := database.ListIndustries(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": industries})
}

func (h *CompanyHandler) Show(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	company, err := database.GetCompany(ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	contacts, err := database.CompanyContacts(ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     h.render(company),
		"contacts": contacts,
	})
}

func (h *CompanyHandler) Create(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)

	var req companyReq
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	logo, ok := formPhoto(c, "logo")
	if !ok {
		return
	}

	company, err := h.Service.CreateCompany(ownerID, req.toInput(), logo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": h.render(company)})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req companyReq
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	logo, ok := formPhoto(c, "logo")
	if !ok {
		return
	}

	company, err := h.Service.UpdateCompany(ownerID, id, req.toInput(), logo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.render(company)})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.Service.DeleteCompany(ownerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "company deleted"})
}
