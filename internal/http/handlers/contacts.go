package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"contactcrm/internal/crm"
	"contactcrm/internal/database"
	"contactcrm/internal/database/models"
	"contactcrm/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps photo/logo uploads at 2 MiB.
const maxUploadSize = 2 << 20

type ContactHandler struct {
	Service *crm.Service
}

// contactReq is the validation boundary for contact writes. The limits
// are part of the contract: anything outside them never reaches the
// mutation engine.
type contactReq struct {
	FirstName  string `json:"first_name" form:"first_name" binding:"required,max=100"`
	LastName   string `json:"last_name" form:"last_name" binding:"omitempty,max=100"`
	Email      string `json:"email" form:"email" binding:"omitempty,email,max=255"`
	Phone      string `json:"phone" form:"phone" binding:"omitempty,max=20"`
	Mobile     string `json:"mobile" form:"mobile" binding:"omitempty,max=20"`
	JobTitle   string `json:"job_title" form:"job_title" binding:"omitempty,max=100"`
	CompanyID  *uint  `json:"company_id" form:"company_id"`
	Address    string `json:"address" form:"address" binding:"omitempty,max=500"`
	City       string `json:"city" form:"city" binding:"omitempty,max=100"`
	State      string `json:"state" form:"state" binding:"omitempty,max=100"`
	Country    string `json:"country" form:"country" binding:"omitempty,max=100"`
	PostalCode string `json:"postal_code" form:"postal_code" binding:"omitempty,max=20"`
	Linkedin   string `json:"linkedin" form:"linkedin" binding:"omitempty,url,max=255"`
	Twitter    string `json:"twitter" form:"twitter" binding:"omitempty,max=100"`
	Facebook   string `json:"facebook" form:"facebook" binding:"omitempty,url,max=255"`
	Birthday   string `json:"birthday" form:"birthday" binding:"omitempty,datetime=2006-01-02"`
	Notes      string `json:"notes" form:"notes" binding:"omitempty,max=5000"`
	Status     string `json:"status" form:"status" binding:"omitempty,oneof=active inactive lead customer"`
	Source     string `json:"source" form:"source" binding:"omitempty,max=100"`

	CustomFields map[string]interface{} `json:"custom_fields" form:"-"`
	Groups       *[]uint                `json:"groups" form:"groups"`
}

func (r *contactReq) toInput() crm.ContactInput {
	in := crm.ContactInput{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		Mobile:       r.Mobile,
		JobTitle:     r.JobTitle,
		CompanyID:    r.CompanyID,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		PostalCode:   r.PostalCode,
		Linkedin:     r.Linkedin,
		Twitter:      r.Twitter,
		Facebook:     r.Facebook,
		Notes:        r.Notes,
		Status:       models.ContactStatus(r.Status),
		Source:       r.Source,
		CustomFields: r.CustomFields,
	}
	if r.Birthday != "" {
		if t, err := time.Parse("2006-01-02", r.Birthday); err == nil {
			in.Birthday = &t
		}
	}
	return in
}

func (r *contactReq) groupIDs() []uint {
	if r.Groups == nil {
		return nil
	}
	return *r.Groups
}

// contactResponse decorates a contact with its derived display fields.
type contactResponse struct {
	*models.Contact
	FullName    string `json:"full_name"`
	Initials    string `json:"initials"`
	FullAddress string `json:"full_address,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

func (h *ContactHandler) render(contact *models.Contact) contactResponse {
	return contactResponse{
		Contact:     contact,
		FullName:    contact.FullName(),
		Initials:    contact.Initials(),
		FullAddress: contact.FullAddress(),
		PhotoURL:    h.Service.BlobURL(contact.Photo),
	}
}

func (h *ContactHandler) List(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)

	filters := database.ContactFilters{
		Search:    c.Query("search"),
		Status:    models.ContactStatus(c.Query("status")),
		CompanyID: queryUint(c, "company"),
		GroupID:   queryUint(c, "group"),
		Sort:      c.Query("sort"),
		Direction: c.Query("direction"),
		Page:      queryInt(c, "page"),
	}

	if filters.Status != "" && !filters.Status.Valid() {
		respondValidation(c, crm.ValidationError{"status": "failed on 'oneof'"})
		return
	}

	contacts, total, err := database.ListContacts(ownerID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]contactResponse, 0, len(contacts))
	for i := range contacts {
		items = append(items, h.render(&contacts[i]))
	}

	c.JSON(http.StatusOK, gin.H{"data": items, "meta": pageMeta(filters.Page, total)})
}

func (h *ContactHandler) Show(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	contact, err := database.GetContact(ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	notes, err := database.ListNotes(contact.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	activities, err := database.ListActivities(contact.ID, 20)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       h.render(contact),
		"notes":      notes,
		"activities": activities,
	})
}

func (h *ContactHandler) Create(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)

	var req contactReq
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	photo, ok := formPhoto(c, "photo")
	if !ok {
		return
	}

	contact, err := h.Service.CreateContact(ownerID, req.toInput(), photo, req.groupIDs())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": h.render(contact)})
}

func (h *ContactHandler) Update(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req contactReq
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	photo, ok := formPhoto(c, "photo")
	if !ok {
		return
	}

	contact, err := h.Service.UpdateContact(ownerID, id, req.toInput(), photo, req.groupIDs())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.render(contact)})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.Service.DeleteContact(ownerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "contact deleted"})
}

type noteReq struct {
	Body     string `json:"body" binding:"required,max=5000"`
	IsPinned bool   `json:"is_pinned"`
}

func (h *ContactHandler) AddNote(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req noteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	note, err := h.Service.AddNote(ownerID, id, req.Body, req.IsPinned)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": note})
}

type activityReq struct {
	Type        string     `json:"type" binding:"required,oneof=call email meeting note task other"`
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"omitempty,max=2000"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

func (h *ContactHandler) AddActivity(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req activityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	activity, err := h.Service.LogActivity(ownerID, id, models.ActivityType(req.Type), req.Title, req.Description, req.ScheduledAt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": activity})
}

func (h *ContactHandler) CompleteActivity(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	activity, err := h.Service.CompleteActivity(ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": activity})
}

type duplicatesReq struct {
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone" binding:"omitempty,max=20"`
}

func (h *ContactHandler) CheckDuplicates(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)

	var req duplicatesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	duplicates, err := h.Service.CheckDuplicates(ownerID, req.Email, req.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]contactResponse, 0, len(duplicates))
	for i := range duplicates {
		items = append(items, h.render(&duplicates[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"has_duplicates": len(items) > 0,
		"duplicates":     items,
	})
}

// formPhoto pulls an optional uploaded file out of a multipart request.
// Returns (nil, true) when no file was sent. On a failure it writes the
// response itself and returns ok=false.
func formPhoto(c *gin.Context, field string) (*crm.Photo, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, true
	}

	if fh.Size > maxUploadSize {
		respondValidation(c, crm.ValidationError{field: "failed on 'max'"})
		return nil, false
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed read upload"})
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed read upload"})
		return nil, false
	}

	ext := strings.TrimPrefix(filepath.Ext(fh.Filename), ".")
	return &crm.Photo{Data: data, Ext: ext}, true
}
