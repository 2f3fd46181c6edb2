package handlers

import (
	"net/http"

	"contactcrm/internal/crm"
	"contactcrm/internal/database"
	"contactcrm/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	Service *crm.Service
}

type groupReq struct {
	Name        string `json:"name" binding:"required,max=100"`
	Color       string `json:"color" binding:"omitempty,hexcolor"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

func (h *GroupHandler) List(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)

	groups, err := database.ListGroups(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": groups})
}

func (h *GroupHandler) Show(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	group, err := database.GetGroup(ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": group})
}

func (h *GroupHandler) Create(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)

	var req groupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	group, err := h.Service.CreateGroup(ownerID, crm.GroupInput{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": group})
}

func (h *GroupHandler) Update(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req groupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	group, err := h.Service.UpdateGroup(ownerID, id, crm.GroupInput{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": group})
}

func (h *GroupHandler) Delete(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.Service.DeleteGroup(ownerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "group deleted"})
}
