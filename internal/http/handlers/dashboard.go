package handlers

import (
	"net/http"

	"contactcrm/internal/database"
	"contactcrm/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{}

func (h *DashboardHandler) Show(c *gin.Context) {
	ownerID := middleware.MustOwnerID(c)

	counts, err := database.GetDashboardCounts(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	upcoming, err := database.UpcomingActivities(ownerID, 10)
	if err != nil {
		respondError(c, err)
		return
	}

	overdue, err := database.OverdueActivities(ownerID, 10)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"counts":   counts,
		"upcoming": upcoming,
		"overdue":  overdue,
	})
}
