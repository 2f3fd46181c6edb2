package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_Show(t *testing.T) {
	r, _ := newTestRouter(t)

	contactID := createContact(t, r, 1, gin.H{"first_name": "Alice"})
	createCompany(t, r, 1, gin.H{"name": "Acme Corp"})
	createGroup(t, r, 1, gin.H{"name": "Friends"})
	createContact(t, r, 2, gin.H{"first_name": "Carol"})

	w := doJSON(t, r, http.MethodPost, contactPath(contactID)+"/activities", 1, gin.H{
		"type":         "meeting",
		"title":        "Demo",
		"scheduled_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/v1/dashboard", 1, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	counts := body["counts"].(map[string]interface{})
	assert.EqualValues(t, 1, counts["contacts"])
	assert.EqualValues(t, 1, counts["companies"])
	assert.EqualValues(t, 1, counts["groups"])

	assert.Len(t, body["upcoming"], 1)
	assert.Empty(t, body["overdue"])
}
