package handlers

import (
	"net/http"
	"strings"

	"contactcrm/internal/storage"

	"github.com/gin-gonic/gin"
)

// BlobHandler serves stored photos and logos through the blob store so
// reads go through its cache.
type BlobHandler struct {
	Blobs storage.BlobStorage
}

func (h *BlobHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" || strings.Contains(key, "..") {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}

	data, err := h.Blobs.Open(key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
