package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"contactcrm/internal/crm"
	"contactcrm/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondBindingError reports the validation boundary failure
// field-by-field with a 422, before anything reaches the mutation
// engine.
func respondBindingError(c *gin.Context, err error) {
	ve := crm.ValidationError{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			ve[toSnake(fe.Field())] = "failed on '" + fe.Tag() + "'"
		}
	} else {
		ve["body"] = err.Error()
	}

	respondValidation(c, ve)
}

func respondValidation(c *gin.Context, ve crm.ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "validation failed", "errors": ve})
}

// respondError maps mutation-engine errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	var se *crm.StorageError
	switch {
	case errors.Is(err, crm.ErrNotFound) || database.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, crm.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "referenced id does not exist"})
	case errors.As(err, &se):
		c.JSON(http.StatusBadGateway, gin.H{"message": "storage failure"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

func toSnake(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func queryInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}

func queryUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Query(name), 10, 64)
	return uint(v)
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return 0, false
	}
	return uint(v), true
}

// pageMeta is the pagination envelope shared by the list endpoints.
func pageMeta(page int, total int64) gin.H {
	if page < 1 {
		page = 1
	}
	return gin.H{
		"page":     page,
		"per_page": database.PageSize,
		"total":    total,
	}
}
