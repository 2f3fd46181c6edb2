package database

import (
	"path/filepath"
	"testing"

	"contactcrm/internal/database/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB points the package at a fresh sqlite database for one test.
func newTestDB(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)

	SetConnect(db)
	require.NoError(t, AutoMigrate())
}

func seedContact(t *testing.T, ownerID uint, first, last string, mut ...func(*models.Contact)) *models.Contact {
	t.Helper()

	contact := &models.Contact{
		OwnerID:   ownerID,
		FirstName: first,
		LastName:  last,
		Status:    models.StatusActive,
	}
	for _, m := range mut {
		m(contact)
	}
	require.NoError(t, CreateContact(contact))

	return contact
}

func seedCompany(t *testing.T, ownerID uint, name string, mut ...func(*models.Company)) *models.Company {
	t.Helper()

	company := &models.Company{OwnerID: ownerID, Name: name}
	for _, m := range mut {
		m(company)
	}
	require.NoError(t, CreateCompany(company))

	return company
}

func seedGroup(t *testing.T, ownerID uint, name string) *models.Group {
	t.Helper()

	group := &models.Group{OwnerID: ownerID, Name: name}
	require.NoError(t, CreateGroup(group))

	return group
}
