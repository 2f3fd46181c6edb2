package crm

import (
	"path/filepath"
	"testing"

	"contactcrm/internal/database"
	"contactcrm/internal/database/models"
	"contactcrm/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestService wires a Service to a fresh sqlite database and an
// in-memory blob store, returning the store for blob assertions.
func newTestService(t *testing.T) (*Service, *storage.MemoryStorage) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)

	database.SetConnect(db)
	require.NoError(t, database.AutoMigrate())

	blobs := storage.NewMemoryStorage()
	return NewService(blobs), blobs
}

func seedGroup(t *testing.T, ownerID uint, name string) *models.Group {
	t.Helper()

	group := &models.Group{OwnerID: ownerID, Name: name}
	require.NoError(t, database.CreateGroup(group))
	return group
}

func seedCompany(t *testing.T, ownerID uint, name string) *models.Company {
	t.Helper()

	company := &models.Company{OwnerID: ownerID, Name: name}
	require.NoError(t, database.CreateCompany(company))
	return company
}
