package crm

import (
	"contactcrm/internal/database"
	"contactcrm/internal/storage"
)

// Service is the mutation engine: it applies create/update/delete
// operations together with their side effects (blob cleanup, group
// sync, activity logging). Every method takes the acting owner id
// explicitly; queries without it do not exist.
type Service struct {
	blobs storage.BlobStorage
}

func NewService(blobs storage.BlobStorage) *Service {
	return &Service{blobs: blobs}
}

// Blob upload passed alongside a create/update.
type Photo struct {
	Data []byte
	Ext  string
}

// BlobURL resolves a stored blob key to its public URL, or "" when no
// blob is stored.
func (s *Service) BlobURL(key string) string {
	if key == "" {
		return ""
	}
	return s.blobs.URLFor(key)
}

func mapDBErr(err error) error {
	if database.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}
