package crm

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound covers both truly absent rows and rows owned by another
// user, so a caller can never probe for foreign ids.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a referenced id (a group during sync, a
// company on a contact) does not resolve inside the owner's scope.
var ErrConflict = errors.New("conflict")

// ValidationError maps field names to messages. It is produced at the
// request boundary, before anything reaches the mutation engine.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// StorageError wraps a blob store failure. When it is returned no
// metadata has been committed for the failed write.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
