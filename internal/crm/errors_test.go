package crm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	ve := ValidationError{"email": "failed on 'email'", "first_name": "failed on 'required'"}
	assert.Equal(t, "validation failed: email, first_name", ve.Error())
}

func TestStorageErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &StorageError{Op: "store", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "store")
}
