package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactFullName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{"both parts", "Alice", "Smith", "Alice Smith"},
		{"first only", "Alice", "", "Alice"},
		{"last only", "", "Smith", "Smith"},
		{"empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Contact{FirstName: tt.first, LastName: tt.last}
			assert.Equal(t, tt.want, c.FullName())
		})
	}
}

func TestContactInitials(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{"both parts", "alice", "smith", "AS"},
		{"first only", "alice", "", "A"},
		{"empty", "", "", ""},
		{"multibyte", "Éloïse", "Ångström", "ÉÅ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Contact{FirstName: tt.first, LastName: tt.last}
			assert.Equal(t, tt.want, c.Initials())
		})
	}
}

func TestContactFullAddress(t *testing.T) {
	c := &Contact{
		Address:    "12 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62704",
		Country:    "USA",
	}
	assert.Equal(t, "12 Main St, Springfield, IL, 62704, USA", c.FullAddress())

	// Missing parts are skipped, never left as dangling separators.
	sparse := &Contact{City: "Springfield"}
	assert.Equal(t, "Springfield", sparse.FullAddress())

	assert.Equal(t, "", (&Contact{}).FullAddress())
}

func TestContactStatusValid(t *testing.T) {
	for _, s := range []ContactStatus{StatusActive, StatusInactive, StatusLead, StatusCustomer} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ContactStatus("archived").Valid())
	assert.False(t, ContactStatus("").Valid())
}
