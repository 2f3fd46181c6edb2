package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyFullAddress(t *testing.T) {
	c := &Company{
		Address: "1 Industrial Way",
		City:    "Springfield",
		Country: "USA",
	}
	assert.Equal(t, "1 Industrial Way, Springfield, USA", c.FullAddress())

	assert.Equal(t, "", (&Company{}).FullAddress())
}
