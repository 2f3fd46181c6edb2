package database

import (
	"testing"
	"time"

	"contactcrm/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNotes_PinnedFirstThenNewest(t *testing.T) {
	newTestDB(t)

	alice := seedContact(t, 1, "Alice", "Smith")

	old := &models.Note{ContactID: alice.ID, AuthorID: 1, Body: "old"}
	require.NoError(t, CreateNote(old))
	recent := &models.Note{ContactID: alice.ID, AuthorID: 1, Body: "recent"}
	require.NoError(t, CreateNote(recent))
	pinned := &models.Note{ContactID: alice.ID, AuthorID: 1, Body: "pinned", IsPinned: true}
	require.NoError(t, CreateNote(pinned))

	// Spread created_at so the newest-first order is observable.
	db := GetConnect()
	require.NoError(t, db.Model(old).Update("created_at", time.Now().Add(-2*time.Hour)).Error)
	require.NoError(t, db.Model(pinned).Update("created_at", time.Now().Add(-time.Hour)).Error)

	notes, err := ListNotes(alice.ID)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "pinned", notes[0].Body)
	assert.Equal(t, "recent", notes[1].Body)
	assert.Equal(t, "old", notes[2].Body)
}

func TestListNotes_ScopedToContact(t *testing.T) {
	newTestDB(t)

	alice := seedContact(t, 1, "Alice", "Smith")
	bob := seedContact(t, 1, "Bob", "Jones")

	require.NoError(t, CreateNote(&models.Note{ContactID: alice.ID, AuthorID: 1, Body: "for alice"}))

	notes, err := ListNotes(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
