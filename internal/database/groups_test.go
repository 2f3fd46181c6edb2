package database

import (
	"testing"

	"contactcrm/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListGroups_MemberCounts(t *testing.T) {
	newTestDB(t)

	friends := seedGroup(t, 1, "Friends")
	work := seedGroup(t, 1, "Work")
	seedGroup(t, 2, "Other")

	alice := seedContact(t, 1, "Alice", "Smith")
	bob := seedContact(t, 1, "Bob", "Jones")

	require.NoError(t, SyncContactGroups(1, alice.ID, []uint{friends.ID, work.ID}))
	require.NoError(t, SyncContactGroups(1, bob.ID, []uint{friends.ID}))

	groups, err := ListGroups(1)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Friends", groups[0].Name)
	assert.EqualValues(t, 2, groups[0].ContactCount)
	assert.Equal(t, "Work", groups[1].Name)
	assert.EqualValues(t, 1, groups[1].ContactCount)
}

func TestListGroups_CountExcludesDeletedContacts(t *testing.T) {
	newTestDB(t)

	friends := seedGroup(t, 1, "Friends")
	alice := seedContact(t, 1, "Alice", "Smith")
	bob := seedContact(t, 1, "Bob", "Jones")
	require.NoError(t, SyncContactGroups(1, alice.ID, []uint{friends.ID}))
	require.NoError(t, SyncContactGroups(1, bob.ID, []uint{friends.ID}))

	_, err := DeleteContactCascade(1, bob.ID)
	require.NoError(t, err)

	groups, err := ListGroups(1)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.EqualValues(t, 1, groups[0].ContactCount)
}

func TestCreateGroup_DefaultColor(t *testing.T) {
	newTestDB(t)

	group := &models.Group{OwnerID: 1, Name: "Friends"}
	require.NoError(t, CreateGroup(group))
	assert.Equal(t, models.DefaultGroupColor, group.Color)

	colored := &models.Group{OwnerID: 1, Name: "Work", Color: "#FF0000"}
	require.NoError(t, CreateGroup(colored))
	assert.Equal(t, "#FF0000", colored.Color)
}

func TestSyncContactGroups_ReplacesMembership(t *testing.T) {
	newTestDB(t)

	friends := seedGroup(t, 1, "Friends")
	work := seedGroup(t, 1, "Work")
	vip := seedGroup(t, 1, "VIP")
	alice := seedContact(t, 1, "Alice", "Smith")

	require.NoError(t, SyncContactGroups(1, alice.ID, []uint{friends.ID, work.ID}))
	require.NoError(t, SyncContactGroups(1, alice.ID, []uint{vip.ID}))

	groups, err := GroupsForContact(alice.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "VIP", groups[0].Name)
}

func TestSyncContactGroups_EmptyClearsAll(t *testing.T) {
	newTestDB(t)

	friends := seedGroup(t, 1, "Friends")
	alice := seedContact(t, 1, "Alice", "Smith")
	require.NoError(t, SyncContactGroups(1, alice.ID, []uint{friends.ID}))

	require.NoError(t, SyncContactGroups(1, alice.ID, nil))

	groups, err := GroupsForContact(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestSyncContactGroups_RejectsForeignGroup(t *testing.T) {
	newTestDB(t)

	friends := seedGroup(t, 1, "Friends")
	foreign := seedGroup(t, 2, "Other")
	alice := seedContact(t, 1, "Alice", "Smith")
	require.NoError(t, SyncContactGroups(1, alice.ID, []uint{friends.ID}))

	err := SyncContactGroups(1, alice.ID, []uint{friends.ID, foreign.ID})
	assert.ErrorIs(t, err, ErrUnknownGroup)

	// Existing membership stays untouched.
	groups, err := GroupsForContact(alice.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Friends", groups[0].Name)
}

func TestSyncContactGroups_DedupesIDs(t *testing.T) {
	newTestDB(t)

	friends := seedGroup(t, 1, "Friends")
	alice := seedContact(t, 1, "Alice", "Smith")

	require.NoError(t, SyncContactGroups(1, alice.ID, []uint{friends.ID, friends.ID, friends.ID}))

	groups, err := GroupsForContact(alice.ID)
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}

func TestDeleteGroup_RemovesMembershipsOnly(t *testing.T) {
	newTestDB(t)

	friends := seedGroup(t, 1, "Friends")
	alice := seedContact(t, 1, "Alice", "Smith")
	require.NoError(t, SyncContactGroups(1, alice.ID, []uint{friends.ID}))

	require.NoError(t, DeleteGroup(1, friends.ID))

	_, err := GetGroup(1, friends.ID)
	assert.True(t, IsNotFound(err))

	groups, err := GroupsForContact(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, groups)

	_, err = GetContact(1, alice.ID)
	require.NoError(t, err)
}

func TestDeleteGroup_ForeignOwner(t *testing.T) {
	newTestDB(t)

	friends := seedGroup(t, 1, "Friends")

	err := DeleteGroup(2, friends.ID)
	assert.True(t, IsNotFound(err))
}
