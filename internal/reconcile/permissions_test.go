package reconcile

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slashsync/internal/command"
)

func TestGeneratePermissionsOrdering(t *testing.T) {
	records := []*discordgo.ApplicationCommand{{ID: "cmd-1", Name: "refresh"}}
	defs := []*command.Definition{{
		Name:         "refresh",
		AllowedRoles: []string{"role-b", "role-a"},
		AllowedUsers: []string{"user-z", "user-a"},
	}}

	perms := GeneratePermissions(records, defs)
	require.Len(t, perms, 1)
	assert.Equal(t, "cmd-1", perms[0].ID)

	grants := perms[0].Permissions
	require.Len(t, grants, 4)

	// Roles first, users after, each in declaration order.
	assert.Equal(t, "role-b", grants[0].ID)
	assert.Equal(t, "role-a", grants[1].ID)
	assert.Equal(t, "user-z", grants[2].ID)
	assert.Equal(t, "user-a", grants[3].ID)

	for _, g := range grants[:2] {
		assert.Equal(t, discordgo.ApplicationCommandPermissionTypeRole, g.Type)
	}
	for _, g := range grants[2:] {
		assert.Equal(t, discordgo.ApplicationCommandPermissionTypeUser, g.Type)
	}
	for _, g := range grants {
		assert.True(t, g.Permission, "only allow grants are generated")
	}
}

func TestGeneratePermissionsUnmatchedRecord(t *testing.T) {
	// A remote record with no declared counterpart gets an empty grant
	// list, restoring Discord's default policy.
	records := []*discordgo.ApplicationCommand{{ID: "cmd-9", Name: "orphan"}}

	perms := GeneratePermissions(records, nil)
	require.Len(t, perms, 1)
	assert.Equal(t, "cmd-9", perms[0].ID)
	assert.Empty(t, perms[0].Permissions)
}

func TestGeneratePermissionsEmptyAllowLists(t *testing.T) {
	records := []*discordgo.ApplicationCommand{{ID: "cmd-1", Name: "ping"}}
	defs := []*command.Definition{{Name: "ping"}}

	perms := GeneratePermissions(records, defs)
	require.Len(t, perms, 1)
	assert.Empty(t, perms[0].Permissions)
}
