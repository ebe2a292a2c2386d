package reconcile

import (
	"github.com/bwmarrin/discordgo"

	"slashsync/internal/command"
)

// GeneratePermissions derives permission overrides for every pushed command
// record from the declared allow-lists. Role grants come before user grants,
// each in declaration order, and every grant allows — the platform's own
// default-deny posture handles the rest. A record with no matching
// definition gets an empty grant list, which restores Discord's default
// policy for that command.
func GeneratePermissions(records []*discordgo.ApplicationCommand, defs []*command.Definition) []*discordgo.GuildApplicationCommandPermissions {
	byName := make(map[string]*command.Definition, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}

	out := make([]*discordgo.GuildApplicationCommandPermissions, 0, len(records))
	for _, rec := range records {
		var grants []*discordgo.ApplicationCommandPermissions
		if d, ok := byName[rec.Name]; ok {
			for _, roleID := range d.AllowedRoles {
				grants = append(grants, &discordgo.ApplicationCommandPermissions{
					ID:         roleID,
					Type:       discordgo.ApplicationCommandPermissionTypeRole,
					Permission: true,
				})
			}
			for _, userID := range d.AllowedUsers {
				grants = append(grants, &discordgo.ApplicationCommandPermissions{
					ID:         userID,
					Type:       discordgo.ApplicationCommandPermissionTypeUser,
					Permission: true,
				})
			}
		}
		out = append(out, &discordgo.GuildApplicationCommandPermissions{
			ID:          rec.ID,
			Permissions: grants,
		})
	}
	return out
}
