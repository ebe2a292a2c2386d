package core

import (
	"slashsync/internal/command"
	"slashsync/internal/config"
	"slashsync/internal/discord"
)

// Refresh queues a command re-sync with Discord. Restricted to the
// configured admin roles and developer users via permission overrides.
func Refresh(syncer Syncer, cfg *config.Config) *command.Definition {
	return &command.Definition{
		Name:         "refresh",
		Description:  "Re-sync registered commands with Discord",
		AllowedRoles: cfg.AdminRoleIDs,
		AllowedUsers: cfg.DeveloperUserIDs,
		Handler: func(ctx *command.Context) error {
			if !syncer.RequestSync() {
				return discord.RespondEphemeral(ctx.Session, ctx.Event,
					"A re-sync ran recently. Try again in a bit.")
			}
			return discord.RespondEphemeral(ctx.Session, ctx.Event, "Re-sync queued.")
		},
	}
}
