// Package core provides the bot's built-in commands.
package core

import (
	"slashsync/internal/command"
	"slashsync/internal/config"
	"slashsync/internal/ui"
)

// Syncer queues a command re-sync. Implemented by discord.Bot.
type Syncer interface {
	RequestSync() bool
}

// Register adds the built-in commands to the registry.
func Register(reg *command.Registry, uiReg *ui.Registry, syncer Syncer, cfg *config.Config) {
	reg.Register(
		Ping(),
		Help(reg),
		Roll(uiReg),
		Refresh(syncer, cfg),
	)
}
