// Package command holds the declared command set: what the bot says it has,
// before any reconciliation with Discord. Definitions are built at startup
// and never mutated afterwards; changing a command means rebuilding the set
// and running a fresh sync cycle.
package command

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Context is what a handler gets when its command or component fires.
type Context struct {
	Ctx     context.Context
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
}

// HandlerFunc runs a command or component callback. Errors are logged by the
// dispatcher but otherwise left to the handler's own response logic.
type HandlerFunc func(ctx *Context) error

// Definition describes one slash command: its wire-visible shape plus the
// allow-lists used to generate permission overrides and the handler invoked
// on dispatch.
type Definition struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption

	// AllowedRoles and AllowedUsers restrict who may use the command.
	// Empty lists mean no explicit grants; Discord's default permission
	// policy applies.
	AllowedRoles []string
	AllowedUsers []string

	Handler HandlerFunc
}
