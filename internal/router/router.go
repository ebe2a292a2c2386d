// Package router delivers inbound interactions to user code: slash commands
// by name, components by generated custom ID. Unknown names and IDs are
// dropped on purpose — a click on a message from a previous process or a
// briefly desynced command set is tolerated, not fatal.
package router

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"slashsync/internal/command"
	"slashsync/internal/ui"
)

// Router is the single entry point for inbound interactions.
type Router struct {
	commands *command.Registry
	ui       *ui.Registry
}

// New returns a router over the given registries.
func New(commands *command.Registry, uiReg *ui.Registry) *Router {
	return &Router{commands: commands, ui: uiReg}
}

// Route dispatches one interaction. Handler errors are logged here; the
// handler owns its own user-facing error response, and panics propagate.
func (r *Router) Route(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		r.routeCommand(ctx, s, i)
	case discordgo.InteractionMessageComponent:
		r.routeComponent(ctx, s, i)
	default:
		log.Debug().Int("type", int(i.Type)).Msg("unhandled interaction type")
	}
}

func (r *Router) routeCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	def, ok := r.commands.Get(name)
	if !ok {
		log.Debug().Str("command", name).Msg("unknown command, dropping")
		return
	}
	if err := def.Handler(&command.Context{Ctx: ctx, Session: s, Event: i}); err != nil {
		log.Error().Err(err).Str("command", name).Msg("command handler failed")
	}
}

func (r *Router) routeComponent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()

	var (
		handler command.HandlerFunc
		ok      bool
		kind    string
	)
	switch data.ComponentType {
	case discordgo.SelectMenuComponent:
		handler, ok = r.ui.SelectHandler(data.CustomID)
		kind = "select"
	default:
		handler, ok = r.ui.ButtonHandler(data.CustomID)
		kind = "button"
	}
	if !ok {
		log.Debug().Str("kind", kind).Str("custom_id", data.CustomID).Msg("no handler for component, dropping")
		return
	}
	if err := handler(&command.Context{Ctx: ctx, Session: s, Event: i}); err != nil {
		log.Error().Err(err).Str("kind", kind).Str("custom_id", data.CustomID).Msg("component handler failed")
	}
}
