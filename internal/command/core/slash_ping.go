package core

import (
	"fmt"

	"slashsync/internal/command"
	"slashsync/internal/discord"
)

// Ping reports the gateway heartbeat latency.
func Ping() *command.Definition {
	return &command.Definition{
		Name:        "ping",
		Description: "Check whether the bot is alive",
		Handler: func(ctx *command.Context) error {
			latency := ctx.Session.HeartbeatLatency()
			return discord.RespondEphemeral(ctx.Session, ctx.Event,
				fmt.Sprintf("Pong! Gateway latency: %dms", latency.Milliseconds()))
		},
	}
}
