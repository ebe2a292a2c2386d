package core

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"slashsync/internal/command"
	"slashsync/internal/discord"
	"slashsync/internal/version"
)

// Help lists every registered command.
func Help(reg *command.Registry) *command.Definition {
	return &command.Definition{
		Name:        "help",
		Description: "List available commands",
		Handler: func(ctx *command.Context) error {
			var sb strings.Builder
			for _, d := range reg.All() {
				fmt.Fprintf(&sb, "`/%s` — %s\n", d.Name, d.Description)
			}
			return discord.RespondEmbedEphemeral(ctx.Session, ctx.Event, &discordgo.MessageEmbed{
				Title:       fmt.Sprintf("%s v%s", version.AppName, version.Version),
				Description: sb.String(),
			})
		},
	}
}
