package command

import "github.com/bwmarrin/discordgo"

// Normalize projects a definition onto its wire shape: the fields Discord
// actually stores for a chat command, nothing else. Handlers and allow-lists
// are stripped. The result is used both as the push payload and as the basis
// for change detection, so it must be deterministic. Option order is kept
// as declared; the wire format is order-sensitive.
func Normalize(d *Definition) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        d.Name,
		Description: d.Description,
		Type:        discordgo.ChatApplicationCommand,
		Options:     d.Options,
	}
}
