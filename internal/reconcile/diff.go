package reconcile

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// needsPush reports whether the declared set differs from the remote set.
// A size mismatch conclusively proves a diff, so the per-name comparison is
// skipped. Otherwise every declared command must have a remote counterpart
// of the same name with an equal fingerprint; a missing counterpart counts
// as a diff, not an error.
func needsPush(declared, remote []*discordgo.ApplicationCommand) bool {
	if len(declared) != len(remote) {
		return true
	}

	remoteByName := make(map[string]string, len(remote))
	for _, c := range remote {
		remoteByName[c.Name] = fingerprint(c)
	}
	for _, c := range declared {
		fp, ok := remoteByName[c.Name]
		if !ok || fp != fingerprint(c) {
			return true
		}
	}
	return false
}

// fingerprint returns a deterministic SHA-1 of a command's stable fields.
// Runtime-only fields (IDs, versions, application ID) are excluded so a
// freshly declared command and its remote record hash identically. Options
// keep their declared order: Discord stores them ordered, and reordering is
// a real change.
func fingerprint(c *discordgo.ApplicationCommand) string {
	typ := c.Type
	if typ == 0 {
		typ = discordgo.ChatApplicationCommand
	}
	stable := map[string]interface{}{
		"name":        c.Name,
		"description": c.Description,
		"type":        typ,
	}
	if len(c.Options) > 0 {
		stable["options"] = stableOptions(c.Options)
	}
	data, _ := json.Marshal(stable)
	return fmt.Sprintf("%x", sha1.Sum(data))
}

func stableOptions(opts []*discordgo.ApplicationCommandOption) []map[string]interface{} {
	out := make([]map[string]interface{}, len(opts))
	for i, o := range opts {
		entry := map[string]interface{}{
			"name":        o.Name,
			"description": o.Description,
			"type":        o.Type,
			"required":    o.Required,
		}
		// Constraint fields are part of the wire shape too; a command that
		// changes only its min value still has to be pushed. Unset values
		// stay out of the map so local and remote records hash alike.
		if o.MinValue != nil {
			entry["min_value"] = *o.MinValue
		}
		if o.MaxValue != 0 {
			entry["max_value"] = o.MaxValue
		}
		if o.MinLength != nil {
			entry["min_length"] = *o.MinLength
		}
		if o.MaxLength != 0 {
			entry["max_length"] = o.MaxLength
		}
		if len(o.ChannelTypes) > 0 {
			entry["channel_types"] = o.ChannelTypes
		}
		if o.Autocomplete {
			entry["autocomplete"] = true
		}
		if len(o.Choices) > 0 {
			choices := make([]map[string]interface{}, len(o.Choices))
			for j, ch := range o.Choices {
				choices[j] = map[string]interface{}{"name": ch.Name, "value": ch.Value}
			}
			entry["choices"] = choices
		}
		if len(o.Options) > 0 {
			entry["options"] = stableOptions(o.Options)
		}
		out[i] = entry
	}
	return out
}
