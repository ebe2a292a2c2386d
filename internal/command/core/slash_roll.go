package core

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"slashsync/internal/command"
	"slashsync/internal/discord"
	"slashsync/internal/ui"
)

var diceRegex = regexp.MustCompile(`(?i)^(\d*)d(\d+)$`)

// Roll rolls dice like `3d6`. Each result message carries a re-roll button
// and a die-size select, both bound through the UI registry, so the buttons
// keep working on any number of outstanding result messages at once.
func Roll(uiReg *ui.Registry) *command.Definition {
	return &command.Definition{
		Name:        "roll",
		Description: "Roll dice like `3d6`",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "formula",
				Description: "Dice formula, e.g. `2d20`. Defaults to `1d20`",
				Required:    false,
			},
		},
		Handler: func(ctx *command.Context) error {
			formula := "1d20"
			for _, opt := range ctx.Event.ApplicationCommandData().Options {
				if opt.Name == "formula" {
					formula = strings.TrimSpace(opt.StringValue())
				}
			}

			result, err := rollFormula(formula)
			if err != nil {
				return discord.RespondEphemeral(ctx.Session, ctx.Event, err.Error())
			}
			return discord.RespondWithComponents(ctx.Session, ctx.Event, result, rollComponents(uiReg, formula))
		},
	}
}

// rollComponents builds the re-roll row. Every render binds fresh custom
// IDs, so each message gets callbacks with its own formula captured.
func rollComponents(uiReg *ui.Registry, formula string) []discordgo.MessageComponent {
	reroll := func(f string) command.HandlerFunc {
		return func(ctx *command.Context) error {
			result, err := rollFormula(f)
			if err != nil {
				return discord.RespondEphemeral(ctx.Session, ctx.Event, err.Error())
			}
			return discord.UpdateMessage(ctx.Session, ctx.Event, result, rollComponents(uiReg, f))
		}
	}

	return uiReg.Render(
		ui.Row{
			ui.Button{
				Label:   "Re-roll " + formula,
				Style:   discordgo.PrimaryButton,
				OnClick: reroll(formula),
			},
		},
		ui.Row{
			ui.Select{
				Placeholder: "Switch die",
				Options: []discordgo.SelectMenuOption{
					{Label: "1d6", Value: "1d6"},
					{Label: "1d20", Value: "1d20"},
					{Label: "1d100", Value: "1d100"},
				},
				OnSelect: func(ctx *command.Context) error {
					values := ctx.Event.MessageComponentData().Values
					if len(values) == 0 {
						return nil
					}
					return reroll(values[0])(ctx)
				},
			},
		},
	)
}

// rollFormula evaluates an `NdM` formula and formats the outcome.
func rollFormula(formula string) (string, error) {
	m := diceRegex.FindStringSubmatch(formula)
	if m == nil {
		return "", fmt.Errorf("can't parse `%s` — try something like `2d6`", formula)
	}

	count := 1
	if m[1] != "" {
		count, _ = strconv.Atoi(m[1])
	}
	sides, _ := strconv.Atoi(m[2])
	if count < 1 || count > 100 || sides < 2 || sides > 1000 {
		return "", fmt.Errorf("`%s` is out of range — up to 100 dice with 2 to 1000 sides", formula)
	}

	total := 0
	rolls := make([]string, count)
	for i := 0; i < count; i++ {
		r := rand.Intn(sides) + 1
		total += r
		rolls[i] = strconv.Itoa(r)
	}
	return fmt.Sprintf("🎲 **%s** → [%s] = **%d**", formula, strings.Join(rolls, " "), total), nil
}
