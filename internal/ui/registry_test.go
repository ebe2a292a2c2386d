package ui

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slashsync/internal/command"
)

func renderedButton(t *testing.T, components []discordgo.MessageComponent, row, col int) discordgo.Button {
	t.Helper()
	ar, ok := components[row].(discordgo.ActionsRow)
	require.True(t, ok)
	btn, ok := ar.Components[col].(discordgo.Button)
	require.True(t, ok)
	return btn
}

func renderedSelect(t *testing.T, components []discordgo.MessageComponent, row, col int) discordgo.SelectMenu {
	t.Helper()
	ar, ok := components[row].(discordgo.ActionsRow)
	require.True(t, ok)
	menu, ok := ar.Components[col].(discordgo.SelectMenu)
	require.True(t, ok)
	return menu
}

func TestRenderBindsButtonCallback(t *testing.T) {
	reg := NewRegistry()
	calls := 0

	out := reg.Render(Row{Button{Label: "Click", OnClick: func(*command.Context) error {
		calls++
		return nil
	}}})
	require.Len(t, out, 1)

	btn := renderedButton(t, out, 0, 0)
	require.NotEmpty(t, btn.CustomID)

	h, ok := reg.ButtonHandler(btn.CustomID)
	require.True(t, ok)
	require.NoError(t, h(nil))
	assert.Equal(t, 1, calls)
}

func TestRenderNeverRepeatsIDs(t *testing.T) {
	reg := NewRegistry()
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		out := reg.Render(Row{
			Button{Label: "A", OnClick: func(*command.Context) error { return nil }},
			Button{Label: "B", OnClick: func(*command.Context) error { return nil }},
		})
		for col := 0; col < 2; col++ {
			id := renderedButton(t, out, 0, col).CustomID
			assert.False(t, seen[id], "duplicate custom ID %s", id)
			seen[id] = true
		}
	}
}

func TestRenderSeparatesNamespaces(t *testing.T) {
	reg := NewRegistry()
	out := reg.Render(
		Row{Button{Label: "B", OnClick: func(*command.Context) error { return nil }}},
		Row{Select{Placeholder: "S", Options: []discordgo.SelectMenuOption{{Label: "x", Value: "x"}}, OnSelect: func(*command.Context) error { return nil }}},
	)

	btn := renderedButton(t, out, 0, 0)
	menu := renderedSelect(t, out, 1, 0)

	_, ok := reg.SelectHandler(btn.CustomID)
	assert.False(t, ok, "button ID must not resolve as a select")
	_, ok = reg.ButtonHandler(menu.CustomID)
	assert.False(t, ok, "select ID must not resolve as a button")

	_, ok = reg.ButtonHandler(btn.CustomID)
	assert.True(t, ok)
	_, ok = reg.SelectHandler(menu.CustomID)
	assert.True(t, ok)
}

func TestRenderLinkButtonNotRegistered(t *testing.T) {
	reg := NewRegistry()
	out := reg.Render(Row{Button{Label: "Docs", URL: "https://example.com"}})

	btn := renderedButton(t, out, 0, 0)
	assert.Empty(t, btn.CustomID, "link buttons carry a URL, not a custom ID")
	assert.Equal(t, discordgo.LinkButton, btn.Style)
	assert.Equal(t, "https://example.com", btn.URL)
}

func TestRenderButtonWithoutCallback(t *testing.T) {
	reg := NewRegistry()
	out := reg.Render(Row{Button{Label: "Static"}})

	btn := renderedButton(t, out, 0, 0)
	require.NotEmpty(t, btn.CustomID)
	_, ok := reg.ButtonHandler(btn.CustomID)
	assert.False(t, ok)
}

func TestRenderSelectDefaultsStringMenu(t *testing.T) {
	reg := NewRegistry()
	out := reg.Render(Row{Select{
		Options:  []discordgo.SelectMenuOption{{Label: "a", Value: "a"}},
		OnSelect: func(*command.Context) error { return nil },
	}})

	menu := renderedSelect(t, out, 0, 0)
	assert.Equal(t, discordgo.StringSelectMenu, menu.MenuType)
	require.NotEmpty(t, menu.CustomID)
}
