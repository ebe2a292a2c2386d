// Package ui binds interactive message components to callbacks at render
// time. Buttons and select menus get their custom IDs generated here, so a
// command handler can attach a closure to a button without inventing an ID
// scheme of its own. Entries live for the lifetime of the process; a click
// on a component from a previous process simply finds nothing and is
// dropped by the router.
package ui

import (
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"slashsync/internal/command"
)

// Element is a renderable interactive component. Implemented by Button and
// Select.
type Element interface {
	render(r *Registry) discordgo.MessageComponent
}

// Row is one action row of up to five elements.
type Row []Element

// Button describes a message button. A non-empty URL makes it a link button,
// which Discord does not report interactions for; otherwise OnClick (if set)
// is invoked when the button is pressed.
type Button struct {
	Label    string
	Style    discordgo.ButtonStyle
	Emoji    *discordgo.ComponentEmoji
	Disabled bool
	URL      string
	OnClick  command.HandlerFunc
}

// Select describes a string select menu. OnSelect (if set) is invoked with
// the interaction carrying the chosen values.
type Select struct {
	Placeholder string
	Options     []discordgo.SelectMenuOption
	Disabled    bool
	OnSelect    command.HandlerFunc
}

// Registry maps generated custom IDs to callbacks. Buttons and select menus
// keep separate maps; the two interaction kinds never share an ID namespace.
// Entries are never mutated after insertion, so a single RWMutex covers
// renders (writes) and dispatch lookups (reads).
type Registry struct {
	mu      sync.RWMutex
	buttons map[string]command.HandlerFunc
	selects map[string]command.HandlerFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		buttons: make(map[string]command.HandlerFunc),
		selects: make(map[string]command.HandlerFunc),
	}
}

// Render turns rows of elements into message components ready to send,
// stamping a fresh custom ID onto each interactive element and recording
// its callback. The returned slice plugs straight into an interaction
// response's Components field.
func (r *Registry) Render(rows ...Row) []discordgo.MessageComponent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]discordgo.MessageComponent, 0, len(rows))
	for _, row := range rows {
		components := make([]discordgo.MessageComponent, 0, len(row))
		for _, el := range row {
			components = append(components, el.render(r))
		}
		out = append(out, discordgo.ActionsRow{Components: components})
	}
	return out
}

// ButtonHandler returns the callback bound to a button custom ID.
func (r *Registry) ButtonHandler(customID string) (command.HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.buttons[customID]
	return h, ok
}

// SelectHandler returns the callback bound to a select-menu custom ID.
func (r *Registry) SelectHandler(customID string) (command.HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.selects[customID]
	return h, ok
}

func (b Button) render(r *Registry) discordgo.MessageComponent {
	style := b.Style
	if style == 0 {
		style = discordgo.PrimaryButton
	}
	btn := discordgo.Button{
		Label:    b.Label,
		Style:    style,
		Emoji:    b.Emoji,
		Disabled: b.Disabled,
	}
	if b.URL != "" {
		btn.Style = discordgo.LinkButton
		btn.URL = b.URL
		return btn
	}
	btn.CustomID = r.newID(r.buttons, "btn")
	if b.OnClick != nil {
		r.buttons[btn.CustomID] = b.OnClick
	}
	return btn
}

func (s Select) render(r *Registry) discordgo.MessageComponent {
	menu := discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		Placeholder: s.Placeholder,
		Options:     s.Options,
		Disabled:    s.Disabled,
		CustomID:    r.newID(r.selects, "sel"),
	}
	if s.OnSelect != nil {
		r.selects[menu.CustomID] = s.OnSelect
	}
	return menu
}

// newID returns a custom ID unseen in m. UUIDs make a collision vanishingly
// unlikely, but the loop keeps the uniqueness guarantee unconditional.
// Caller must hold the write lock.
func (r *Registry) newID(m map[string]command.HandlerFunc, prefix string) string {
	for {
		id := prefix + ":" + uuid.NewString()
		if _, exists := m[id]; !exists {
			return id
		}
	}
}
