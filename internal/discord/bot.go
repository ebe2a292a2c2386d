// Package discord wires the gateway session to the command registry, the UI
// registry, the router, and the reconciler. The session is wrapped, not
// embedded: everything the bot needs from discordgo passes through explicit
// collaborators, which keeps the sync and dispatch logic testable without a
// live connection.
package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"slashsync/internal/command"
	"slashsync/internal/config"
	"slashsync/internal/reconcile"
	"slashsync/internal/router"
	"slashsync/internal/ui"
)

// Bot runs one gateway session and keeps its command set reconciled.
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	commands *command.Registry
	ui       *ui.Registry
	router   *router.Router

	// syncLimit throttles operator-triggered re-syncs; syncReq serializes
	// them onto one loop so no two sync cycles overlap.
	syncLimit *rate.Limiter
	syncReq   chan struct{}

	runCtx context.Context
}

// New returns a bot over the given registries. Run must be called to
// connect.
func New(cfg *config.Config, commands *command.Registry, uiReg *ui.Registry) *Bot {
	return &Bot{
		cfg:       cfg,
		commands:  commands,
		ui:        uiReg,
		router:    router.New(commands, uiReg),
		syncLimit: rate.NewLimiter(rate.Every(30*time.Second), 1),
		syncReq:   make(chan struct{}, 1),
	}
}

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	b.dg = dg
	b.runCtx = ctx

	dg.Identify.Intents = discordgo.IntentsGuilds
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onInteractionCreate)
	dg.AddHandler(b.onGuildCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer dg.Close()

	go b.syncLoop(ctx)

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, closing session")
	return nil
}

// RequestSync queues a sync cycle, subject to the rate limit. Returns false
// when the limiter rejected the request.
func (b *Bot) RequestSync() bool {
	if !b.syncLimit.Allow() {
		return false
	}
	b.queueSync()
	return true
}

// queueSync enqueues a sync without consuming the limiter. A request that
// finds the queue full coalesces with the pending one.
func (b *Bot) queueSync() {
	select {
	case b.syncReq <- struct{}{}:
	default:
	}
}

func (b *Bot) syncLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.syncReq:
			if err := b.sync(ctx); err != nil {
				log.Error().Err(err).Msg("command sync failed")
			}
		}
	}
}

func (b *Bot) sync(ctx context.Context) error {
	appID, err := b.appID()
	if err != nil {
		return err
	}
	rec := reconcile.New(b.dg, appID, b.cfg.GuildID, b.cfg.DevMode)
	return rec.Sync(ctx, b.commands.All())
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("gateway ready")
	b.queueSync()
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Info().Str("guild", g.ID).Str("name", g.Name).Msg("guild available")
	if b.cfg.DevMode && g.ID == b.cfg.GuildID {
		b.queueSync()
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.router.Route(b.runCtx, s, i)
}

// appID returns the bot's application ID, fetching it from Discord when the
// session state has not been populated yet.
func (b *Bot) appID() (string, error) {
	if u := b.dg.State.User; u != nil && u.ID != "" {
		return u.ID, nil
	}
	u, err := b.dg.User("@me")
	if err != nil {
		return "", fmt.Errorf("fetch bot user: %w", err)
	}
	return u.ID, nil
}
