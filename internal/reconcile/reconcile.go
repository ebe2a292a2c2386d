// Package reconcile keeps the declared command set in step with what Discord
// has registered. One Sync is one cycle: fetch, compare, and push the full
// declared set only when something actually changed. The steady-state path
// is a single fetch and zero writes.
package reconcile

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"slashsync/internal/command"
)

// Reconciler syncs the declared command set for one application. In dev mode
// commands go to a single guild (changes propagate immediately); otherwise
// they go to the application scope, where Discord may take up to an hour to
// propagate. Permission overrides are always guild-scoped — that is a
// platform constraint, not a choice — so they are pushed only when a guild
// is configured.
type Reconciler struct {
	session Session
	appID   string
	guildID string
	devMode bool
}

// New returns a reconciler for the given application.
func New(session Session, appID, guildID string, devMode bool) *Reconciler {
	return &Reconciler{session: session, appID: appID, guildID: guildID, devMode: devMode}
}

// Sync fetches the remote command set for the resolved scope, compares it
// against defs, and pushes the full declared set if they differ. It never
// performs incremental updates: command pushes happen at startup, and the
// bulk-set call is atomic where per-command calls are not.
func (r *Reconciler) Sync(ctx context.Context, defs []*command.Definition) error {
	scope, err := r.resolveScope()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	remote, err := r.session.ApplicationCommands(r.appID, scope)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetch, err)
	}

	declared := make([]*discordgo.ApplicationCommand, len(defs))
	for i, d := range defs {
		declared[i] = command.Normalize(d)
	}

	if !needsPush(declared, remote) {
		log.Debug().Int("commands", len(declared)).Msg("command set up to date, skipping push")
		return nil
	}

	log.Info().Int("declared", len(declared)).Int("remote", len(remote)).Str("scope", scopeLabel(scope)).
		Msg("command set changed, pushing")
	return r.push(ctx, scope, declared, defs)
}

// push replaces the entire remote set with declared (remote commands absent
// from declared are deleted by Discord as part of the overwrite), then
// pushes generated permission overrides in one guild-scoped batch.
func (r *Reconciler) push(ctx context.Context, scope string, declared []*discordgo.ApplicationCommand, defs []*command.Definition) error {
	records, err := r.session.ApplicationCommandBulkOverwrite(r.appID, scope, declared)
	if err != nil {
		return fmt.Errorf("%w: bulk overwrite: %v", ErrPush, err)
	}
	log.Info().Int("commands", len(records)).Msg("command set pushed")

	if r.guildID == "" {
		log.Debug().Msg("no guild configured, skipping permission push")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	perms := GeneratePermissions(records, defs)
	if err := r.session.ApplicationCommandPermissionsBatchEdit(r.appID, r.guildID, perms); err != nil {
		return fmt.Errorf("%w: permissions batch edit: %v", ErrPush, err)
	}
	log.Info().Int("entries", len(perms)).Str("guild", r.guildID).Msg("command permissions pushed")
	return nil
}

// resolveScope returns the guild ID commands are registered under, or ""
// for the application scope.
func (r *Reconciler) resolveScope() (string, error) {
	if r.appID == "" {
		return "", fmt.Errorf("%w: application ID unknown", ErrConfiguration)
	}
	if r.devMode {
		if r.guildID == "" {
			return "", fmt.Errorf("%w: dev mode requires a guild ID", ErrConfiguration)
		}
		return r.guildID, nil
	}
	return "", nil
}

func scopeLabel(scope string) string {
	if scope == "" {
		return "application"
	}
	return "guild " + scope
}
