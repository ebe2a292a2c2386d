// Package config loads bot configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration.
type Config struct {
	// DiscordToken authenticates the gateway session.
	DiscordToken string `env:"DISCORD_TOKEN,required"`

	// GuildID is the development guild. Required in dev mode; in
	// production it is still used as the target for permission overrides,
	// which Discord only accepts per guild.
	GuildID string `env:"DISCORD_GUILD_ID"`

	// DevMode registers commands on GuildID instead of the application
	// scope. Guild commands propagate instantly; application commands can
	// take up to an hour.
	DevMode bool `env:"DEV_MODE" envDefault:"false"`

	// AdminRoleIDs and DeveloperUserIDs feed the allow-lists of
	// restricted commands.
	AdminRoleIDs     []string `env:"ADMIN_ROLE_IDS" envSeparator:","`
	DeveloperUserIDs []string `env:"DEVELOPER_USER_IDS" envSeparator:","`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

// Load reads .env if present, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
