// Package version identifies the build.
package version

const (
	AppName = "SlashSync"
	Version = "0.1.0"
)
