// Package config defines the harborbot configuration schema and its
// JSON file loader. Keys use camelCase.
package config

import (
	"os"
	"path/filepath"
)

// SlackConfig holds the Slack credential and delivery defaults.
type SlackConfig struct {
	// BotToken is the xoxb- token. The SLACK_TOKEN environment variable
	// overrides it when set.
	BotToken string `json:"botToken"`

	// Channel is the default delivery channel for report files that do
	// not name one themselves.
	Channel string `json:"channel"`

	// TargetID names this bot instance inside callback tokens so the
	// backend can route button presses back to it.
	TargetID string `json:"targetId"`

	// AllowUnfurl enables link and media previews by default.
	AllowUnfurl bool `json:"allowUnfurl"`
}

// ReportsConfig controls where report files live.
type ReportsConfig struct {
	// Dir is the directory scanned for YAML report files by the
	// schedule daemon.
	Dir string `json:"dir"`
}

// HeartbeatConfig controls the periodic auth re-verification of the
// schedule daemon.
type HeartbeatConfig struct {
	// IntervalMinutes between auth checks. Zero means the default.
	IntervalMinutes int `json:"intervalMinutes"`
}

// Config is the root configuration.
type Config struct {
	Slack     SlackConfig     `json:"slack"`
	Reports   ReportsConfig   `json:"reports"`
	Heartbeat HeartbeatConfig `json:"heartbeat"`
}

// DefaultConfig returns the configuration used when no file exists yet.
func DefaultConfig() Config {
	return Config{
		Slack: SlackConfig{
			TargetID: "harborbot",
		},
		Reports: ReportsConfig{
			Dir: filepath.Join(DataDir(), "reports"),
		},
	}
}

// ResolveBotToken returns the effective Slack token: the SLACK_TOKEN
// environment variable when set, the config file value otherwise.
func (c *Config) ResolveBotToken() string {
	if tok := os.Getenv("SLACK_TOKEN"); tok != "" {
		return tok
	}
	return c.Slack.BotToken
}
