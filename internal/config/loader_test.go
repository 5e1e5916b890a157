package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.json")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Slack.TargetID != "harborbot" {
		t.Errorf("expected default target id, got %q", cfg.Slack.TargetID)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, map[string]any{
		"slack": map[string]any{
			"botToken": "xoxb-test",
			"channel":  "#alerts",
		},
		"reports": map[string]any{"dir": "/srv/reports"},
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Slack.BotToken != "xoxb-test" {
		t.Errorf("botToken = %q", cfg.Slack.BotToken)
	}
	if cfg.Slack.Channel != "#alerts" {
		t.Errorf("channel = %q", cfg.Slack.Channel)
	}
	if cfg.Reports.Dir != "/srv/reports" {
		t.Errorf("reports dir = %q", cfg.Reports.Dir)
	}
	// fields absent from the file keep their defaults
	if cfg.Slack.TargetID != "harborbot" {
		t.Errorf("target id = %q", cfg.Slack.TargetID)
	}
}

func TestLoad_CorruptFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}
	if cfg.Slack.TargetID != "harborbot" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	cfg := DefaultConfig()
	cfg.Slack.Channel = "#ops"
	if err := Save(&cfg, path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Slack.Channel != "#ops" {
		t.Errorf("channel did not round-trip: %q", loaded.Slack.Channel)
	}
}

func TestResolveBotToken_EnvOverride(t *testing.T) {
	t.Setenv("SLACK_TOKEN", "xoxb-env")
	cfg := DefaultConfig()
	cfg.Slack.BotToken = "xoxb-file"
	if got := cfg.ResolveBotToken(); got != "xoxb-env" {
		t.Errorf("expected env token, got %q", got)
	}

	t.Setenv("SLACK_TOKEN", "")
	if got := cfg.ResolveBotToken(); got != "xoxb-file" {
		t.Errorf("expected file token, got %q", got)
	}
}
