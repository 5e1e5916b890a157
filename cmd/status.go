package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harborbot/harborbot/internal/config"
	"github.com/harborbot/harborbot/internal/sender"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show harborbot status and verify the Slack credential",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	fmt.Printf("%s harborbot Status\n\n", logo)

	_, statErr := os.Stat(cfgPath)
	cfgMark := "✗"
	if statErr == nil {
		cfgMark = "✓"
	}
	fmt.Printf("Config:   %s %s\n", cfgPath, cfgMark)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("  (could not load config: %v)\n", err)
		return nil
	}

	_, dirErr := os.Stat(cfg.Reports.Dir)
	dirMark := "✗"
	if dirErr == nil {
		dirMark = "✓"
	}
	fmt.Printf("Reports:  %s %s\n", cfg.Reports.Dir, dirMark)
	fmt.Printf("Channel:  %s\n", cfg.Slack.Channel)

	token := cfg.ResolveBotToken()
	if token == "" {
		fmt.Println("Slack:    (token not set)")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	snd := sender.NewWebAPI(token)
	if err := snd.AuthTest(ctx); err != nil {
		fmt.Printf("Slack:    ✗ auth test failed: %v\n", err)
		return nil
	}
	fmt.Println("Slack:    ✓ token verified")
	return nil
}
