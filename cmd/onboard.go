package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harborbot/harborbot/internal/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Initialize configuration and the reports directory",
	RunE:  runOnboard,
}

func runOnboard(_ *cobra.Command, _ []string) error {
	cfgPath := config.ConfigPath()

	if _, err := os.Stat(cfgPath); err == nil {
		fmt.Printf("Config already exists at %s\n", cfgPath)
	} else {
		cfg := config.DefaultConfig()
		if err := config.Save(&cfg, cfgPath); err != nil {
			return err
		}
		fmt.Printf("✓ Created config at %s\n", cfgPath)
	}

	def := config.DefaultConfig()
	if err := os.MkdirAll(def.Reports.Dir, 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}
	fmt.Printf("✓ Reports directory at %s\n", def.Reports.Dir)

	createSampleReport(def.Reports.Dir)

	fmt.Printf("\n%s harborbot is ready!\n\n", logo)
	fmt.Println("Next steps:")
	fmt.Printf("  1. Add your bot token to %s (or export SLACK_TOKEN)\n", cfgPath)
	fmt.Printf("  2. Send a report: harborbot send %s\n", filepath.Join(def.Reports.Dir, "sample.yaml"))
	return nil
}

func createSampleReport(dir string) {
	path := filepath.Join(dir, "sample.yaml")
	if _, err := os.Stat(path); err == nil {
		return
	}
	sample := `title: Hello from harborbot
channel: "#general"
blocks:
  - type: markdown
    text: "This is a *sample report*."
  - type: divider
  - type: list
    items: [first item, second item]
`
	if err := os.WriteFile(path, []byte(sample), 0o644); err == nil {
		fmt.Printf("✓ Sample report at %s\n", path)
	}
}
