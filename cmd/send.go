package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harborbot/harborbot/internal/config"
	"github.com/harborbot/harborbot/internal/dependency"
	"github.com/harborbot/harborbot/internal/playbook"
	"github.com/harborbot/harborbot/internal/reportfile"
)

var sendChannel string

var sendCmd = &cobra.Command{
	Use:   "send <report.yaml>",
	Short: "Send one report file to Slack",
	Args:  cobra.ExactArgs(1),
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringVarP(&sendChannel, "channel", "c", "", "Override the delivery channel")
}

func runSend(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	registry := playbook.NewRegistry()
	deps, err := dependency.New(cfg, registry, nil)
	if err != nil {
		return err
	}

	def, err := reportfile.Parse(args[0], registry)
	if err != nil {
		return err
	}

	r := def.Report
	if sendChannel != "" {
		r.Channel = sendChannel
	}
	if r.Channel == "" {
		r.Channel = cfg.Slack.Channel
	}
	if r.Channel == "" {
		return fmt.Errorf("no channel: set one in the report file, with --channel, or in %s", config.ConfigPath())
	}

	if err := deps.Sender().Send(context.Background(), &r); err != nil {
		return err
	}
	fmt.Printf("%s Report dispatched to %s\n", logo, r.Channel)
	return nil
}
