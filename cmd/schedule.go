package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/harborbot/harborbot/internal/config"
	"github.com/harborbot/harborbot/internal/dependency"
	"github.com/harborbot/harborbot/internal/playbook"
)

var scheduleVerbose bool

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Run the scheduled-report daemon",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().BoolVarP(&scheduleVerbose, "verbose", "v", false, "Verbose logging")
}

func runSchedule(_ *cobra.Command, _ []string) error {
	if scheduleVerbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	deps, err := dependency.New(cfg, playbook.NewRegistry(), nil)
	if err != nil {
		return err
	}

	// Graceful shutdown context.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// A bad credential is fatal at startup; dispatch is not attempted.
	if err := deps.Sender().Verify(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Slack token verified")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return deps.Scheduler().Start(gctx) })
	g.Go(func() error { return deps.Heartbeat().Start(gctx) })

	fmt.Printf("%s Schedule daemon running (reports: %s). Press Ctrl+C to stop.\n", logo, cfg.Reports.Dir)

	if err := g.Wait(); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "schedule daemon error: %v\n", err)
		return err
	}
	fmt.Println("\nShutdown complete.")
	return nil
}
