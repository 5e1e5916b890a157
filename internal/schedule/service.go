// Package schedule dispatches report files on their cron expressions.
//
// The service scans a directory for YAML report files carrying a
// `schedule:` expression and arms one cron entry per file. Files are
// re-parsed at fire time so edits take effect without a restart; the
// schedule expression itself is read once at startup.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	robfigcron "github.com/robfig/cron/v3"

	"github.com/harborbot/harborbot/internal/playbook"
	"github.com/harborbot/harborbot/internal/report"
	"github.com/harborbot/harborbot/internal/reportfile"
)

// Dispatcher is the sender surface the scheduler needs.
type Dispatcher interface {
	Send(ctx context.Context, r *report.Report) error
}

type job struct {
	path string
	expr string
}

// Service arms and runs scheduled report dispatches.
type Service struct {
	dir            string
	defaultChannel string
	registry       *playbook.Registry
	dispatcher     Dispatcher
	cron           *robfigcron.Cron
}

// NewService returns a scheduler over the report files in dir. Reports
// without an explicit channel deliver to defaultChannel.
func NewService(dir, defaultChannel string, reg *playbook.Registry, d Dispatcher) *Service {
	return &Service{
		dir:            dir,
		defaultChannel: defaultChannel,
		registry:       reg,
		dispatcher:     d,
		cron:           robfigcron.New(),
	}
}

// Start scans the report directory, arms all schedules, and blocks until ctx
// is cancelled. Files that fail to parse or carry a bad expression are
// logged and skipped; they never stop the remaining schedules.
func (s *Service) Start(ctx context.Context) error {
	jobs, err := s.loadJobs()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		slog.Info("schedule: no scheduled reports found", "dir", s.dir)
	}

	for _, j := range jobs {
		j := j
		if _, err := s.cron.AddFunc(j.expr, func() { s.dispatchFile(ctx, j.path) }); err != nil {
			slog.Error("schedule: bad cron expression, skipping", "path", j.path, "expr", j.expr, "err", err)
			continue
		}
		slog.Info("schedule: armed", "path", j.path, "expr", j.expr)
	}

	s.cron.Start()
	<-ctx.Done()
	stopped := s.cron.Stop()
	<-stopped.Done()
	return ctx.Err()
}

// loadJobs collects the scheduled report files under dir.
func (s *Service) loadJobs() ([]job, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read reports dir %s: %w", s.dir, err)
	}

	var jobs []job
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		path := filepath.Join(s.dir, name)
		def, err := reportfile.Parse(path, s.registry)
		if err != nil {
			slog.Error("schedule: unreadable report file, skipping", "path", path, "err", err)
			continue
		}
		if def.Schedule == "" {
			continue
		}
		jobs = append(jobs, job{path: path, expr: def.Schedule})
	}
	return jobs, nil
}

// dispatchFile re-parses and sends one report file. Failures are logged;
// one bad firing never unarms the schedule.
func (s *Service) dispatchFile(ctx context.Context, path string) {
	def, err := reportfile.Parse(path, s.registry)
	if err != nil {
		slog.Error("schedule: parse failed", "path", path, "err", err)
		return
	}
	r := def.Report
	if r.Channel == "" {
		r.Channel = s.defaultChannel
	}
	if err := s.dispatcher.Send(ctx, &r); err != nil {
		slog.Error("schedule: dispatch failed", "path", path, "channel", r.Channel, "err", err)
	}
}
