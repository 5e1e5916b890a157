// Package heartbeat re-verifies the Slack credential periodically while the
// schedule daemon runs, so a revoked token is logged near when it breaks
// instead of at the next scheduled dispatch.
package heartbeat

import (
	"context"
	"log/slog"
	"time"
)

// Verifier confirms the credential against the backend.
type Verifier interface {
	Verify(ctx context.Context) error
}

// Service runs a periodic credential check.
type Service struct {
	verifier Verifier
	interval time.Duration
}

// NewService creates a heartbeat service.
// interval defaults to 30 minutes if zero.
func NewService(v Verifier, interval time.Duration) *Service {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	return &Service{verifier: v, interval: interval}
}

// Start runs the heartbeat loop until ctx is cancelled.
func (s *Service) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("heartbeat: started", "interval", s.interval)

	for {
		select {
		case <-ticker.C:
			if err := s.verifier.Verify(ctx); err != nil {
				slog.Error("heartbeat: credential check failed", "err", err)
			}
		case <-ctx.Done():
			slog.Info("heartbeat: stopped")
			return ctx.Err()
		}
	}
}
