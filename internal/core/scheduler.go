package core

// scheduler.go provides background jobs for session maintenance.
//
// The sweeper is long-running and context-aware for graceful shutdown. It
// logs what it removes but never fails the application.

import (
	"context"
	"log/slog"
	"time"
)

// DefaultSweepInterval is used when no interval is configured.
const DefaultSweepInterval = time.Minute

// StartSessionSweeper periodically removes expired sessions from the store.
// It blocks until ctx is cancelled, so run it in its own goroutine.
func (s *Service) StartSessionSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	slog.Info("session sweeper started", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.runSweep()
		}
	}
}

// runSweep performs one sweep cycle.
func (s *Service) runSweep() {
	start := time.Now()
	removed := s.sessions.Sweep()
	if removed == 0 {
		return
	}
	slog.Info("expired sessions removed",
		"sessions_removed", removed,
		"sessions_live", s.sessions.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
