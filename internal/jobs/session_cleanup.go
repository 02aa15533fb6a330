// Package jobs defines River Queue job types for periodic maintenance.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"tracklite.io/tracklite/internal/auth"
	"tracklite.io/tracklite/internal/pkg/logger"
)

const (
	// DefaultSessionRetention keeps expired/revoked session rows around for a
	// week before hard deletion.
	DefaultSessionRetention = 7 * 24 * time.Hour
)

// SessionCleanupArgs is a periodic maintenance job that removes stale
// session rows.
type SessionCleanupArgs struct{}

// Kind returns the job kind identifier for periodic session cleanup.
func (SessionCleanupArgs) Kind() string { return "session_cleanup" }

// InsertOpts ensures at most one cleanup job is enqueued within the same day.
func (SessionCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// SessionCleanupWorker deletes sessions that expired or were revoked longer
// ago than the retention duration.
type SessionCleanupWorker struct {
	river.WorkerDefaults[SessionCleanupArgs]
	authSvc   *auth.Service
	retention time.Duration
}

// NewSessionCleanupWorker creates a cleanup worker. Non-positive retention
// falls back to the 7-day default.
func NewSessionCleanupWorker(authSvc *auth.Service, retention time.Duration) *SessionCleanupWorker {
	if retention <= 0 {
		retention = DefaultSessionRetention
	}
	return &SessionCleanupWorker{
		authSvc:   authSvc,
		retention: retention,
	}
}

// Work removes stale session rows.
func (w *SessionCleanupWorker) Work(ctx context.Context, _ *river.Job[SessionCleanupArgs]) error {
	if w == nil || w.authSvc == nil {
		return fmt.Errorf("session cleanup worker is not initialized")
	}

	cutoff := time.Now().UTC().Add(-w.retention)
	deleted, err := w.authSvc.DeleteExpired(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("delete stale sessions before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("session cleanup completed",
		zap.Int("deleted_rows", deleted),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
		zap.Duration("retention", w.retention),
	)
	return nil
}
