package worker

import (
	"context"

	"github.com/osse101/CharacterCreator_Go/internal/logger"
)

// SessionPurger removes expired login sessions
type SessionPurger interface {
	Purge(ctx context.Context) (int64, error)
}

// SessionCleanupJob sweeps expired sessions from the session store
type SessionCleanupJob struct {
	purger SessionPurger
}

// NewSessionCleanupJob creates the sweep job
func NewSessionCleanupJob(purger SessionPurger) *SessionCleanupJob {
	return &SessionCleanupJob{purger: purger}
}

func (j *SessionCleanupJob) Name() string {
	return "session_cleanup"
}

func (j *SessionCleanupJob) Process(ctx context.Context) error {
	n, err := j.purger.Purge(ctx)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgSessionSweepDone, "purged", n)
	return nil
}
