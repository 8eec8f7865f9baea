package worker

import "time"

// ============================================================================
// Pool Defaults
// ============================================================================

const (
	DefaultWorkers   = 2
	DefaultQueueSize = 16

	// DefaultJobTimeout bounds a single job run
	DefaultJobTimeout = 30 * time.Second
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgWorkerJobPanic   = "Worker job panicked"
	LogMsgJobQueueFull     = "Job queue full, dropping job"
	LogMsgPoolStopped      = "Worker pool stopped"
	LogMsgSessionSweepDone = "Session sweep finished"
)
