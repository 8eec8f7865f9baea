package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/CharacterCreator_Go/internal/scheduler"
	"github.com/osse101/CharacterCreator_Go/internal/server"
	"github.com/osse101/CharacterCreator_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Closers   []io.Closer
}

// GracefulShutdown stops the HTTP server, then the session sweep, then
// releases backing connections. Errors are logged and do not stop the
// sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgStoppingWorkers)
	// Scheduler first so no tick enqueues onto a stopped pool
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.Pool != nil {
		components.Pool.Stop()
	}

	for _, c := range components.Closers {
		if err := c.Close(); err != nil {
			slog.Error(LogMsgCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
