package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/aion2-tracker/internal/database"
	"github.com/osse101/aion2-tracker/internal/scheduler"
	"github.com/osse101/aion2-tracker/internal/server"
	"github.com/osse101/aion2-tracker/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	DBPool     database.Pool
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server, so no new requests arrive
//  2. scheduler, so no new jobs are queued
//  3. worker pool, cancelling and awaiting in-flight jobs
//  4. database pool
//
// Errors are logged and do not stop the sequence. Nil components are skipped.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		c.Scheduler.Stop()
	}

	if c.WorkerPool != nil {
		slog.Info(LogMsgDrainingWorkers)
		c.WorkerPool.Stop()
	}

	if c.DBPool != nil {
		c.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
