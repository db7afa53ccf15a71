package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/aion2-tracker/internal/bootstrap"
	"github.com/osse101/aion2-tracker/internal/character"
	"github.com/osse101/aion2-tracker/internal/config"
	"github.com/osse101/aion2-tracker/internal/database"
	"github.com/osse101/aion2-tracker/internal/ledger"
	"github.com/osse101/aion2-tracker/internal/ranking"
	"github.com/osse101/aion2-tracker/internal/scheduler"
	"github.com/osse101/aion2-tracker/internal/server"
	"github.com/osse101/aion2-tracker/internal/worker"
)

const (
	workerCount     = 2
	jobQueueSize    = 16
	jobTimeout      = 2 * time.Minute
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog := initLogger(cfg)
	defer closeLog()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	dbPool, err := database.NewPool(startCtx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	version, err := database.Migrate(startCtx, dbPool)
	if err != nil {
		dbPool.Close()
		return fmt.Errorf("migrate database: %w", err)
	}
	slog.Info("Database ready", "schema_version", version)

	registry, err := bootstrap.LoadRegistry(cfg.StatTablePath)
	if err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	characterSvc := character.NewService(repos.Characters, registry, character.Config{
		CacheSize: cfg.ProfileCacheSize,
		CacheTTL:  cfg.ProfileCacheTTL,
	})
	rankingSvc := ranking.NewService(repos.Characters, registry, cfg.RankingMinPopulation)
	ledgerSvc := ledger.NewService(repos.Ledger, characterSvc)

	pool := worker.NewPool(workerCount, jobQueueSize).WithJobTimeout(jobTimeout)
	pool.Start()

	sched := scheduler.New(pool)
	if cfg.RecalibrateInterval > 0 {
		sched.ScheduleNow(cfg.RecalibrateInterval, ranking.NewRecalibrateJob(rankingSvc))
	}

	srv := server.NewServer(
		server.Options{
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			Version:        cfg.Version,
		},
		server.Services{
			DB:         dbPool,
			Tables:     registry,
			Characters: characterSvc,
			Rankings:   rankingSvc,
			Ledger:     ledgerSvc,
			Jobs:       pool,
		},
	)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("server: %w", err)
		}
	}

	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		DBPool:     dbPool,
	})

	return runErr
}
