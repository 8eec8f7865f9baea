package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CharacterCreator_Go/internal/bootstrap"
	"github.com/osse101/CharacterCreator_Go/internal/character"
	"github.com/osse101/CharacterCreator_Go/internal/config"
	"github.com/osse101/CharacterCreator_Go/internal/database"
	"github.com/osse101/CharacterCreator_Go/internal/rpgclass"
	"github.com/osse101/CharacterCreator_Go/internal/scheduler"
	"github.com/osse101/CharacterCreator_Go/internal/server"
	"github.com/osse101/CharacterCreator_Go/internal/session"
	"github.com/osse101/CharacterCreator_Go/internal/skill"
	"github.com/osse101/CharacterCreator_Go/internal/user"
	"github.com/osse101/CharacterCreator_Go/internal/worker"
)

const (
	workerCount       = 2
	workerQueueSize   = 16
	startupTimeout    = 30 * time.Second
	shutdownTimeout   = 15 * time.Second
	exitCodeStartFail = 1
)

// @title CharacterCreator API
// @version 1.0
// @description Accounts, RPG classes, skills and characters with cookie sessions.
// @BasePath /
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name SESSION
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(exitCodeStartFail)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(exitCodeStartFail)
	}

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment check failed", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	err = run(cfg)
	if err != nil {
		slog.Error("CharacterCreator exited with error", "error", err)
	}
	_ = logFile.Close()
	if err != nil {
		os.Exit(exitCodeStartFail)
	}
}

func run(cfg *config.Config) error {
	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if cfg.AutoMigrate {
		if err := database.NewMigrator(cfg.GetDBConnString()).Up(startCtx); err != nil {
			return err
		}
	}

	dbPool, err := database.NewPool(startCtx, cfg.GetDBConnString(), poolOptions(cfg))
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	sessionStore, storeCloser, err := bootstrap.NewSessionStore(startCtx, cfg, repos.Session)
	if err != nil {
		dbPool.Close()
		return err
	}

	userService := user.NewService(repos.User, user.DefaultCacheConfig())
	classService := rpgclass.NewService(repos.Class)
	skillService := skill.NewService(repos.Skill, repos.Class, repos.Character)
	characterService := character.NewService(repos.Character, repos.Class, repos.User)
	sessions := session.NewManager(sessionStore, session.Config{
		TTL:          cfg.SessionTTL,
		CookieName:   cfg.SessionCookieName,
		CookieSecure: cfg.SessionCookieSecure,
	})

	if err := bootstrap.SyncCatalog(startCtx, cfg, repos.Class); err != nil {
		slog.Warn("Class catalog sync failed, continuing with existing data", "error", err)
	}
	if err := bootstrap.SeedAdmin(startCtx, cfg, userService); err != nil {
		slog.Warn("Administrator seed failed", "error", err)
	}

	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.SessionCleanupInterval, worker.NewSessionCleanupJob(sessions), true)

	srv := server.NewServer(server.Config{
		Port:                 cfg.Port,
		TrustedProxies:       cfg.TrustedProxies,
		CORSAllowedOrigins:   cfg.CORSAllowedOrigins,
		CORSAllowedMethods:   cfg.CORSAllowedMethods,
		CORSAllowedHeaders:   cfg.CORSAllowedHeaders,
		CORSAllowCredentials: cfg.CORSAllowCredentials,
		CSRFCookieName:       cfg.CSRFCookieName,
		CSRFHeaderName:       cfg.CSRFHeaderName,
		CookieSecure:         cfg.SessionCookieSecure,
	}, server.Services{
		DB:         dbPool,
		Users:      userService,
		Classes:    classService,
		Skills:     skillService,
		Characters: characterService,
		Sessions:   sessions,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case err, ok := <-serveErr:
		if ok {
			runErr = err
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
		Closers:   []io.Closer{storeCloser, poolCloser{dbPool}},
	})
	return runErr
}

type poolCloser struct{ pool interface{ Close() } }

func (c poolCloser) Close() error {
	c.pool.Close()
	return nil
}

func poolOptions(cfg *config.Config) database.PoolOptions {
	return database.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdle:     cfg.DBMaxConnIdle,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	}
}
