package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"prlens/internal/github"
	"prlens/internal/http/router"
	"prlens/internal/lib/config"
	"prlens/internal/lib/sl"
	"prlens/internal/metrics"
	repo "prlens/internal/repository"
	"prlens/internal/service/pr"
	"prlens/internal/service/stats"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting PR analytics service", slog.String("env", cfg.Env))

	if cfg.Database.Driver == repo.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.DSN), 0o755); err != nil {
			log.Error("failed to create database directory", sl.Err(err))
			os.Exit(1)
		}
	}

	if cfg.Database.MigrateOnStart {
		if err := repo.Migrate(cfg.Database.Driver, cfg.Database.DSN); err != nil {
			log.Error("failed to apply migrations", sl.Err(err))
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	db, err := sqlx.Connect(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()
	if cfg.Database.Driver == repo.DriverSQLite {
		// sqlite allows one writer at a time
		db.SetMaxOpenConns(1)
	}

	// initialization of go-transaction-manager
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	prRepo := repo.NewPullRequestRepo(db, trmsqlx.DefaultCtxGetter)
	historyRepo := repo.NewHistoryRepo(db, trmsqlx.DefaultCtxGetter)
	statsRepo := repo.NewStatisticsRepo(db, trmsqlx.DefaultCtxGetter)

	ghClient, err := github.NewClient(github.Options{
		BaseURL:  cfg.GitHub.BaseURL,
		Token:    cfg.GitHub.Token,
		PageSize: cfg.GitHub.PageSize,
		Timeout:  cfg.GitHub.Timeout,
	})
	if err != nil {
		log.Error("failed to create github client", sl.Err(err))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(reg)

	prService := pr.NewPullRequestService(trManager, ghClient, prRepo, collector)
	statsService := stats.NewStatsService(trManager, statsRepo, historyRepo, collector)

	deps := router.Deps{
		PullRequests: prService,
		Stats:        statsService,
	}
	if cfg.Metrics.Enabled {
		deps.Registry = reg
		deps.MetricsPath = cfg.Metrics.Path
	}

	handler, err := router.New(log, deps)
	if err != nil {
		log.Error("failed to build router", sl.Err(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("http server stopped with error", sl.Err(err))
		os.Exit(1)
	}

	log.Info("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
