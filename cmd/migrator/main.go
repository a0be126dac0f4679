package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"prlens/internal/lib/config"
	"prlens/internal/lib/sl"
	repo "prlens/internal/repository"

	"github.com/golang-migrate/migrate/v4"
)

func main() {
	var (
		direction string
		steps     int
	)
	flag.StringVar(&direction, "direction", "up", "Migration direction: up, down or version")
	flag.IntVar(&steps, "steps", 0, "Number of migrations to apply, 0 means all")

	// MustLoad parses the flags declared above together with -config.
	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil)).With(
		slog.String("driver", cfg.Database.Driver),
	)

	m, err := repo.NewMigrator(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Error("failed to create migrator", sl.Err(err))
		os.Exit(1)
	}
	defer m.Close()

	switch direction {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Error("failed to read version", sl.Err(verr))
			os.Exit(1)
		}
		log.Info("current version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		return
	default:
		log.Error("unknown direction", slog.String("direction", direction))
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return
		}
		log.Error("migration failed", slog.String("direction", direction), sl.Err(err))
		os.Exit(1)
	}

	log.Info("migrations applied", slog.String("direction", direction))
}
