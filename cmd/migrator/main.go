package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"hackfest/internal/lib/sl"
	"hackfest/migrations"

	"github.com/golang-migrate/migrate/v4"
)

func main() {
	var (
		dsn       = flag.String("dsn", os.Getenv("DATABASE_URL"), "postgres connection url")
		direction = flag.String("direction", "up", "up or down")
		steps     = flag.Int("steps", 0, "number of migrations to apply; 0 means all")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *dsn == "" {
		log.Error("dsn is required")
		os.Exit(2)
	}

	m, err := migrations.New(*dsn)
	if err != nil {
		log.Error("failed to init migrator", sl.Err(err))
		os.Exit(1)
	}
	defer m.Close()

	switch {
	case *steps != 0 && *direction == "down":
		err = m.Steps(-*steps)
	case *steps != 0:
		err = m.Steps(*steps)
	case *direction == "down":
		err = m.Down()
	case *direction == "up":
		err = m.Up()
	default:
		log.Error("unknown direction", slog.String("direction", *direction))
		os.Exit(2)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no migrations to apply")
		return
	}
	if err != nil {
		log.Error("migration failed", sl.Err(err))
		os.Exit(1)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Error("failed to read schema version", sl.Err(err))
		os.Exit(1)
	}

	log.Info("migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
}
