package main

import (
	"errors"
	"flag"
	"log"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration instead of migrating up")
	version := flag.Bool("version", false, "print the current schema version and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	m, err := database.NewMigrator(db.DB)
	if err != nil {
		l.Fatal("Failed to prepare migrator", zap.Error(err))
	}

	switch {
	case *version:
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			l.Info("No migrations applied yet")
			return
		}
		if err != nil {
			l.Fatal("Failed to read schema version", zap.Error(err))
		}
		l.Info("Schema version", zap.Uint("version", v), zap.Bool("dirty", dirty))
	case *down:
		if err := m.Steps(-1); err != nil {
			l.Fatal("Failed to roll back migration", zap.Error(err))
		}
		l.Info("Rolled back one migration")
	default:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			l.Fatal("Failed to apply migrations", zap.Error(err))
		}
		l.Info("Migrations applied")
	}
}
