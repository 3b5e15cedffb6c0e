package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"

	"article-api/internal/config"
	"article-api/internal/lib/logger"
	"article-api/internal/lib/logger/sl"
	"article-api/internal/storage/migrations"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env).With(slog.String("driver", cfg.Storage.Driver))

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	m, err := migrations.Open(cfg.Storage)
	if err != nil {
		log.Error("failed to init migrations", sl.Error(err))
		os.Exit(1)
	}

	if err := run(m, flag.Args(), log); err != nil {
		log.Error("migration failed", sl.Error(err))
		closeMigrator(m, log)
		os.Exit(1)
	}

	closeMigrator(m, log)
}

func run(m *migrate.Migrate, args []string, log *slog.Logger) error {
	switch args[0] {
	case "up":
		err := m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no change: schema is up to date")
			return nil
		}
		if err != nil {
			return err
		}
		log.Info("migrations applied")

	case "down":
		if err := m.Steps(-1); err != nil {
			return err
		}
		log.Info("last migration rolled back")

	case "goto":
		if len(args) < 2 {
			return errors.New("goto needs a version number")
		}
		version, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}

		err = m.Migrate(uint(version))
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no change: schema is already at version", slog.Uint64("version", version))
			return nil
		}
		if err != nil {
			return err
		}
		log.Info("migrated", slog.Uint64("version", version))

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info("no migrations applied yet")
			return nil
		}
		if err != nil {
			return err
		}
		log.Info("current version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	return nil
}

func closeMigrator(m *migrate.Migrate, log *slog.Logger) {
	if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
		log.Error("failed to close migrator", slog.Any("source_error", srcErr), slog.Any("db_error", dbErr))
	}
}

func printUsage() {
	fmt.Println("Usage: migrate [-config path] <command>")
	fmt.Println("Commands:")
	fmt.Println("  up        apply all pending migrations")
	fmt.Println("  down      roll back the last migration")
	fmt.Println("  goto N    migrate to version N")
	fmt.Println("  version   print the current schema version")
}
