package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"article-api/internal/cache/redis"
	"article-api/internal/config"
	"article-api/internal/http-server/router"
	"article-api/internal/lib/logger"
	"article-api/internal/lib/logger/sl"
	articleservice "article-api/internal/service/article"
	userservice "article-api/internal/service/user"
	"article-api/internal/storage/postgres"
	"article-api/internal/storage/sqlite"
	"article-api/internal/storage/users"
)

type articleStorage interface {
	articleservice.Storage
	router.Pinger
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env)

	log.Debug("initializing server...", slog.String("addr", cfg.Address))

	loc, err := cfg.Location()
	if err != nil {
		log.Error("invalid time zone", slog.String("time_zone", cfg.TimeZone), sl.Error(err))
		os.Exit(1)
	}

	// Init storage
	storage, err := openStorage(context.Background(), cfg)
	if err != nil {
		log.Error("failed to init storage", slog.String("driver", cfg.Storage.Driver), sl.Error(err))
		os.Exit(1)
	}
	defer storage.Close()

	accounts, err := users.New(cfg.Users)
	if err != nil {
		log.Error("failed to init users", sl.Error(err))
		os.Exit(1)
	}

	opts := []articleservice.Option{articleservice.WithLocation(loc)}

	if cfg.Cache.Enabled {
		cache, err := redis.New(context.Background(), cfg.Cache.Address, cfg.Cache.Password, cfg.Cache.DB, cfg.Cache.TTL)
		if err != nil {
			log.Error("failed to init cache", slog.String("addr", cfg.Cache.Address), sl.Error(err))
			os.Exit(1)
		}
		defer cache.Close()

		opts = append(opts, articleservice.WithCache(cache))
		log.Info("statistics cache enabled", slog.String("addr", cfg.Cache.Address))
	}

	// Init service layer
	artService := articleservice.New(log, storage, opts...)
	usrService := userservice.New(log, accounts, cfg.TokenTTL, cfg.Secret)

	// Handlers and middleware
	r := router.New(log, cfg.Secret, artService, usrService, storage)

	srv := http.Server{
		Handler:      r,
		Addr:         cfg.Address,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	log.Debug("server initialized")
	log.Info("server is running...", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))

	// Gracefully shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error starting server", sl.Error(err))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to stop server", sl.Error(err))
		return
	}

	log.Info("server stopped")
}

func openStorage(ctx context.Context, cfg *config.Config) (articleStorage, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.Path), 0o755); err != nil {
			return nil, err
		}
		return sqlite.New(cfg.Storage.Path)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.Storage.DSN, cfg.Storage.MaxConns)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Storage.Driver)
	}
}
