package main

import (
	"context"
	"database/sql"
	"directions-route-service/internal/adapters/cache"
	"directions-route-service/internal/adapters/directions"
	"directions-route-service/internal/adapters/repositories"
	"directions-route-service/internal/api"
	"directions-route-service/internal/config"
	"directions-route-service/internal/platform/db"
	"directions-route-service/internal/platform/logging"
	"directions-route-service/internal/ports"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (SQL, Redis, Google) behind ports and starts the HTTP server.
func main() {
	dotenv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if !dotenv {
		logger.Info("no .env file found, using environment variables")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, dialect, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Initialize schema and seed saved routes on startup for local runs.
	if err := initAndSeed(conn, dialect, cfg.SeedPath, logger); err != nil {
		return err
	}

	opts := []directions.GoogleOption{directions.WithLogger(logger)}
	if cfg.DirectionsBaseURL != "" {
		opts = append(opts, directions.WithBaseURL(cfg.DirectionsBaseURL))
	}
	google, err := directions.NewGoogleDirectionsFetcher(cfg.GoogleAPIKey, opts...)
	if err != nil {
		return err
	}

	fetcher, closeCache, err := withCache(ctx, cfg, conn, dialect, google, logger)
	if err != nil {
		return err
	}
	defer closeCache.Close()

	var repo ports.RouteRepository = repositories.NewSqliteRouteRepository(conn)
	if dialect == repositories.Postgres {
		repo = repositories.NewPostgresRouteRepository(conn)
	}

	router := api.NewRouter(repo, fetcher, cfg.MaxWaypoints, logger)

	// A long route takes one upstream call per chunk; the write timeout covers the whole resolution.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("cache", cfg.CacheBackend),
			zap.String("db", string(dialect)),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openDB uses Postgres when DATABASE_URL is set and the SQLite file at DB_PATH otherwise.
func openDB(cfg config.Config) (*sql.DB, repositories.Dialect, error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, repositories.Postgres, err
	}
	conn, err := db.OpenSqlite(cfg.DBPath)
	return conn, repositories.Sqlite, err
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, seedPath string, logger *zap.Logger) error {
	if err := repositories.InitSchema(conn, dialect); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); errors.Is(err, os.ErrNotExist) {
		logger.Info("no seed file, skipping", zap.String("path", seedPath))
		return nil
	}

	if err := repositories.SeedFromJSON(conn, dialect, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// withCache wraps fetcher with the configured polyline cache. The sql backends
// keep their table in the main database, so they follow its dialect.
func withCache(
	ctx context.Context,
	cfg config.Config,
	conn *sql.DB,
	dialect repositories.Dialect,
	fetcher ports.DirectionsFetcher,
	logger *zap.Logger,
) (ports.DirectionsFetcher, io.Closer, error) {
	var store cache.PolylineStore
	var closer io.Closer = nopCloser{}

	switch cfg.CacheBackend {
	case config.CacheNone:
		return fetcher, closer, nil
	case config.CacheRedis:
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		store = cache.NewRedisPolylineCache(client, cfg.CacheTTL)
		closer = client
	default:
		if dialect == repositories.Postgres {
			store = cache.NewSQLPolylineCache(conn, cfg.CacheTTL)
		} else {
			store = cache.NewSqlitePolylineCache(conn, cfg.CacheTTL)
		}
	}

	return cache.NewCachedDirectionsFetcher(fetcher, store, logger), closer, nil
}
