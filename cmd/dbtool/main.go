package main

import (
	"database/sql"
	"directions-route-service/internal/adapters/repositories"
	"directions-route-service/internal/config"
	"directions-route-service/internal/platform/db"
	"directions-route-service/internal/platform/logging"

	"go.uber.org/zap"
)

// dbtool initialises the schema and seeds saved routes, against Postgres when
// DATABASE_URL is set and SQLite at DB_PATH otherwise.
func main() {
	dotenv := config.LoadDotEnv()

	logger, err := logging.New(config.Get("APP_ENV", "development"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if !dotenv {
		logger.Info("no .env file found, using environment variables")
	}

	var (
		conn    *sql.DB
		dialect repositories.Dialect
	)
	if databaseURL := config.Get("DATABASE_URL", ""); databaseURL != "" {
		conn, err = db.Open(databaseURL)
		dialect = repositories.Postgres
	} else {
		conn, err = db.OpenSqlite(config.Get("DB_PATH", "data/app.db"))
		dialect = repositories.Sqlite
	}
	if err != nil {
		logger.Fatal("open database failed", zap.Error(err))
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/routes.json")
	initAndSeed(conn, dialect, seedPath, logger)
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, seedPath string, logger *zap.Logger) {
	logger.Info("initializing database schema", zap.String("dialect", string(dialect)))
	if err := repositories.InitSchema(conn, dialect); err != nil {
		logger.Fatal("schema initialization failed", zap.Error(err))
	}
	logger.Info("schema ready")

	logger.Info("seeding database", zap.String("path", seedPath))
	if err := repositories.SeedFromJSON(conn, dialect, seedPath); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding complete")
}
