package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strings"
	"travel-locator-service/internal/adapters/repositories"
	"travel-locator-service/internal/config"
	"travel-locator-service/internal/platform/db"
	"travel-locator-service/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.Any("err", err))
		os.Exit(1)
	}
	log := logger.New(cfg.Env)

	var (
		conn    *sql.DB
		dialect repositories.Dialect
	)
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		conn, err = db.Open(cfg.DatabaseURL)
		dialect = repositories.DialectPostgres
	} else {
		conn, err = db.OpenSQLite(cfg.DBPath)
		dialect = repositories.DialectSQLite
	}
	if err != nil {
		log.Error("open database", slog.Any("err", err))
		os.Exit(1)
	}
	defer conn.Close()

	if err := initAndSeed(context.Background(), log, conn, dialect, cfg.CatalogSeedPath); err != nil {
		log.Error("dbtool failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func initAndSeed(ctx context.Context, log *slog.Logger, conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	log.Info("initializing database schema", slog.String("dialect", string(dialect)))
	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		return err
	}
	log.Info("schema ready")

	log.Info("seeding place catalog", slog.String("path", seedPath))
	if err := repositories.SeedCatalogFromJSON(ctx, conn, dialect, seedPath); err != nil {
		return err
	}
	log.Info("seeding complete")

	return nil
}
