package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"travel-locator-service/internal/adapters/cache"
	"travel-locator-service/internal/adapters/places"
	"travel-locator-service/internal/adapters/probe"
	"travel-locator-service/internal/adapters/repositories"
	"travel-locator-service/internal/api"
	"travel-locator-service/internal/config"
	"travel-locator-service/internal/domain"
	"travel-locator-service/internal/platform/db"
	"travel-locator-service/internal/platform/logger"
	"travel-locator-service/internal/ports"
	"travel-locator-service/internal/services"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQL/Redis caches, Google Places, local catalog,
// HTTP prober) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	mode := domain.Mode(cfg.SuggestionMode)

	// Misconfiguration must be loud before shipping; production keeps serving
	// and reports it per request instead.
	if mode == domain.ModeRemote && !cfg.PlacesConfigured() && !cfg.IsProduction() {
		log.Error("SUGGESTION_MODE=remote requires GOOGLE_PLACES_API_KEY")
		os.Exit(1)
	}

	conn, dialect, err := openDB(cfg)
	if err != nil {
		log.Error("open database", slog.Any("err", err))
		os.Exit(1)
	}
	defer conn.Close()

	ctx := context.Background()
	if err := repositories.InitSchema(ctx, conn, dialect); err != nil {
		log.Error("init schema", slog.Any("err", err))
		os.Exit(1)
	}

	catalog, err := loadCatalog(ctx, repositories.NewSQLCatalogRepository(conn))
	if err != nil {
		log.Error("load catalog", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("catalog loaded", slog.Int("places", catalog.Len()))

	suggestionCache, closeCache := newSuggestionCache(cfg, conn, dialect, log)
	defer closeCache()

	google := places.NewGooglePlacesProvider(
		cfg.PlacesAPIKey,
		places.WithBaseURL(cfg.PlacesBaseURL),
		places.WithRateLimit(cfg.PlacesRateLimit, 5),
	)
	remote := places.NewCachedProvider(google, suggestionCache, log)
	resolver := services.NewSuggestionResolver(remote, catalog, cfg.SuggestionTimeout, log)

	router := api.NewRouter(api.Deps{
		Resolver:    resolver,
		DefaultMode: mode,
		Prober:      probe.NewHTTPProber(nil),
		Endpoint:    cfg.Endpoint(),
		Log:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", slog.String("addr", srv.Addr), slog.String("mode", string(mode)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", slog.Any("err", err))
	}
}

// Postgres when DATABASE_URL is set, otherwise the local SQLite file.
func openDB(cfg config.Config) (*sql.DB, repositories.Dialect, error) {
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, repositories.DialectPostgres, err
	}

	if dir := dirOf(cfg.DBPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, "", fmt.Errorf("create db dir %q: %w", dir, err)
		}
	}
	conn, err := db.OpenSQLite(cfg.DBPath)
	return conn, repositories.DialectSQLite, err
}

func dirOf(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i > 0 {
		return path[:i]
	}
	return ""
}

// Seeded rows replace the built-in list when present.
func loadCatalog(ctx context.Context, repo ports.CatalogRepository) (*places.LocalCatalog, error) {
	stored, err := repo.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(stored) == 0 {
		return places.NewLocalCatalog(nil), nil
	}
	return places.NewLocalCatalog(stored), nil
}

// Redis when REDIS_ADDR is set, else the SQL database already open.
func newSuggestionCache(
	cfg config.Config,
	conn *sql.DB,
	dialect repositories.Dialect,
	log *slog.Logger,
) (ports.SuggestionCache, func()) {
	if addr := strings.TrimSpace(cfg.RedisAddr); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn("redis unavailable, falling back to SQL suggestion cache",
				slog.String("addr", addr), slog.Any("err", err))
			_ = client.Close()
		} else {
			return cache.NewRedisSuggestionCache(client, cfg.CacheTTL), func() { _ = client.Close() }
		}
	}

	if dialect == repositories.DialectPostgres {
		return cache.NewSQLSuggestionCache(conn, cfg.CacheTTL), func() {}
	}
	return cache.NewSqliteSuggestionCache(conn, cfg.CacheTTL), func() {}
}
