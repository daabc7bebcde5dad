package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotel-search-service/internal/adapters/cache"
	"hotel-search-service/internal/adapters/messaging"
	"hotel-search-service/internal/adapters/repositories"
	"hotel-search-service/internal/api"
	"hotel-search-service/internal/config"
	"hotel-search-service/internal/platform/db"
	"hotel-search-service/internal/platform/logger"
	"hotel-search-service/internal/ports"
	"hotel-search-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (store, cache, events) behind ports and starts
// the HTTP server. Optional backends are selected by configuration: an empty
// DATABASE_URL keeps the in-memory store, empty REDIS_ADDR/NATS_URL disable
// the cache and the event stream.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	repo, cleanup, err := buildRepository(cfg, zlog)
	if err != nil {
		zlog.Fatal("store init failed", zap.Error(err))
	}
	defer cleanup()

	var searchCache services.SearchCache
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisSearchCache(cfg.RedisAddr, cfg.RedisPassword, cfg.SearchCacheTTL)
		if err != nil {
			zlog.Fatal("redis init failed", zap.Error(err))
		}
		defer func() { _ = rc.Close() }()
		searchCache = rc
		zlog.Info("search cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.SearchCacheTTL))
	}

	var publisher ports.EventPublisher
	if cfg.NATSURL != "" {
		np, err := messaging.NewNATSPublisher(cfg.NATSURL, zlog)
		if err != nil {
			zlog.Fatal("nats init failed", zap.Error(err))
		}
		defer np.Close()
		publisher = np
		zlog.Info("event publishing enabled", zap.String("url", cfg.NATSURL))
	}

	svc := services.NewHotelService(repo, searchCache, publisher, zlog)

	if cfg.SeedPath != "" {
		if err := repositories.SeedFromJSON(context.Background(), repo, cfg.SeedPath); err != nil {
			zlog.Fatal("seeding failed", zap.Error(err))
		}
		zlog.Info("seed data loaded", zap.String("path", cfg.SeedPath))
	}

	router := api.NewRouter(svc, zlog, cfg.JWTSecret)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("shutdown failed", zap.Error(err))
	}
}

// buildRepository selects the store backend. Postgres keeps records across
// restarts; the in-memory store is the default for local runs and tests.
func buildRepository(cfg *config.Config, zlog *zap.Logger) (ports.HotelRepository, func(), error) {
	if cfg.DatabaseURL == "" {
		zlog.Info("using in-memory store")
		return repositories.NewMemoryHotelRepository(), func() {}, nil
	}

	sqlDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSchema(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}

	zlog.Info("using postgres store")
	return repositories.NewPostgresHotelRepository(sqlDB), func() { _ = sqlDB.Close() }, nil
}
