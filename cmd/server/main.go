package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-backend/internal/audit"
	"travel-backend/internal/auth"
	"travel-backend/internal/booking"
	"travel-backend/internal/catalog"
	"travel-backend/internal/config"
	"travel-backend/internal/database"
	"travel-backend/internal/heroimage"
	"travel-backend/internal/logging"
	"travel-backend/internal/metrics"
	"travel-backend/internal/server"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := logging.New(cfg)

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func run(cfg *config.Config, logger *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	var denylist auth.Denylist
	if cfg.RedisEnabled() {
		rdb := initRedis(ctx, cfg, logger)
		if rdb != nil {
			defer func() { _ = rdb.Close() }()
			denylist = auth.NewRedisDenylist(rdb)
		}
	}

	authSvc, err := auth.NewService(db, tokens, auth.AdminCredentials{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}, cfg.BcryptCost, logger)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	var m *metrics.Metrics
	var observer booking.Observer
	if cfg.MetricsEnabled {
		m = metrics.New()
		observer = m
	}

	rec := audit.NewRecorder(db, logger)
	store := catalog.NewStore(db, rec, logger)

	app := server.New(server.Deps{
		Logger:      logger,
		DB:          db,
		CORSOrigins: cfg.CORSOrigins,
		Tokens:      tokens,
		Denylist:    denylist,
		Auth:        authSvc,
		Catalog:     store,
		Bookings:    booking.NewService(db, store, observer, logger),
		HeroImage:   heroimage.NewService(db, rec),
		Audit:       rec,
		Metrics:     m,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("server is running")
		errCh <- app.Listen(":" + cfg.HTTPPort)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutdown signal received")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error().Err(err).Msg("http shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

// initRedis returns nil when Redis is unreachable; the server then runs
// without logout support.
func initRedis(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) *redis.Client {
	rdb := auth.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := auth.Ping(pingCtx, rdb); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, token revocation disabled")
		_ = rdb.Close()
		return nil
	}

	logger.Info().Str("addr", cfg.RedisAddr).Msg("redis connected")
	return rdb
}
