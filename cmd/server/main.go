package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starforge-server/internal/middleware"
	"starforge-server/internal/server"
	"starforge-server/internal/shared/config"
	"starforge-server/internal/shared/logger"
	"starforge-server/internal/shared/redis"
	"starforge-server/internal/universe"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	logger.Init()
	cfg := config.GlobalConfig
	mainLogger := slog.With("component", "main")

	cache, err := redis.Connect()
	if err != nil {
		// The cache is pure performance; run without it rather than die.
		mainLogger.Warn("Redis unavailable, continuing without cache", "error", err)
		cache = nil
	}
	defer cache.Close()

	universeService := universe.NewService(cfg.Universe.Seed, cache, cfg.Universe.CacheTTL, slog.Default())

	routes := server.NewRoutes(universeService, cache, cfg.Terrain, slog.Default())
	mux := routes.Setup()

	corsMiddleware := middleware.NewCORS()
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
		Enabled:           cfg.RateLimit.Enabled,
	})

	handler := corsMiddleware.Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		mainLogger.Info("Starforge server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"universe_seed", cfg.Universe.Seed,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			mainLogger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	mainLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		mainLogger.Error("Forced shutdown", "error", err)
	}
	mainLogger.Info("Server stopped")
}
