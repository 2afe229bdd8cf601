package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mcoot/wordhunt/internal/api"
	"github.com/mcoot/wordhunt/internal/factory"
	redisstorage "github.com/mcoot/wordhunt/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		DictionaryPath: getEnvOrDefault("WORDHUNT_DICTIONARY", "words_alpha.txt"),
		Logger:         logger,
		StorageType:    os.Getenv("STORAGE_TYPE"),
		ScoreLogType:   getEnvOrDefault("WORDHUNT_SCORE_BACKEND", factory.ScoreLogStorage),
		ScoreLogPath:   os.Getenv("WORDHUNT_SCORE_LOG"),
		HintStrategy:   os.Getenv("WORDHUNT_HINT_STRATEGY"),
	}
	if limit := os.Getenv("WORDHUNT_TIME_LIMIT"); limit != "" {
		d, err := time.ParseDuration(limit)
		if err != nil {
			logger.Error("invalid WORDHUNT_TIME_LIMIT", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg.TimeLimit = d
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.Close()

	// Load dictionary; rounds are refused until one is available
	if err := app.LoadDictionary(context.Background()); err != nil {
		logger.Warn("could not load dictionary", slog.String("error", err.Error()))
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		GameController:    app.GameController,
		DictionaryService: app.DictionaryService,
		HintsService:      app.HintsService,
		StatsService:      app.StatsService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
