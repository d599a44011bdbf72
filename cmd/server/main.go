// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"appdesigner/internal/common/config"
	"appdesigner/internal/common/logger"
	"appdesigner/internal/common/observability"
	"appdesigner/internal/export/figma"
	"appdesigner/internal/extractor"
	"appdesigner/internal/preview"
	"appdesigner/internal/server"
	"appdesigner/internal/store"
	"appdesigner/internal/synthesizer"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting design API server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Provider chain: groq, then anthropic if keyed, then rules ---
	var providers []extractor.Provider
	if cfg.Providers.Groq.APIKey != "" {
		providers = append(providers, extractor.NewOpenAICompatProvider("groq", cfg.Providers.Groq))
		zapLog.Info("Groq provider enabled", zap.String("model", cfg.Providers.Groq.Model))
	}
	if cfg.Providers.Anthropic.APIKey != "" {
		providers = append(providers, extractor.NewAnthropicProvider(cfg.Providers.Anthropic))
		zapLog.Info("Anthropic provider enabled", zap.String("model", cfg.Providers.Anthropic.Model))
	}
	ext := extractor.New(log, providers...)

	st := store.New()
	synth := synthesizer.New(preview.NewRenderer(), log)
	exporter := figma.NewClient(cfg.Figma.BaseURL, config.GetDuration(cfg.Figma.Timeout), st, log)

	// --- Rate limiter: redis when configured, in-process otherwise ---
	window := time.Duration(cfg.Server.RateLimit.WindowMinutes) * time.Minute
	var limiter server.Limiter
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		err = retryWithBackoff(func() error {
			return redisClient.Ping(ctx).Err()
		}, 5, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Warn("redis unavailable, using in-process rate limiter", zap.Error(err))
			limiter = server.NewMemoryLimiter(cfg.Server.RateLimit.MaxRequests, window)
		} else {
			defer redisClient.Close()
			limiter = server.NewRedisLimiter(redisClient, cfg.Server.RateLimit.MaxRequests, window)
			zapLog.Info("Redis connected successfully")
		}
	} else {
		limiter = server.NewMemoryLimiter(cfg.Server.RateLimit.MaxRequests, window)
	}

	srv := server.New(cfg, log, st, ext, synth, exporter, limiter, obs)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
	zapLog.Info("Server stopped")
}
