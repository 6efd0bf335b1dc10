package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fin-advisory/internal/advisory/advice"
	"fin-advisory/internal/advisory/emotion"
	"fin-advisory/internal/advisory/pipeline"
	"fin-advisory/internal/audit"
	"fin-advisory/internal/common/config"
	"fin-advisory/internal/common/database"
	"fin-advisory/internal/common/genai"
	"fin-advisory/internal/common/logger"
	"fin-advisory/internal/common/observability"
	"fin-advisory/internal/ratelimit"
	"fin-advisory/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting advisor server",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	tracing, err := observability.NewTracing(cfg.App.Name, cfg.Observability.JaegerEndpoint)
	if err != nil {
		zapLog.Fatal("tracing setup failed", zap.Error(err))
	}
	defer tracing.Shutdown()

	ctx := context.Background()

	// --- Generation client ---
	genaiClient := genai.NewHTTPClient(&genai.Config{
		BaseURL: cfg.GenAI.BaseURL,
		APIKey:  cfg.GenAI.APIKey,
		Model:   cfg.GenAI.Model,
		Timeout: time.Duration(cfg.GenAI.Timeout) * time.Millisecond,
	})
	zapLog.Info("generation client configured", zap.String("model", cfg.GenAI.Model))

	// --- Optional audit trail ---
	var recorder audit.Recorder = audit.NopRecorder{}
	if cfg.Audit.Enabled {
		pg, err := database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			zapLog.Fatal("postgres setup failed", zap.Error(err))
		}
		if err := pg.Ping(ctx); err != nil {
			zapLog.Fatal("postgres unreachable", zap.Error(err))
		}
		defer pg.Close()
		recorder = audit.NewStore(pg.DB, log)
		zapLog.Info("audit trail enabled")
	}

	// --- Optional rate limiter ---
	var limiter server.RateLimiter
	if cfg.RateLimit.Enabled {
		rdb, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Fatal("redis setup failed", zap.Error(err))
		}
		if err := rdb.Ping(ctx); err != nil {
			zapLog.Fatal("redis unreachable", zap.Error(err))
		}
		defer rdb.Close()
		limiter = ratelimit.New(
			rdb.Client,
			cfg.RateLimit.RequestsPerWindow,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
			log,
		)
		zapLog.Info("rate limiter enabled",
			zap.Int("requestsPerWindow", cfg.RateLimit.RequestsPerWindow),
			zap.Int("windowSeconds", cfg.RateLimit.WindowSeconds),
		)
	}

	// --- Pipeline assembly ---
	classifier := emotion.NewClassifier(genaiClient, log)
	generator := advice.NewGenerator(genaiClient, log)
	advisoryPipeline := pipeline.New(classifier, generator, log,
		pipeline.WithRecorder(recorder),
		pipeline.WithObservability(obs, tracing),
	)

	router := server.NewRouter(advisoryPipeline, limiter, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	zapLog.Info("stopped")
}
