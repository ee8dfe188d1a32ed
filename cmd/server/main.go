package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/api"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/buildconfig"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/config"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/metrics"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/seed"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/service"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func main() {
	if err := config.Load(); err != nil {
		panic(err)
	}

	logger, err := newLogger(config.LogLevel())
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	svc := service.NewBeliefService(logger, m, config.StrictMode())

	if path := config.SeedFile(); path != "" {
		doc, err := seed.LoadFile(path)
		if err != nil {
			logger.Fatal("failed to read seed", zap.String("path", path), zap.Error(err))
		}
		if err := svc.LoadSeed(doc); err != nil {
			logger.Fatal("failed to apply seed", zap.String("path", path), zap.Error(err))
		}

		if config.WatchSeed() {
			go func() {
				err := seed.Watch(ctx, path, logger, func(doc *seed.Document) {
					_ = svc.LoadSeed(doc)
				})
				if err != nil {
					logger.Error("seed watcher stopped", zap.Error(err))
				}
			}()
		}
	}

	app := api.NewApp(ctx, svc, m, logger, api.Options{
		RateLimitRPS:   config.RateLimitRPS(),
		RateLimitBurst: config.RateLimitBurst(),
		APIToken:       config.APIToken(),
	})

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr), zap.String("build", buildconfig.String()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", zap.Error(err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
