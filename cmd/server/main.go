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

	"github.com/ByLCY/faktura/config"
	"github.com/ByLCY/faktura/export"
	canvasrenderer "github.com/ByLCY/faktura/renderer/canvas"
	"github.com/ByLCY/faktura/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	geometry, err := cfg.Geometry()
	if err != nil {
		logger.Fatal("invalid document geometry", zap.Error(err))
	}
	dates, err := cfg.Dates()
	if err != nil {
		logger.Fatal("invalid date settings", zap.Error(err))
	}

	// one renderer is shared; every request lays out on its own collector
	gen := export.NewGenerator(canvasrenderer.NewRenderer(), export.Options{
		Logger:          logger,
		FileNamePattern: cfg.Document.FileNamePattern,
		Geometry:        geometry,
		Dates:           dates,
		Creator:         cfg.App.Name,
	})
	handler := server.NewHandler(gen, cfg.Document.DefaultCurrency, logger)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: server.New(handler, server.Options{
			Timeout:        cfg.Server.Timeout,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			Logger:         logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
