package main

import (
	"context"
	"embed"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mergington-edu/activities/internal/api"
	"github.com/mergington-edu/activities/internal/config"
	"github.com/mergington-edu/activities/internal/directory"
	"github.com/mergington-edu/activities/internal/logger"
	"github.com/mergington-edu/activities/internal/server"
)

//go:embed all:static
var frontend embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zl.Sync()

	dir := directory.New(directory.Seed())
	zl.Info("activity directory seeded", zap.Int("activities", dir.Len()))

	static, err := fs.Sub(frontend, "static")
	if err != nil {
		zl.Fatal("failed to mount front end", zap.Error(err))
	}

	handler := api.NewHandler(dir, zl)
	router := server.New(handler, zl, static)

	srv := &http.Server{
		Addr:         cfg.HTTPAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zl.Info("activities API listening", zap.String("address", cfg.HTTPAddress))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	<-shutdownCh
	zl.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
}
