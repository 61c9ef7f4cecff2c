package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/l6131a-ai/LLM/internal/client"
	"github.com/l6131a-ai/LLM/internal/config"
	"github.com/l6131a-ai/LLM/internal/server"
	"github.com/l6131a-ai/LLM/internal/service"
	"github.com/l6131a-ai/LLM/internal/storage/cache"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	// The API key lives in .env, absent file is fine.
	_ = godotenv.Load()

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	api := client.InitClient(cfg.API, cfg.App.Timeout)
	cache := cache.NewCache()
	services := service.InitServices(api, cache, cfg.API, logger)

	mux, err := server.NewRouter(cfg, services, logger)
	if err != nil {
		logger.Fatal("failed init router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    cfg.App.Addr,
		Handler: mux,
	}

	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.App.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server closed unexpectedly", zap.Error(err))
	}
	logger.Info("server stopped")
}
