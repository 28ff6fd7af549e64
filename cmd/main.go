package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/code-doctor/backend/internal/cache"
	"github.com/code-doctor/backend/internal/config"
	"github.com/code-doctor/backend/internal/handler"
	"github.com/code-doctor/backend/internal/metrics"
	"github.com/code-doctor/backend/internal/ollama"
	"github.com/code-doctor/backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/code-doctor/backend/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title AI Code Doctor API
// @version 1.0.0
// @description Relay between uploaded source files with questions and a local Ollama server.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := log.Default()
	client := ollama.NewClient(logger, cfg.Ollama)
	askService := service.NewAskService(logger, client, cfg.Ollama)

	if cfg.CacheEnable {
		redisCache := cache.NewRedisCache(
			cfg.RedisConfig.Addr,
			cfg.RedisConfig.Password,
			cfg.RedisConfig.DB,
			cfg.RedisConfig.TTL,
		)
		askService.SetCacheClient(redisCache)
		logger.Println("set redis as answer cache")
	}

	a := handler.NewAskHandler(logger, askService, cfg)
	h := handler.NewHealthHandler()

	r := chi.NewRouter()
	r.Use([]func(http.Handler) http.Handler{
		middleware.Logger,
		middleware.Recoverer,
		middleware.Throttle(cfg.Server.ThrottleLimit),
		middleware.Timeout(cfg.Server.Timeout),
		metrics.Middleware,
	}...)

	r.Get("/", h.Health)
	r.Get("/models", a.Models)
	r.Post("/ask", a.Ask)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Printf("server started :%s\n", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Println("server stopped")
}
