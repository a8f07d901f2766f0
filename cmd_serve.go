package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpLayer "sourdough-calculator/http"
	"sourdough-calculator/repository"
	"sourdough-calculator/service"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator and guides as a JSON API",
	Long: `Starts the HTTP API:

  POST /recipe/calculate          calculate a recipe (rate limited)
  GET  /recipe/defaults           default inputs
  GET  /guide                     baking guide (?format=markdown)
  GET  /troubleshooting           troubleshooting reference (?format=markdown)
  GET  /troubleshooting/search?q= search the troubleshooting reference
  GET  /health                    liveness`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides SOURDOUGH_ADDR)")
}

func newCache(ctx context.Context) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory recipe cache",
			zap.Duration("ttl", cfg.CacheTTL),
			zap.Int("max_entries", cfg.CacheMax),
		)
		return repository.NewMemoryCache(cfg.CacheTTL, cfg.CacheMax), func() {}
	}

	cache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
	if err := cache.Ping(ctx); err != nil {
		// Calculation never depends on the cache; keep going and let reads miss.
		logger.Warn("redis unreachable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	} else {
		logger.Info("using redis recipe cache", zap.String("addr", cfg.RedisAddr))
	}
	return cache, func() { _ = cache.Close() }
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	cache, closeCache := newCache(cmd.Context())
	defer closeCache()

	recipeService := service.NewRecipeService(cache, logger)
	recipeHandler := httpLayer.NewRecipeHandler(recipeService, logger)

	contentService, err := newContentService()
	if err != nil {
		return err
	}
	contentHandler := httpLayer.NewContentHandler(contentService, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         addr,
		Handler:      httpLayer.NewRouter(recipeHandler, contentHandler, rateLimiter, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("api listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
		return err
	}

	logger.Info("server exited")
	return nil
}
