package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	coreport "github.com/amirhossein-jamali/ai-marketplace/internal/domain/port/core"
	modelUseCase "github.com/amirhossein-jamali/ai-marketplace/internal/domain/usecase/model"
	promptUseCase "github.com/amirhossein-jamali/ai-marketplace/internal/domain/usecase/prompt"
	statsUseCase "github.com/amirhossein-jamali/ai-marketplace/internal/domain/usecase/stats"
	userUseCase "github.com/amirhossein-jamali/ai-marketplace/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/payment"
	timeProvider "github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/ai-marketplace/internal/infrastructure/config"
)

var cmdServe = &cli.Command{
	Name:  "serve",
	Usage: "Start the marketplace HTTP API",
	Action: func(cctx *cli.Context) error {
		if env := cctx.String("env"); env != "" {
			if err := os.Setenv("MKT_ENV", env); err != nil {
				return err
			}
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		appLogger := logger.NewZapLogger(logger.Options{
			Production: cfg.IsProduction(),
			Level:      cfg.Logger.Level,
			Service:    cctx.App.Name,
		})

		if err := os.MkdirAll(cfg.Marketplace.UploadDir, 0o755); err != nil {
			return fmt.Errorf("create upload directory: %w", err)
		}

		ctx, stop := signal.NotifyContext(cctx.Context, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, appLogger)
	},
}

// newRouter wires the store, use cases and handlers into a gin engine
func newRouter(cfg *config.Config, appLogger coreport.Logger) *gin.Engine {
	tp := timeProvider.NewRealTimeProvider()

	store := memory.NewStore(tp, appLogger,
		memory.WithInferenceBaseOffset(cfg.Marketplace.InferenceBaseOffset),
		memory.WithSeedData(cfg.Marketplace.SeedDemoData),
	)
	verifier := payment.NewHashFormatVerifier(cfg.Marketplace.StrictTransactionHash, appLogger)

	users := userUseCase.NewUserUseCase(store, appLogger)
	models := modelUseCase.NewModelUseCase(store, store, users, tp, appLogger)
	prompts := promptUseCase.NewPromptUseCase(store, store, users, verifier, appLogger)
	stats := statsUseCase.NewStatsUseCase(store, appLogger)

	topLimit := cfg.Marketplace.DefaultTopLimit

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Stats: handler.NewStatsHandler(stats, appLogger),
		Users: handler.NewUserHandler(users, models, appLogger, topLimit),
		Models: handler.NewModelHandler(models, appLogger, handler.UploadOptions{
			Dir:      cfg.Marketplace.UploadDir,
			MaxBytes: cfg.Marketplace.MaxUploadBytes(),
		}, topLimit),
		Prompt: handler.NewPromptHandler(prompts, appLogger),
	}, cfg.Marketplace.UploadDir)

	return router
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout
func serve(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) error {
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           newRouter(cfg, appLogger),
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	grp, gctx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	grp.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{
				"error": err.Error(),
			})
			return err
		}
		return nil
	})

	if err := grp.Wait(); err != nil {
		return err
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
