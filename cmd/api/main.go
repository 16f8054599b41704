package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"teamsynchub/internal/adapter/api"
	"teamsynchub/internal/adapter/api/handler"
	apimiddleware "teamsynchub/internal/adapter/api/middleware"
	"teamsynchub/internal/adapter/api/router"
	"teamsynchub/internal/bootstrap"
	"teamsynchub/internal/domain/service"
	"teamsynchub/internal/infrastructure/firebase"
	"teamsynchub/internal/infrastructure/llm"
	"teamsynchub/internal/infrastructure/ratelimit"
	"teamsynchub/internal/infrastructure/storage"
	"teamsynchub/internal/infrastructure/websocket"
	"teamsynchub/internal/usecase"
	"teamsynchub/pkg/config"
	"teamsynchub/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open entity store: %v", err)
	}
	defer store.Close()

	var controllerOpts []usecase.StateControllerOption

	if cfg.StorageBucket != "" {
		var storageOpts []option.ClientOption
		opt, err := firebase.CredentialOption(cfg)
		if err != nil {
			log.Fatalf("Failed to load storage credentials: %v", err)
		}
		if opt != nil {
			storageOpts = append(storageOpts, opt)
		}

		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, storageOpts...)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		controllerOpts = append(controllerOpts, usecase.WithFileUploads(storageClient))
	} else {
		logger.Warn("STORAGE_BUCKET is not set, avatar uploads are disabled")
	}

	var generator service.TextGenerator
	if cfg.AnthropicAPIKey != "" {
		generator = llm.NewAnthropicGenerator(cfg.AnthropicAPIKey, cfg.SummaryModel, cfg.SummaryMaxTokens)
	} else {
		logger.Warn("ANTHROPIC_API_KEY is not set, topic summaries are disabled")
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)
	controllerOpts = append(controllerOpts, usecase.WithNotifier(wsManager))

	authUseCase := usecase.NewAuthUseCase(store.Repositories.Users)
	storeClient := usecase.NewStoreClient(store.Repositories)
	if err := storeClient.EnsureSeeded(ctx); err != nil {
		logger.Warn("Startup seeding failed, retrying on first sign-in: %v", err)
	}
	controller := usecase.NewStateController(authUseCase, storeClient, service.NewSummarizer(generator), controllerOpts...)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter(map[string]int{
		ratelimit.ActionSummarize:   cfg.SummaryRatePerMinute,
		ratelimit.ActionSendMessage: cfg.MessageRatePerMinute,
	})
	limiter.StartCleanupRoutine()

	handler.Setup(controller, wsManager)
	router.Setup(e, apimiddleware.NewSessionMiddleware(controller), limiter)

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed: %v", err)
	}
}
