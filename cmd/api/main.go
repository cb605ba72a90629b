package main

// @title Cellmap Service API
// @version 1.0.0
// @description Хороплетная карта S2 ячеек с метриками безопасности по локациям.
// @description
// @description Основные возможности:
// @description - Список локаций и метрик датасета
// @description - Расчет представления карты: стили полигонов, попапы, легенда, границы
// @description - Выгрузка ячеек локации в GeoJSON
// @description - Интерактивная карта на Leaflet по адресу /

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/cellmap-service/docs"
	"github.com/cellmap-service/internal/config"
	httpDelivery "github.com/cellmap-service/internal/delivery/http"
	"github.com/cellmap-service/internal/delivery/http/handler"
	"github.com/cellmap-service/internal/domain/repository"
	"github.com/cellmap-service/internal/export"
	"github.com/cellmap-service/internal/pkg/logger"
	"github.com/cellmap-service/internal/repository/cache"
	"github.com/cellmap-service/internal/repository/dataset"
	"github.com/cellmap-service/internal/usecase"
	"github.com/cellmap-service/internal/worker"
	"github.com/cellmap-service/internal/worker/reload"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Cellmap Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("dataset_source", cfg.Dataset.Source),
	)

	// 3. Dataset source
	source, closeSource, err := dataset.NewSource(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize dataset source", zap.Error(err))
	}
	defer func() {
		if err := closeSource(); err != nil {
			log.Error("Failed to close dataset source", zap.Error(err))
		}
	}()

	// 4. Connect to Redis (optional)
	var cacheRepo repository.CacheRepository = cache.NewNopRepository()
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	} else {
		log.Info("Redis disabled, view cache is off")
	}

	// 5. Initialize Use Cases
	viewerUC := usecase.NewViewerUseCase(
		source,
		cacheRepo,
		cfg.Dataset.LoadTimeout,
		cfg.Cache.ViewCacheTTL,
		log,
	)

	// Первичная загрузка. Ошибка не фатальна: API отвечает 503, страница показывает причину.
	if err := viewerUC.Load(context.Background()); err != nil {
		log.Error("Initial dataset load failed", zap.Error(err))
	}

	// 6. Initialize HTTP Handlers
	mapOpts := export.MapOptions{
		TileURL:     cfg.Map.TileURL,
		Attribution: cfg.Map.Attribution,
		MinZoom:     cfg.Map.MinZoom,
		MaxZoom:     cfg.Map.MaxZoom,
	}
	viewerHandler := handler.NewViewerHandler(viewerUC, log)
	pageHandler := handler.NewPageHandler(viewerUC, mapOpts, httpDelivery.APIPrefix, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, viewerHandler, pageHandler)

	// 8. Workers
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	var workerManager *worker.WorkerManager
	if cfg.Worker.ReloadEnabled {
		workerManager = worker.NewWorkerManager(log, worker.DefaultShutdownTimeout)
		workerManager.Register(reload.NewDatasetReloadWorker(viewerUC, cfg.Worker.ReloadInterval, log))
		if err := workerManager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if workerManager != nil {
		cancelWorkers()
		if err := workerManager.Stop(); err != nil {
			log.Error("Error stopping workers", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
