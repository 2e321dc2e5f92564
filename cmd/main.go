package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tourops/security_intel_system/internal/config"
	"github.com/tourops/security_intel_system/internal/geo"
	v1 "github.com/tourops/security_intel_system/internal/handler/http/v1"
	"github.com/tourops/security_intel_system/internal/metrics"
	"github.com/tourops/security_intel_system/internal/provider"
	"github.com/tourops/security_intel_system/internal/repository"
	"github.com/tourops/security_intel_system/internal/service"
	"github.com/tourops/security_intel_system/internal/webhook"
	"github.com/tourops/security_intel_system/pkg/logger"
	"github.com/tourops/security_intel_system/pkg/postgres"
	redisclient "github.com/tourops/security_intel_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/tourops/security_intel_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Security Intel System API
// @version 1.0
// @description Security intelligence aggregation and risk scoring API for touring event operations.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя алертов и воркера доставки вебхуков
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)
	alertWorker := webhook.NewAlertWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	// Инициализация репозитория кеша
	cacheRepo := repository.NewIntelCacheRepository(dbpool, redisClient)

	// Инициализация провайдеров данных
	acled := provider.NewACLED(cfg, log)
	gdelt := provider.NewGDELT(cfg, log)
	mediastack := provider.NewMediaStack(cfg, log)
	rss := provider.NewRSS(cfg, log)
	official := provider.NewOfficial(cfg, log)
	geocoder := geo.NewGeocoder(cfg, log)

	if !cfg.ACLEDConfigured() {
		log.Warn("ACLED credentials not configured, falling back to news-based sources")
	}

	// Инициализация метрик
	m := metrics.New()

	// Инициализация сервиса
	intelService := service.NewSecurityIntelService(
		acled, gdelt, mediastack, rss, official,
		geocoder, cacheRepo, alertPublisher, log, cfg, m,
	)

	// Инициализация хэндлеров
	handler := v1.NewHandler(intelService, log, cfg)

	// Настройка Gin роутера. Health-check остается открытым,
	// остальные маршруты за API-ключом.
	router := gin.Default()
	open := router.Group("/api/v1")
	handler.RegisterSystemRoutes(open)

	api := router.Group("/api/v1")
	api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	handler.RegisterRoutes(api)

	// Маршрут для Prometheus-метрик
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
