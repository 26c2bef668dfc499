package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/incident_response_system/internal/config"
	v1 "github.com/shenikar/incident_response_system/internal/handler/http/v1"
	"github.com/shenikar/incident_response_system/internal/repository"
	"github.com/shenikar/incident_response_system/internal/security"
	"github.com/shenikar/incident_response_system/internal/service"
	"github.com/shenikar/incident_response_system/internal/simulator"
	"github.com/shenikar/incident_response_system/internal/webhook"
	"github.com/shenikar/incident_response_system/pkg/logger"
	redisclient "github.com/shenikar/incident_response_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/incident_response_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Incident Response Dashboard API
// @version 1.0
// @description Demo incident-response dashboard: simulated telemetry, risk classification and incident lifecycle.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

	// Инициализация хранилища с демонстрационными данными
	store := repository.NewMemoryStore(cfg.SimulationSeed)

	// Инициализация симулятора телеметрии
	sim := simulator.New(store, cfg.SimulationSeed, log)

	// Публикация вебхуков работает только при настроенном Redis
	var publisher webhook.Publisher = webhook.NewNoopPublisher()
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		publisher = webhook.NewRedisPublisher(redisClient)

		// Инициализация и запуск воркера вебхуков
		webhookWorker := webhook.NewWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	} else {
		log.Info("REDIS_ADDR is empty, webhook delivery disabled")
	}

	// Инициализация сервисов
	dashboardService := service.NewDashboardService(store, store, sim, publisher, log)

	// Проверка учетных данных оператора
	verifier, err := security.NewCredentialVerifier(cfg.AppUsername, cfg.AppPassword)
	if err != nil {
		log.Fatalf("Failed to init credential verifier: %v", err)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(dashboardService, verifier, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Маршрут метрик Prometheus
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
