package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/movecar/internal/pkg/config"
	"github.com/piresc/movecar/internal/pkg/database"
	"github.com/piresc/movecar/internal/pkg/health"
	httppkg "github.com/piresc/movecar/internal/pkg/http"
	"github.com/piresc/movecar/internal/pkg/i18n"
	"github.com/piresc/movecar/internal/pkg/logger"
	"github.com/piresc/movecar/internal/pkg/middleware"
	nrpkg "github.com/piresc/movecar/internal/pkg/newrelic"
	"github.com/piresc/movecar/internal/pkg/nsq"
	"github.com/piresc/movecar/internal/pkg/server"
	"github.com/piresc/movecar/services/movecar"
	"github.com/piresc/movecar/services/movecar/gateway"
	"github.com/piresc/movecar/services/movecar/handler"
	"github.com/piresc/movecar/services/movecar/registry"
	"github.com/piresc/movecar/services/movecar/repository"
	"github.com/piresc/movecar/services/movecar/usecase"
)

func main() {
	appName := "movecar"
	configPath := "config/movecar.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	nrApp := nrpkg.InitNewRelic(configs)

	shutdown := server.NewShutdownManager(zapLogger)
	healthService := health.NewHealthService(zapLogger)

	// Initialize shared state store
	var store database.KeyValueStore
	var redisClient *database.RedisClient
	switch configs.Store.Driver {
	case "memory":
		logger.Warn("Using in-memory store, state is not shared between instances")
		memoryStore := database.NewMemoryStore()
		shutdown.Register(func(context.Context) error { return memoryStore.Close() })
		store = memoryStore
	default:
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdown.Register(func(context.Context) error { return redisClient.Close() })
		store = redisClient
	}
	healthService.AddChecker("store", health.NewPingChecker(store))

	// Load the car registry once
	cars, err := registry.Load(configs.Registry)
	if err != nil {
		zapLogger.Fatal("Failed to load car registry", logger.Err(err))
	}
	logger.Info("Car registry loaded", logger.Int("cars", cars.Len()))

	// Initialize gateways
	pushGW := gateway.NewBarkPushGW(httppkg.NewClient(httppkg.Config{Timeout: configs.Push.Timeout}), configs.Push)

	var eventGW movecar.EventGW = gateway.NoopEventGW{}
	if configs.NSQ.Address != "" {
		producer, err := nsq.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		shutdown.Register(func(context.Context) error {
			producer.Stop()
			return nil
		})
		healthService.AddChecker("nsq", health.NewPingChecker(producer))
		eventGW = gateway.NewNSQEventGW(producer, nil)
	}

	catalog := i18n.NewCatalog(configs.App.DefaultLanguage)

	// Initialize repository and usecase
	moveCarRepo := repository.NewMoveCarRepository(store)
	moveCarUC := usecase.NewMoveCarUC(configs, cars, moveCarRepo, pushGW, eventGW, catalog)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.NewRelicMiddleware(nrApp))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.CountryFilterMiddleware(configs.Access.AllowedCountries, catalog))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	var notifyMiddleware []echo.MiddlewareFunc
	if configs.Access.RateLimitPerMinute > 0 {
		if redisClient == nil {
			logger.Warn("Rate limiting requires the redis store, skipping")
		} else {
			notifyMiddleware = append(notifyMiddleware, middleware.IPRateLimiter(
				configs.Access.RateLimitPerMinute, redisClient,
				catalog.T(configs.App.DefaultLanguage, i18n.ErrRateLimited)))
		}
	}

	handler.NewHandler(moveCarUC, catalog).RegisterRoutes(e, notifyMiddleware...)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, configs.Server.ShutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), configs.Server.ShutdownTimeout)
	defer cancel()
	_ = shutdown.Shutdown(ctx)

	if nrApp != nil {
		zapLogger.Info("Shutting down New Relic...")
		nrApp.Shutdown(10 * time.Second)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
