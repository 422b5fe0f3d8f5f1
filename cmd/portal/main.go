package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/guestportal/internal/pkg/circuitbreaker"
	"github.com/piresc/guestportal/internal/pkg/config"
	"github.com/piresc/guestportal/internal/pkg/controller"
	"github.com/piresc/guestportal/internal/pkg/counter"
	"github.com/piresc/guestportal/internal/pkg/database"
	"github.com/piresc/guestportal/internal/pkg/eventbus"
	"github.com/piresc/guestportal/internal/pkg/eventlog"
	"github.com/piresc/guestportal/internal/pkg/health"
	httppkg "github.com/piresc/guestportal/internal/pkg/http"
	"github.com/piresc/guestportal/internal/pkg/logger"
	"github.com/piresc/guestportal/internal/pkg/metrics"
	"github.com/piresc/guestportal/internal/pkg/middleware"
	nrpkg "github.com/piresc/guestportal/internal/pkg/newrelic"
	"github.com/piresc/guestportal/internal/pkg/retry"
	"github.com/piresc/guestportal/internal/pkg/server"
	"github.com/piresc/guestportal/internal/pkg/tenancy"
	adsgateway "github.com/piresc/guestportal/services/ads/gateway"
	adshandler "github.com/piresc/guestportal/services/ads/handler"
	adshttp "github.com/piresc/guestportal/services/ads/handler/http"
	adsrepo "github.com/piresc/guestportal/services/ads/repository"
	adsusecase "github.com/piresc/guestportal/services/ads/usecase"
	eventshandler "github.com/piresc/guestportal/services/events/handler"
	eventshttp "github.com/piresc/guestportal/services/events/handler/http"
	eventsusecase "github.com/piresc/guestportal/services/events/usecase"
	"github.com/piresc/guestportal/services/portal/gateway"
	"github.com/piresc/guestportal/services/portal/handler"
	httpHandler "github.com/piresc/guestportal/services/portal/handler/http"
	"github.com/piresc/guestportal/services/portal/handler/radius"
	"github.com/piresc/guestportal/services/portal/repository"
	"github.com/piresc/guestportal/services/portal/usecase"
)

func main() {
	appName := "guestportal"
	configs := config.InitConfig("config/portal.env")

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	if configs.JWT.Secret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	shutdown := server.NewShutdownManager()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	if configs.Database.AutoMigrate {
		if err := database.RunMigrations(postgresClient.GetDB()); err != nil {
			logger.Fatal("Failed to run migrations", logger.Err(err))
		}
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	store := counter.NewRedisStore(redisClient.GetClient())

	// Initialize event bus
	bus, err := eventbus.New(configs.EventBus)
	if err != nil {
		logger.Fatal("Failed to connect to event bus",
			logger.String("driver", configs.EventBus.Driver),
			logger.Err(err))
	}
	shutdown.Register("eventbus", func(context.Context) error {
		bus.Close()
		return nil
	})

	m := metrics.NewMetrics("guestportal")

	// Event log: postgres is the record, the bus feeds downstream consumers
	sink := eventlog.NewMultiSink(m,
		eventlog.NewPostgresSink(postgresClient.GetDB()),
		eventlog.NewBusSink(bus),
	)

	// Controller gateways share one breaker per controller host
	breakerConfig := circuitbreaker.DefaultConfig("")
	breakerConfig.OnStateChange = func(name string, _, to circuitbreaker.State) {
		m.SetBreakerOpen(name, to == circuitbreaker.StateOpen)
	}
	retryConfig := retry.DefaultConfig()
	retryConfig.MaxRetries = configs.Controllers.MaxRetries
	controllerClient := httppkg.NewEnhancedClient(
		&http.Client{Timeout: configs.Controllers.Timeout},
		retry.New(retryConfig),
		circuitbreaker.NewManager(breakerConfig),
	)
	directory := controller.NewDirectory(controller.Options{
		TestMode:  configs.Controllers.TestMode,
		Timeout:   configs.Controllers.Timeout,
		APIPrefix: configs.Controllers.RuckusAPIPrefix,
	}, controllerClient, m)

	// Portal service
	portalRepo := repository.NewPortalRepo(configs, postgresClient.GetDB())
	portalGW := gateway.NewPortalGW(directory, sink, bus)
	portalUC := usecase.NewPortalUC(configs, portalRepo, portalGW, store, m)

	portalRoutes := handler.NewHandler(
		httpHandler.NewAuthHandler(portalUC),
		httpHandler.NewVendorHandler(portalUC),
		httpHandler.NewSplashHandler(portalUC),
		httpHandler.NewAdminHandler(portalUC),
		configs,
	)

	// Ads service
	adsUC := adsusecase.NewAdsUC(configs,
		adsrepo.NewAdsRepo(postgresClient.GetDB()),
		adsgateway.NewAdsGW(sink),
		store, m)
	adsRoutes := adshandler.NewHandler(adshttp.NewAdsHandler(adsUC))

	// Event ingest
	eventsUC := eventsusecase.NewEventsUC(configs, tenancy.NewRepo(postgresClient.GetDB()), sink)
	eventsRoutes := eventshandler.NewHandler(eventshttp.NewEventsHandler(eventsUC))

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(m.EchoMiddleware())

	// Register health endpoints
	healthService := health.NewHealthService()
	healthService.AddChecker("postgres", postgresClient)
	healthService.AddChecker("redis", redisClient)
	healthService.AddChecker("eventbus", bus)
	health.RegisterHealthEndpoints(e, configs.App, healthService)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Register service routes
	var authLimiter echo.MiddlewareFunc
	if configs.Portal.AuthRateLimit > 0 {
		authLimiter = middleware.IPRateLimiter(store, "auth",
			configs.Portal.AuthRateLimit, configs.Portal.AuthRatePeriod)
	}
	portalRoutes.RegisterRoutes(e, authLimiter)
	adsRoutes.RegisterRoutes(e)
	eventsRoutes.RegisterRoutes(e)

	if configs.Radius.Enabled {
		radiusServer := radius.NewServer(configs.Radius, portalUC, m)
		radiusServer.Start()
		shutdown.Register("radius", radiusServer.Shutdown)
	}

	if nrApp != nil {
		shutdown.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	// Start server
	srv := server.NewGracefulServer(e, configs.Server.Port, shutdown)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error",
			logger.String("app", appName),
			logger.Err(err))
	}
}
