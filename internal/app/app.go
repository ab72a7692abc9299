package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/Delvoid/ecom-admin/config"
	"github.com/Delvoid/ecom-admin/internal/controller"
	kafkaClient "github.com/Delvoid/ecom-admin/internal/infrastructure/message-queue/kafka"
	"github.com/Delvoid/ecom-admin/internal/infrastructure/media"
	"github.com/Delvoid/ecom-admin/internal/infrastructure/tracing"
	localmiddleware "github.com/Delvoid/ecom-admin/internal/middleware"
	"github.com/Delvoid/ecom-admin/internal/repository"
	"github.com/Delvoid/ecom-admin/internal/service"
	"github.com/Delvoid/ecom-admin/pkg/response"
)

type App struct {
	DB        *sqlx.DB
	Config    *config.Config
	Server    *echo.Echo
	scheduler gocron.Scheduler
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	if traceProvider != nil {
		defer func() {
			if err := traceProvider.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown tracing")
			}
		}()

		tracer := traceProvider.Tracer("store-admin-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				// span creation and naming
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				// add the context to the request
				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")
	g.Use(localmiddleware.Logger)

	mediaClient, err := media.CreateCloudinaryClient(app.Config.CloudinaryConfig.CloudName, app.Config.CloudinaryConfig.APIKey, app.Config.CloudinaryConfig.APISecret)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create media client")
	}

	var kafkaProducer *kafka.Conn
	if app.Config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer, err = kafkaClient.CreateKafkaProducer(app.Config)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to the message broker, events disabled")
		}
	}

	requireAuth := localmiddleware.RequireAuth(app.Config.JWTSecret)

	storeRepo := repository.CreateStoreRepository(app.DB)
	billboardRepo := repository.CreateBillboardRepository(app.DB)
	categoryRepo := repository.CreateCategoryRepository(app.DB)
	colorRepo := repository.CreateColorRepository(app.DB)
	sizeRepo := repository.CreateSizeRepository(app.DB)
	productRepo := repository.CreateProductRepository(app.DB)
	cleanupRepo := repository.CreateMediaCleanupRepository(app.DB)

	storeSvc := service.CreateStoreService(storeRepo, app.Config, kafkaProducer)
	billboardSvc := service.CreateBillboardService(billboardRepo, storeRepo, mediaClient, cleanupRepo, kafkaProducer)
	categorySvc := service.CreateCategoryService(categoryRepo, storeRepo, kafkaProducer)
	colorSvc := service.CreateColorService(colorRepo, storeRepo, kafkaProducer)
	sizeSvc := service.CreateSizeService(sizeRepo, storeRepo, kafkaProducer)
	productSvc := service.CreateProductService(productRepo, storeRepo, mediaClient, cleanupRepo, kafkaProducer)
	mediaCleanupSvc := service.CreateMediaCleanupService(cleanupRepo, mediaClient)

	controller.CreateStoreController(g, storeSvc, requireAuth)
	controller.CreateBillboardController(g, billboardSvc, requireAuth)
	controller.CreateCategoryController(g, categorySvc, requireAuth)
	controller.CreateColorController(g, colorSvc, requireAuth)
	controller.CreateSizeController(g, sizeSvc, requireAuth)
	controller.CreateProductController(g, productSvc, requireAuth)

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	// add a job to the scheduler
	_, err = s.NewJob(
		gocron.DurationJob(
			time.Minute,
		),
		gocron.NewTask(
			mediaCleanupSvc.ProcessPendingCleanups,
		),
	)
	if err != nil {
		panic(err)
	}

	s.Start()
	app.scheduler = s

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	app.Server = e

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	if app.scheduler != nil {
		if err := app.scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown scheduler")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
