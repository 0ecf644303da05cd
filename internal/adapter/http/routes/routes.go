package routes

import (
	"context"

	_ "agendamento_cras/docs" // This will be auto-generated
	"agendamento_cras/internal/adapter/http/handlers"
	"agendamento_cras/internal/adapter/http/middleware"
	"agendamento_cras/internal/adapter/persistence/repository"
	"agendamento_cras/internal/infrastructure/cache"
	"agendamento_cras/internal/infrastructure/config"
	"agendamento_cras/internal/infrastructure/database"
	"agendamento_cras/internal/infrastructure/logger"
	"agendamento_cras/internal/infrastructure/metrics"
	"agendamento_cras/internal/infrastructure/scheduling"
	"agendamento_cras/internal/usecase"
	"agendamento_cras/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg := config.Load()
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	formHandler, catalogHandler, err := buildHandlers(context.Background(), cfg, prometheus.DefaultRegisterer)
	if err != nil {
		logrus.WithError(err).Fatal("failed to wire the application")
	}

	router := setupRouter(cfg, formHandler, catalogHandler)
	logrus.WithFields(logrus.Fields{"port": cfg.Port, "env": cfg.AppEnv}).Info("starting http server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Failed to startup the application")
	}
}

func buildHandlers(ctx context.Context, cfg config.Config, reg prometheus.Registerer) (*handlers.FormHandler, *handlers.CatalogHandler, error) {
	m := metrics.New(reg)

	gateway, err := scheduling.NewSchedulingAPIGateway(scheduling.Settings{
		BaseURL: cfg.Scheduling.BaseURL,
		Timeout: cfg.Scheduling.Timeout,
		Mock:    cfg.Scheduling.Mock,
	})
	if err != nil {
		return nil, nil, err
	}

	var sessions interfaces.IFormSessionRepository
	switch cfg.Sessions.Store {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBSettingsFromEnv())
		if err != nil {
			return nil, nil, err
		}
		sessions = repository.NewFormSessionDynamoRepository(ddb, cfg.Sessions.Table)
	default:
		sessions = repository.NewFormSessionMemoryRepository(cfg.Sessions.TTL)
	}
	logrus.WithField("store", cfg.Sessions.Store).Info("form session store ready")

	var lookupCache interfaces.ILookupCache
	if cfg.Redis.Addr != "" {
		client, err := database.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logrus.WithError(err).Warn("lookup cache disabled")
		} else {
			lookupCache = cache.NewRedisLookupCache(client)
		}
	}

	options := usecase.NewOptionsProvider(gateway, lookupCache, usecase.OptionsSettings{
		UnitsTTL:        cfg.Redis.UnitsTTL,
		AvailabilityTTL: cfg.Redis.AvailabilityTTL,
	}, m)
	forms := usecase.NewFormUseCase(sessions, gateway, options, usecase.FormSettings{
		SessionTTL: cfg.Sessions.TTL,
		ResetDelay: cfg.Sessions.ResetDelay,
	}, m)

	return handlers.NewFormHandler(forms), handlers.NewCatalogHandler(usecase.NewCatalogUseCase()), nil
}

func setupRouter(cfg config.Config, formHandler *handlers.FormHandler, catalogHandler *handlers.CatalogHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addFormRoutes(v1, formHandler)
	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(middleware.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithField("component", "[http][router]").Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
}
