package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "plumbing_estimator/docs" // swagger spec
	"plumbing_estimator/internal/adapter/http/handlers"
	"plumbing_estimator/internal/adapter/http/middleware"
	"plumbing_estimator/internal/adapter/persistence/repository"
	"plumbing_estimator/internal/domain/catalog"
	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/infrastructure/database"
	"plumbing_estimator/internal/infrastructure/gateways"
	"plumbing_estimator/internal/infrastructure/workbook"
	"plumbing_estimator/internal/usecase"
	"plumbing_estimator/pkg/config"
	"plumbing_estimator/pkg/logger"
	"plumbing_estimator/pkg/metrics"
	"plumbing_estimator/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the use cases and ambient pieces the router serves.
type Dependencies struct {
	MaterialLists usecase.IMaterialListUseCase
	Catalogs      usecase.ICatalogUseCase
	Logger        *logger.Logger
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

// Run wires the service from cfg and blocks serving HTTP.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	if !cfg.App.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, closeRedis, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRedis()

	router, err := NewRouter(deps)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(log.WithField(ctx, "port", cfg.App.Port), "[http][routes] starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Info(ctx, "[http][routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if err := validator.RegisterGin(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(middleware.RequestLogger(deps.Logger))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, handlers.NewCatalogHandler(deps.Catalogs))
	addMaterialListRoutes(v1, handlers.NewMaterialListHandler(deps.MaterialLists))

	if deps.Metrics != nil {
		h := gin.WrapH(deps.Metrics)
		router.GET("/metrics", h)
		v1.GET("/metrics", h)
	}

	return router, nil
}

func buildDependencies(ctx context.Context, cfg *config.Config, log *logger.Logger) (Dependencies, func(), error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewRecorder(reg)

	rdb, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		return Dependencies{}, nil, err
	}
	closeRedis := func() {
		if err := rdb.Close(); err != nil {
			log.Error(ctx, "[http][routes] closing redis", err)
		}
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		closeRedis()
		return Dependencies{}, nil, err
	}

	sessionRepo := repository.NewSessionRedisRepository(rdb, cfg.Redis.SessionTTL)
	preferencesRepo := repository.NewPreferencesDynamoRepository(ddb, cfg.AWS.PreferencesTable)

	registry := catalog.NewRegistry(entities.DefaultSuppliers())
	source := workbook.NewSource(cfg.Catalog, log)
	catalogUseCase := usecase.NewCatalogUseCase(registry, source, log, rec)
	if err := catalogUseCase.Reload(ctx); err != nil {
		// suppliers without a workbook start empty and can be pushed later
		log.Warn(log.WithField(ctx, "error", err.Error()), "[http][routes] some catalogs were not loaded")
	}

	templateGateway, err := gateways.NewTemplateHTTPGateway(cfg.Gateways, log)
	if err != nil {
		closeRedis()
		return Dependencies{}, nil, err
	}
	documentGateway, err := gateways.NewDocumentHTTPGateway(cfg.Gateways, log)
	if err != nil {
		closeRedis()
		return Dependencies{}, nil, err
	}

	materialListUseCase := usecase.NewMaterialListUseCase(usecase.MaterialListDeps{
		Sessions:    sessionRepo,
		Preferences: preferencesRepo,
		Templates:   templateGateway,
		Documents:   documentGateway,
		Products:    source,
		Registry:    registry,
		Logger:      log,
		Metrics:     rec,
		ListBaseURL: cfg.Estimate.ListBaseURL,
		TaxRate:     cfg.Estimate.TaxRate,
	})

	return Dependencies{
		MaterialLists: materialListUseCase,
		Catalogs:      catalogUseCase,
		Logger:        log,
		Metrics:       promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}, closeRedis, nil
}
