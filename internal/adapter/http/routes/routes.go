package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "recursos_api/docs"
	"recursos_api/internal/adapter/http/handlers"
	"recursos_api/internal/adapter/persistence/memory"
	"recursos_api/internal/adapter/persistence/repository"
	"recursos_api/internal/config"
	"recursos_api/internal/infrastructure/database"
	"recursos_api/internal/infrastructure/extraction"
	"recursos_api/internal/infrastructure/observability"
	"recursos_api/internal/infrastructure/payments"
	"recursos_api/internal/infrastructure/resilience"
	"recursos_api/internal/usecase"
	"recursos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Services are the use cases the HTTP layer serves.
type Services struct {
	Drafts        usecase.IServiceOrderDraftUseCase
	Lifecycle     usecase.IRecursoLifecycleUseCase
	Ledger        usecase.ICreditLedgerUseCase
	Notifications usecase.IPaymentNotificationUseCase
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		observability.NewLogger("info").Fatal("invalid configuration", zap.Error(err))
	}

	logger := observability.NewLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	metrics := observability.NewMetrics()

	ctx := context.Background()
	services, cleanup, err := buildServices(ctx, cfg, logger, metrics)
	if err != nil {
		logger.Fatal("failed to wire services", zap.Error(err))
	}
	defer cleanup()

	router := NewRouter(cfg, services, logger, metrics)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to startup the application", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Error("server forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(cfg *config.Config, services Services, logger *zap.Logger, metrics *observability.Metrics) *gin.Engine {
	logger = observability.OrNop(logger)

	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	}

	getRoutes(router, cfg, services, logger)
	return router
}

func getRoutes(router *gin.Engine, cfg *config.Config, services Services, logger *zap.Logger) {
	recursoHandler := handlers.NewRecursoHandler(services.Drafts, services.Lifecycle, logger)
	creditHandler := handlers.NewCreditLedgerHandler(services.Ledger, cfg.LowBalanceThreshold, logger)
	webhookHandler := handlers.NewPaymentWebhookHandler(services.Notifications, logger)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRecursoRoutes(v1, recursoHandler)
	addCreditRoutes(v1, creditHandler)
	addWebhookRoutes(v1, webhookHandler)
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(observability.GinLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// buildServices wires stores, gateway and extractor per configuration. The
// returned cleanup releases pooled connections.
func buildServices(ctx context.Context, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) (Services, func(), error) {
	cleanup := func() {}

	var ddb *dynamodb.Client
	dynamo := func() (*dynamodb.Client, error) {
		if ddb != nil {
			return ddb, nil
		}
		client, err := database.NewDynamoDBClient(ctx, database.DynamoDBOptions{Region: cfg.AWSRegion, Endpoint: cfg.DynamoDBEndpoint})
		if err != nil {
			return nil, err
		}
		ddb = client
		return ddb, nil
	}

	var draftRepo interfaces.IServiceOrderDraftRepository
	switch cfg.StorageBackend {
	case config.BackendMemory:
		logger.Warn("drafts stored in memory; data is lost on restart")
		draftRepo = memory.NewServiceOrderDraftMemoryRepository()
	default:
		client, err := dynamo()
		if err != nil {
			return Services{}, cleanup, fmt.Errorf("dynamodb client: %w", err)
		}
		draftRepo = repository.NewServiceOrderDraftDynamoRepository(client, cfg.DraftsTable, logger)
	}

	var ledgerRepo interfaces.ICreditLedgerRepository
	switch cfg.LedgerBackend {
	case config.BackendMemory:
		logger.Warn("credit ledger stored in memory; data is lost on restart")
		ledgerRepo = memory.NewCreditLedgerMemoryRepository()
	case config.BackendPostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.DBSource)
		if err != nil {
			return Services{}, cleanup, fmt.Errorf("postgres pool: %w", err)
		}
		cleanup = pool.Close
		pg := repository.NewCreditLedgerPostgresRepository(pool, logger)
		if err := pg.EnsureSchema(ctx); err != nil {
			return Services{}, cleanup, fmt.Errorf("ledger schema: %w", err)
		}
		ledgerRepo = pg
	default:
		client, err := dynamo()
		if err != nil {
			return Services{}, cleanup, fmt.Errorf("dynamodb client: %w", err)
		}
		ledgerRepo = repository.NewCreditLedgerDynamoRepository(client, cfg.CreditTransactionsTable, cfg.CreditAccountsTable, logger)
	}

	retry := resilience.Config{MaxRetries: cfg.MaxRetries, InitialBackoff: cfg.InitialBackoff}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken:     cfg.MercadoPagoAccessToken,
		NotificationURL: cfg.PaymentNotificationURL,
		Mock:            cfg.PaymentGatewayMock,
		Resilience:      retry,
	}, logger, metrics)
	if err != nil {
		logger.Warn("Mercado Pago gateway not configured; pix payments and top-ups unavailable", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	var extractor interfaces.IDocumentExtractor
	if cfg.ExtractionServiceURL != "" {
		extractor = extraction.NewHTTPExtractor(&http.Client{Timeout: cfg.ExtractionTimeout}, cfg.ExtractionServiceURL, retry, logger, metrics)
	} else {
		logger.Warn("EXTRACTION_SERVICE_URL not set; uploads will return an advisory")
	}

	ledger := usecase.NewCreditLedgerUseCase(ledgerRepo, paymentGateway, logger, metrics)
	drafts := usecase.NewServiceOrderDraftUseCase(draftRepo, cfg.RecursoPrice, logger)
	lifecycle := usecase.NewRecursoLifecycleUseCase(draftRepo, ledger, paymentGateway, extractor, usecase.RecursoLifecycleConfig{
		Price:             cfg.RecursoPrice,
		PaymentWindow:     cfg.PaymentWindow,
		PaymentTimeout:    cfg.PaymentTimeout,
		ExtractionTimeout: cfg.ExtractionTimeout,
	}, logger, metrics)
	notifications := usecase.NewPaymentNotificationUseCase(paymentGateway, lifecycle, ledger, logger)

	return Services{
		Drafts:        drafts,
		Lifecycle:     lifecycle,
		Ledger:        ledger,
		Notifications: notifications,
	}, cleanup, nil
}
