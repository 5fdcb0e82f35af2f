package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	_ "rab_service/docs" // swag-generated
	"rab_service/internal/adapter/http/handlers"
	"rab_service/internal/adapter/persistence/repository"
	"rab_service/internal/adapter/persistence/sqlrepository"
	"rab_service/internal/infrastructure/config"
	"rab_service/internal/infrastructure/database"
	"rab_service/internal/infrastructure/lock"
	"rab_service/internal/infrastructure/logger"
	"rab_service/internal/infrastructure/metrics"
	"rab_service/internal/infrastructure/payments"
	"rab_service/internal/usecase"
	"rab_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run loads the configuration, wires every dependency and serves HTTP until the
// process exits.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()
	repos, err := newRepositories(ctx, cfg)
	if err != nil {
		zlog.Fatal("[bootstrap] storage init failed", zap.String("storage", cfg.Storage), zap.Error(err))
	}

	router := newRouter(zlog, buildHandlers(cfg, repos, newLocker(ctx, cfg), metrics.NewRecorder(nil)))

	zlog.Info("[bootstrap] listening", zap.Int("port", cfg.Port), zap.String("storage", cfg.Storage))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		zlog.Fatal("Failed to startup the application", zap.Error(err))
	}
}

type repositories struct {
	estimates    interfaces.IEstimateRepository
	projects     interfaces.IProjectRepository
	transactions interfaces.ITransactionRepository
	catalog      interfaces.IPriceCatalogRepository
	payments     interfaces.IClientPaymentRepository
}

func newRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	switch cfg.Storage {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return repositories{}, err
		}
		txs := repository.NewTransactionDynamoRepository(ddb, cfg.DynamoDB.TransactionsTable)
		payments := repository.NewClientPaymentDynamoRepository(ddb, cfg.DynamoDB.PaymentsTable)
		return repositories{
			estimates:    repository.NewEstimateDynamoRepository(ddb, cfg.DynamoDB.EstimatesTable),
			projects:     repository.NewProjectDynamoRepository(ddb, cfg.DynamoDB.ProjectsTable, txs, payments),
			transactions: txs,
			catalog:      repository.NewPriceCatalogDynamoRepository(ddb, cfg.DynamoDB.CatalogTable),
			payments:     payments,
		}, nil
	case config.StoragePostgres, config.StorageSQLite:
		db, err := database.OpenSQL(cfg)
		if err != nil {
			return repositories{}, err
		}
		if err := sqlrepository.AutoMigrate(db); err != nil {
			return repositories{}, fmt.Errorf("auto migrate: %w", err)
		}
		return repositories{
			estimates:    sqlrepository.NewEstimateRepository(db),
			projects:     sqlrepository.NewProjectRepository(db),
			transactions: sqlrepository.NewTransactionRepository(db),
			catalog:      sqlrepository.NewPriceCatalogRepository(db),
			payments:     sqlrepository.NewClientPaymentRepository(db),
		}, nil
	}
	return repositories{}, fmt.Errorf("unknown storage driver %q", cfg.Storage)
}

// newLocker prefers Redis so several replicas share document locks. An unreachable
// Redis falls back to the in-process locker.
func newLocker(ctx context.Context, cfg config.Config) interfaces.IDocumentLocker {
	l := zap.L().Named("bootstrap")
	if cfg.Redis.Addr == "" {
		l.Info("[bootstrap] REDIS_ADDR not set, using in-process document locks")
		return lock.NewMemoryLocker(cfg.Lock.Wait)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		l.Warn("[bootstrap] redis unreachable, using in-process document locks", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = client.Close()
		return lock.NewMemoryLocker(cfg.Lock.Wait)
	}
	return lock.NewRedisLocker(client, cfg.Lock.TTL, cfg.Lock.Wait)
}

type appHandlers struct {
	estimate *handlers.EstimateHandler
	catalog  *handlers.CatalogHandler
	project  *handlers.ProjectHandler
	payment  *handlers.ClientPaymentHandler
}

func buildHandlers(cfg config.Config, repos repositories, locker interfaces.IDocumentLocker, recorder interfaces.IMetricsRecorder) appHandlers {
	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		zap.L().Warn("[bootstrap] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	estimateUseCase := usecase.NewEstimateUseCase(repos.estimates, repos.projects, repos.catalog, locker, recorder, cfg.DefaultTaxPercentage)
	catalogUseCase := usecase.NewCatalogUseCase(repos.catalog, cfg.CatalogSearchLimit)
	ledgerUseCase := usecase.NewProjectLedgerUseCase(repos.projects, repos.transactions)
	paymentUseCase := usecase.NewClientPaymentUseCase(repos.payments, repos.projects, repos.transactions, paymentGateway, usecase.PaymentOptions{
		MockMode:        cfg.Payments.MockMode,
		AccessToken:     cfg.Payments.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	})

	return appHandlers{
		estimate: handlers.NewEstimateHandler(estimateUseCase),
		catalog:  handlers.NewCatalogHandler(catalogUseCase),
		project:  handlers.NewProjectHandler(ledgerUseCase),
		payment:  handlers.NewClientPaymentHandler(paymentUseCase),
	}
}

func newRouter(zlog *zap.Logger, h appHandlers) *gin.Engine {
	router := gin.New()
	router.Use(logger.GinMiddleware(zlog))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error("Recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, h.estimate)
	addCatalogRoutes(v1, h.catalog)
	addProjectRoutes(v1, h.project, h.payment)
	return router
}
