package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	eventapp "github.com/umitgh/procurement-system/internal/application/event"
	procurementapp "github.com/umitgh/procurement-system/internal/application/procurement"
	"github.com/umitgh/procurement-system/internal/domain/procurement"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"github.com/umitgh/procurement-system/internal/infrastructure/auth"
	"github.com/umitgh/procurement-system/internal/infrastructure/cache"
	"github.com/umitgh/procurement-system/internal/infrastructure/config"
	"github.com/umitgh/procurement-system/internal/infrastructure/event"
	"github.com/umitgh/procurement-system/internal/infrastructure/logger"
	"github.com/umitgh/procurement-system/internal/infrastructure/mail"
	"github.com/umitgh/procurement-system/internal/infrastructure/persistence"
	"github.com/umitgh/procurement-system/internal/infrastructure/printing"
	"github.com/umitgh/procurement-system/internal/infrastructure/storage"
	"github.com/umitgh/procurement-system/internal/infrastructure/telemetry"
	"github.com/umitgh/procurement-system/internal/interfaces/http/handler"
	"github.com/umitgh/procurement-system/internal/interfaces/http/middleware"
	"github.com/umitgh/procurement-system/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/umitgh/procurement-system/docs"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Procurement API
//	@version		1.0
//	@description	Purchase order approval workflow: multi-level approval chains, supplier spend monitoring and supplier dispatch.

//	@contact.name	API Support
//	@contact.url	https://github.com/umitgh/procurement-system

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultTimeFormat,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	logProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, logger.ParseLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log = logProvider.Bridge(log)

	log.Info("Starting procurement service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	profiler, err := telemetry.StartProfiler(cfg.Telemetry, cfg.App.Env, log)
	if err != nil {
		log.Warn("Continuous profiling unavailable", zap.Error(err))
	} else if profiler.Enabled() {
		tracerProvider.EnableSpanProfiles()
	}
	meter := meterProvider.Meter(cfg.Telemetry.ServiceName)

	// Database
	gormLog := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.Open(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	var dbInstrumentation *telemetry.DBInstrumentation
	if cfg.Telemetry.DBTraceEnabled {
		dbInstrumentation, err = telemetry.InstrumentDB(db.DB, meter, cfg.Telemetry, log)
		if err != nil {
			log.Warn("Database instrumentation disabled", zap.Error(err))
		} else {
			dbInstrumentation.StartPoolStats(ctx)
		}
	}

	// Redis backs token revocation when configured
	var redisClient *redis.Client
	var revocations auth.RevocationStore = auth.NewInMemoryRevocationStore()
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		revocations = auth.NewRedisRevocationStore(redisClient, cfg.JWT.MaxTokenAge)
	}
	idempotencyStore, err := cache.NewIdempotencyStore(ctx, cfg.Redis, cfg.App.Env == "production", log)
	if err != nil {
		log.Fatal("Failed to initialize idempotency store", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	orderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	approvalRepo := persistence.NewGormApprovalRepository(db.DB)
	spendRepo := persistence.NewGormSpendRepository(db.DB)
	emailLogRepo := persistence.NewGormEmailLogRepository(db.DB)
	outboxRepo := event.NewGormOutboxRepository(db.DB)

	eventSerializer := event.NewEventSerializer()
	event.RegisterAllEvents(eventSerializer)
	outboxPublisher := event.NewOutboxPublisher(eventSerializer)
	orderRepo.SetOutboxEventSaver(outboxPublisher)
	approvalRepo.SetOutboxEventSaver(outboxPublisher)

	businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:            meter,
		Logger:           log,
		CollectInterval:  cfg.Telemetry.MetricsInterval,
		WorkflowProvider: telemetry.NewGormWorkflowMetricsProvider(db.DB),
	})
	if err != nil {
		log.Fatal("Failed to initialize business metrics", zap.Error(err))
	}
	if cfg.Telemetry.MetricsEnabled {
		businessMetrics.StartPeriodicCollection(ctx, cfg.Telemetry.MetricsInterval)
	}

	// Outbound documents and mail
	documentStore, err := storage.NewDocumentStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize document storage", zap.Error(err))
	}
	renderer := newRenderer(cfg.Printing, log)
	notifier, err := mail.NewSMTPNotifier(cfg.Mail, emailLogRepo, log, mail.WithCurrencySymbol(cfg.Printing.CurrencySymbol))
	if err != nil {
		log.Fatal("Failed to initialize mail notifier", zap.Error(err))
	}

	// Application services
	resolver := procurement.NewChainResolver(userRepo, cfg.Approval.MaxChainDepth)
	spendMonitor := procurementapp.NewSpendMonitor(spendRepo, supplierRepo, cfg.Spend.Threshold, cfg.Spend.Location(), log)
	approvalService := procurementapp.NewApprovalService(orderRepo, approvalRepo, resolver, userRepo, log)
	approvalService.SetBusinessMetrics(businessMetrics)
	orderService := procurementapp.NewPurchaseOrderService(orderRepo, approvalRepo, supplierRepo, companyRepo, approvalService, spendMonitor, log)
	orderService.SetBusinessMetrics(businessMetrics)
	orderService.SetDocumentStore(documentStore)
	directoryService := procurementapp.NewDirectoryService(userRepo, supplierRepo, companyRepo, log)
	directoryService.SetSessionRevoker(revocations)
	dashboardService := procurementapp.NewDashboardService(spendRepo, approvalRepo, spendMonitor)
	emailLogService := procurementapp.NewEmailLogService(emailLogRepo)
	outboxService := eventapp.NewOutboxService(outboxRepo, log)

	// Event handlers run from the outbox; claims keep redelivered events
	// from mailing twice and the supplier from receiving an order twice
	eventBus := event.NewInMemoryEventBus(log)
	loader := procurementapp.NewOrderContextLoader(orderRepo, userRepo, supplierRepo, companyRepo)
	eventHandlers := procurementapp.EventHandlers(
		procurementapp.NewApprovalNotificationHandler(loader, userRepo, notifier, log).
			WithBusinessMetrics(businessMetrics),
		procurementapp.NewSupplierDispatchHandler(loader, approvalRepo, userRepo, renderer, documentStore, notifier, log).
			WithBusinessMetrics(businessMetrics),
		idempotencyStore,
		shared.IdempotencyConfig{TTL: cfg.Event.IdempotencyTTL, Enabled: true},
		log,
	)
	for _, h := range eventHandlers {
		eventBus.Subscribe(h)
	}
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	var outboxProcessor *event.OutboxProcessor
	if cfg.Event.ProcessorEnabled {
		processorCfg := event.DefaultOutboxProcessorConfig()
		processorCfg.BatchSize = cfg.Event.BatchSize
		processorCfg.PollInterval = cfg.Event.PollInterval
		processorCfg.CleanupEnabled = cfg.Event.CleanupEnabled
		processorCfg.CleanupRetention = cfg.Event.CleanupRetention
		outboxProcessor = event.NewOutboxProcessor(outboxRepo, eventBus, eventSerializer, processorCfg, log)
		if err := outboxProcessor.Start(ctx); err != nil {
			log.Fatal("Failed to start outbox processor", zap.Error(err))
		}
		log.Info("Outbox processor started",
			zap.Int("batch_size", processorCfg.BatchSize),
			zap.Duration("poll_interval", processorCfg.PollInterval),
		)
	} else {
		log.Warn("Outbox processor disabled, notifications and supplier dispatch will not run")
	}

	// HTTP
	middleware.SetupValidator()
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Secure(cfg.App.Env == "production"),
		middleware.CORS(middleware.NewCORSConfig(cfg.HTTP)),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
		middleware.Tracing(cfg.Telemetry.ServiceName, tracerProvider.Enabled()),
		middleware.HTTPMetrics(meter, log),
		middleware.Profiling(profiler != nil && profiler.Enabled()),
	)

	jwtAuth := middleware.JWTAuth(middleware.JWTConfig{
		Verifier:    auth.NewVerifier(cfg.JWT),
		Revocations: revocations,
		Logger:      log,
	})
	apiMiddleware := []gin.HandlerFunc{jwtAuth}
	if cfg.HTTP.RateLimitEnabled {
		apiMiddleware = append(apiMiddleware, middleware.RateLimit(
			middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow),
		))
	}
	apiMiddleware = append(apiMiddleware, middleware.SpanEnricher())

	checks := []handler.DependencyCheck{{
		Name:  "database",
		Check: func(context.Context) error { return db.Ping() },
	}}
	if redisClient != nil {
		checks = append(checks, handler.DependencyCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	}
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, checks...)

	r := router.NewRouter(engine, router.WithMiddleware(apiMiddleware...))
	r.Register(router.ProcurementGroups(router.Handlers{
		PurchaseOrders: handler.NewPurchaseOrderHandler(orderService, approvalService),
		Approvals:      handler.NewApprovalHandler(approvalService),
		Suppliers:      handler.NewSupplierHandler(directoryService, spendMonitor),
		Users:          handler.NewUserHandler(directoryService),
		Companies:      handler.NewCompanyHandler(directoryService),
		Dashboard:      handler.NewDashboardHandler(dashboardService, spendMonitor),
		Outbox:         handler.NewOutboxHandler(outboxService),
		EmailLogs:      handler.NewEmailLogHandler(emailLogService),
		System:         systemHandler,
	})...)
	r.Setup()
	router.RegisterHealthChecks(engine, systemHandler)
	if cfg.Swagger.Enabled {
		router.RegisterSwagger(engine, middleware.SwaggerProtection(cfg.Swagger, jwtAuth))
		log.Info("Swagger UI enabled", zap.String("path", "/swagger/index.html"))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if outboxProcessor != nil {
		if err := outboxProcessor.Stop(shutdownCtx); err != nil {
			log.Error("Error stopping outbox processor", zap.Error(err))
		}
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}
	businessMetrics.Stop()
	if dbInstrumentation != nil {
		dbInstrumentation.Stop()
	}
	cancel()

	for _, c := range []any{idempotencyStore, renderer} {
		if closer, ok := c.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if profiler != nil {
		_ = profiler.Stop()
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error flushing metrics", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error flushing traces", zap.Error(err))
	}
	if err := logProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error flushing logs", zap.Error(err))
	}

	log.Info("Server exited")
}

// newRenderer returns the headless Chrome renderer, or one that refuses to
// render when printing is disabled or Chrome cannot be configured
func newRenderer(cfg config.PrintingConfig, log *zap.Logger) procurementapp.DocumentRenderer {
	if !cfg.Enabled {
		log.Info("PDF rendering disabled")
		return printing.DisabledRenderer{}
	}
	engine := printing.NewTemplateEngine(printing.WithCurrencySymbol(cfg.CurrencySymbol))
	renderer, err := printing.NewChromedpRenderer(cfg, engine, log)
	if err != nil {
		log.Warn("PDF rendering unavailable", zap.Error(err))
		return printing.DisabledRenderer{}
	}
	return renderer
}
