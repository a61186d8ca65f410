package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/meatdirect/backend/internal/application/catalog"
	contactapp "github.com/meatdirect/backend/internal/application/contact"
	integrationapp "github.com/meatdirect/backend/internal/application/integration"
	notificationapp "github.com/meatdirect/backend/internal/application/notification"
	orderingapp "github.com/meatdirect/backend/internal/application/ordering"
	paymentapp "github.com/meatdirect/backend/internal/application/payment"
	wholesaleapp "github.com/meatdirect/backend/internal/application/wholesale"
	"github.com/meatdirect/backend/internal/infrastructure/auth"
	"github.com/meatdirect/backend/internal/infrastructure/config"
	"github.com/meatdirect/backend/internal/infrastructure/event"
	"github.com/meatdirect/backend/internal/infrastructure/logger"
	"github.com/meatdirect/backend/internal/infrastructure/mail"
	"github.com/meatdirect/backend/internal/infrastructure/pdf"
	"github.com/meatdirect/backend/internal/infrastructure/persistence"
	"github.com/meatdirect/backend/internal/infrastructure/square"
	"github.com/meatdirect/backend/internal/infrastructure/stripe"
	"github.com/meatdirect/backend/internal/interfaces/http/handler"
	"github.com/meatdirect/backend/internal/interfaces/http/middleware"
	"github.com/meatdirect/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Meat Direct backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logging
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	settingsRepo := persistence.NewGormStorefrontSettingsRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	notificationRepo := persistence.NewGormEmailNotificationRepository(db.DB)
	accessKeyRepo := persistence.NewGormAccessKeyRepository(db.DB)
	accessRequestRepo := persistence.NewGormAccessRequestRepository(db.DB)
	quoteRepo := persistence.NewGormQuoteRequestRepository(db.DB)
	messageRepo := persistence.NewGormContactMessageRepository(db.DB)

	// Outbound adapters
	stripeGateway := stripe.NewGateway(&cfg.Stripe, log)
	webhookVerifier := stripe.NewWebhookVerifier(cfg.Stripe.WebhookSecret)
	squareClient := square.NewClient(&cfg.Square, log)
	mailSender := mail.NewSMTPSender(&cfg.Mail, log)
	receiptGenerator := pdf.NewReceiptGenerator()
	tokenService := auth.NewSessionTokenService(&cfg.Wholesale)

	// Application services
	productService := catalogapp.NewProductService(productRepo, settingsRepo)
	checkoutService := orderingapp.NewCheckoutService(orderRepo, productRepo, stripeGateway, log)
	webhookService := paymentapp.NewWebhookService(webhookVerifier, orderRepo, paymentRepo, log)
	notificationService := notificationapp.NewService(notificationRepo, mailSender, receiptGenerator,
		notificationapp.Config{
			FromAddress:   cfg.Mail.FromAddress,
			WholesaleTeam: cfg.Mail.WholesaleTeam,
			QuoteTeam:     cfg.Mail.QuoteTeam,
			ContactTeam:   cfg.Mail.ContactTeam,
		}, log)
	syncService := integrationapp.NewSquareSyncService(squareClient, productRepo, log)
	accessService := wholesaleapp.NewAccessService(accessKeyRepo, accessRequestRepo, tokenService,
		notificationService, cfg.Wholesale.TokenLifetime, log)
	contactService := contactapp.NewService(quoteRepo, messageRepo, notificationService, log)

	// Event bus and side-effect handlers
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(orderingapp.NewOrderPaidHandler(orderRepo, notificationService, syncService, log))
	eventBus.Subscribe(orderingapp.NewOrderStatusChangedHandler(orderRepo, notificationService, log))

	checkoutService.SetEventPublisher(eventBus)
	webhookService.SetEventPublisher(eventBus)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", handler.NewHealthHandler(db).Handle)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewCatalogHandler(productService))
	r.Register(handler.NewCheckoutHandler(checkoutService))
	r.Register(handler.NewPaymentsHandler(&cfg.Stripe, webhookService, log))
	r.Register(handler.NewWholesaleHandler(accessService, &cfg.Wholesale))
	r.Register(handler.NewContactHandler(contactService))
	r.Register(handler.NewSyncHandler(syncService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
