package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shop-admin.backend/internal/config"
	"shop-admin.backend/internal/infrastructure/datasources/postgres"
	"shop-admin.backend/internal/infrastructure/jobs"
	"shop-admin.backend/internal/infrastructure/repositories"
	"shop-admin.backend/internal/interfaces/http/handlers"
	"shop-admin.backend/internal/interfaces/http/middleware"
	"shop-admin.backend/internal/usecases"
	"shop-admin.backend/pkg/crypto"
	"shop-admin.backend/pkg/jwt"
	"shop-admin.backend/pkg/logger"
	"shop-admin.backend/pkg/redis"
)

const cachePrefix = "shop-admin:"

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.Config) (*sqlx.DB, *gorm.DB, error) {
		sqlDB, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		gdb, err := postgres.OpenGorm(sqlDB.DB, cfg.Server.Env == "development")
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return sqlDB, gdb, nil
	}
	newSessionStore = redis.NewSessionStore
	loadSettings    = config.LoadSettingGroups
	runServer       = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	if err := logger.SetLevel(cfg.Server.LogLevel); err != nil {
		logger.Warn(ctx, "Ignoring invalid LOG_LEVEL", zap.String("level", cfg.Server.LogLevel), zap.Error(err))
	}
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	sqlDB, db, err := openDB(*cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer sqlDB.Close()
	logger.Info(ctx, "Connected to PostgreSQL")

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	cipher, err := crypto.NewCipher(cfg.Security.SecretEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize secret cipher: %w", err)
	}
	settingGroups, err := loadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings catalogue: %w", err)
	}

	// Repositories
	uow := repositories.NewUnitOfWork(db)
	cache := repositories.NewRedisCacheStore(cachePrefix)
	auditRepo := repositories.NewAuditLogRepository(db)
	userRepo := repositories.NewUserRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	permissionRepo := repositories.NewPermissionRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	productRepo := repositories.NewProductRepository(db)
	stockRepo := repositories.NewStockRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	refundRepo := repositories.NewRefundRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	couponRepo := repositories.NewCouponRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	taxRateRepo := repositories.NewTaxRateRepository(db)
	taxRuleRepo := repositories.NewTaxRuleRepository(db)
	currencyRepo := repositories.NewCurrencyRepository(db)
	languageRepo := repositories.NewLanguageRepository(db)
	translationRepo := repositories.NewTranslationRepository(db)
	cmsPageRepo := repositories.NewCmsPageRepository(db)
	templateRepo := repositories.NewNotificationTemplateRepository(db)
	notificationLogRepo := repositories.NewNotificationLogRepository(db)
	providerRepo := repositories.NewProviderRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(sqlDB)

	// Usecases
	audit := usecases.NewAuditService(auditRepo)
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore)
	roleUsecase := usecases.NewRoleUsecase(roleRepo, permissionRepo, uow, audit, cache, cfg.Cache.PermissionsTTL)
	userUsecase := usecases.NewUserUsecase(userRepo, roleRepo, uow, audit)
	settingsUsecase := usecases.NewSettingsUsecase(settingGroups, settingRepo, uow, audit, cache, cipher, cfg.Cache.SettingsTTL)
	catalogUsecase := usecases.NewCatalogUsecase(categoryRepo, brandRepo, productRepo, taxRateRepo, uow, audit)
	stockUsecase := usecases.NewStockUsecase(productRepo, stockRepo, uow, audit)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, refundRepo, productRepo, stockRepo, uow, audit)
	invoiceUsecase := usecases.NewInvoiceUsecase(invoiceRepo, orderRepo, uow, audit)
	walletUsecase := usecases.NewWalletUsecase(walletRepo, uow, audit)
	refundUsecase := usecases.NewRefundUsecase(refundRepo, orderRepo, walletUsecase, uow, audit)
	couponUsecase := usecases.NewCouponUsecase(couponRepo, uow, audit, settingsUsecase)
	dealUsecase := usecases.NewDealUsecase(dealRepo, productRepo, uow, audit)
	taxUsecase := usecases.NewTaxUsecase(taxRateRepo, taxRuleRepo, categoryRepo, uow, audit)
	localeUsecase := usecases.NewLocaleUsecase(currencyRepo, languageRepo, uow, audit, cache, cfg.Cache.SettingsTTL)
	cmsUsecase := usecases.NewCmsUsecase(cmsPageRepo, uow, audit)
	translationUsecase := usecases.NewTranslationUsecase(translationRepo, languageRepo, uow, audit, cache, cfg.Cache.SettingsTTL)
	notificationUsecase := usecases.NewNotificationUsecase(templateRepo, notificationLogRepo, uow, audit)
	providerUsecase := usecases.NewProviderUsecase(providerRepo, notificationLogRepo, uow, audit, cipher)
	dashboardUsecase := usecases.NewDashboardUsecase(dashboardRepo, settingsUsecase, cfg.Dashboard.LowStockThreshold)

	// Background jobs
	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	expiryJob := jobs.NewPromotionExpiryJob(couponUsecase, dealUsecase, cfg.Jobs.PromotionExpiryInterval)
	go expiryJob.Start(jobCtx)
	defer expiryJob.Stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware("/health", "/metrics"))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         handlers.NewAuthHandler(authUsecase),
		auditLogHandler:     handlers.NewAuditLogHandler(audit),
		settingsHandler:     handlers.NewSettingsHandler(settingsUsecase, roleUsecase),
		roleHandler:         handlers.NewRoleHandler(roleUsecase),
		userHandler:         handlers.NewUserHandler(userUsecase),
		catalogHandler:      handlers.NewCatalogHandler(catalogUsecase),
		stockHandler:        handlers.NewStockHandler(stockUsecase),
		orderHandler:        handlers.NewOrderHandler(orderUsecase),
		invoiceHandler:      handlers.NewInvoiceHandler(invoiceUsecase),
		refundHandler:       handlers.NewRefundHandler(refundUsecase),
		walletHandler:       handlers.NewWalletHandler(walletUsecase),
		couponHandler:       handlers.NewCouponHandler(couponUsecase),
		dealHandler:         handlers.NewDealHandler(dealUsecase),
		taxHandler:          handlers.NewTaxHandler(taxUsecase),
		localeHandler:       handlers.NewLocaleHandler(localeUsecase),
		cmsHandler:          handlers.NewCmsHandler(cmsUsecase),
		translationHandler:  handlers.NewTranslationHandler(translationUsecase),
		notificationHandler: handlers.NewNotificationHandler(notificationUsecase),
		providerHandler:     handlers.NewProviderHandler(providerUsecase),
		dashboardHandler:    handlers.NewDashboardHandler(dashboardUsecase),
		authMiddleware:      middleware.AuthMiddleware(jwtService, sessionStore),
		permissions:         roleUsecase,
	})

	logger.Debug(ctx, "Routes registered", zap.Int("count", len(r.Routes())))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(ctx, "Shutting down server")
		expiryJob.Stop()
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 15*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "Graceful shutdown failed", zap.Error(err))
		}
	}()

	logger.Info(ctx, "Shop admin backend starting", zap.String("port", cfg.Server.Port))
	if err := runServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
