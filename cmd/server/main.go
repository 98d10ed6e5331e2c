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
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"startup-nexus.backend/internal/config"
	"startup-nexus.backend/internal/infrastructure/datasources"
	"startup-nexus.backend/internal/infrastructure/jobs"
	"startup-nexus.backend/internal/infrastructure/repositories"
	"startup-nexus.backend/internal/interfaces/http/handlers"
	"startup-nexus.backend/internal/interfaces/http/middleware"
	"startup-nexus.backend/internal/usecases"
	"startup-nexus.backend/pkg/crypto"
	"startup-nexus.backend/pkg/jwt"
	"startup-nexus.backend/pkg/logger"
	"startup-nexus.backend/pkg/metrics"
	"startup-nexus.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	loadPolicy      = config.LoadModerationPolicy
	initLog         = logger.Init
	initRedis       = redis.Init
	openDB          = datasources.Open
	migrateDB       = datasources.Migrate
	newSessionStore = redis.NewSessionStore
	runServer       = func(srv *http.Server) error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	policy, err := loadPolicy(cfg.Platform.PolicyFile)
	if err != nil {
		return fmt.Errorf("failed to load moderation policy: %w", err)
	}

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB(db)

	if err := migrateDB(db); err != nil {
		return err
	}
	logger.Info(context.Background(), "Database ready", zap.String("driver", cfg.Database.Driver))

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	crypto.SetCost(cfg.Security.BcryptCost)
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	reg := metrics.New()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	investorRepo := repositories.NewInvestorRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	startupRepo := repositories.NewStartupRepository(db)
	checkoutRepo := repositories.NewCheckoutRepository(db)
	prefRepo := repositories.NewPreferenceRepository()
	uow := repositories.NewUnitOfWork(db)

	ecoRepos := usecases.EcosystemRepos{
		Users:        userRepo,
		Jobs:         jobRepo,
		Investors:    investorRepo,
		Applications: appRepo,
		Startups:     startupRepo,
	}
	screen := usecases.NewEmailScreen(policy)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore, screen, usecases.AuthOptions{
		MasterAdminEmail: cfg.Platform.MasterAdminEmail,
		StrictPasswords:  cfg.Security.StrictPasswords,
	})
	jobUsecase := usecases.NewJobUsecase(jobRepo, appRepo, uow, reg)
	investorUsecase := usecases.NewInvestorUsecase(investorRepo, reg)
	appUsecase := usecases.NewApplicationUsecase(appRepo, jobRepo)
	startupUsecase := usecases.NewStartupUsecase(startupRepo)
	prefUsecase := usecases.NewPreferenceUsecase(prefRepo, cfg.Platform.SupportedLanguages, cfg.Platform.DefaultLanguage)
	checkoutUsecase := usecases.NewCheckoutUsecase(checkoutRepo, jobRepo, uow, usecases.CheckoutOptions{
		Delay:    cfg.Checkout.SimulatedDelay,
		Currency: cfg.Checkout.Currency,
	}, reg)
	moderationUsecase := usecases.NewModerationUsecase(jobRepo, investorRepo)
	ecosystemUsecase := usecases.NewEcosystemUsecase(ecoRepos, uow, screen, usecases.MasterAdmin{
		Email: cfg.Platform.MasterAdminEmail,
		Name:  cfg.Platform.MasterAdminName,
	}, reg)
	statsUsecase := usecases.NewStatsUsecase(ecoRepos)

	if _, err := ecosystemUsecase.EnsureMasterAdmin(context.Background()); err != nil {
		return fmt.Errorf("failed to seed master admin: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	settlementJob := jobs.NewCheckoutSettlementJob(checkoutUsecase, cfg.Checkout.SettleInterval)
	go settlementJob.Start(ctx)
	defer settlementJob.Stop()

	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(reg))

	applyCORSMiddleware(r, cfg.Server.AllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r, reg)
	registerAPIV1Routes(r, routeDeps{
		authHandler:        handlers.NewAuthHandler(authUsecase, cfg.Server.Env == "production"),
		jobHandler:         handlers.NewJobHandler(jobUsecase),
		investorHandler:    handlers.NewInvestorHandler(investorUsecase),
		applicationHandler: handlers.NewApplicationHandler(appUsecase),
		startupHandler:     handlers.NewStartupHandler(startupUsecase),
		preferenceHandler:  handlers.NewPreferenceHandler(prefUsecase),
		checkoutHandler:    handlers.NewCheckoutHandler(checkoutUsecase),
		adminHandler:       handlers.NewAdminHandler(moderationUsecase, ecosystemUsecase, statsUsecase),
		authMiddleware:     middleware.AuthMiddleware(jwtService, sessionStore),
		optionalAuth:       middleware.OptionalAuth(jwtService, sessionStore),
		rateLimit:          limiter.Middleware(),
	})

	logger.Debug(ctx, "Routes registered", zap.Int("count", len(r.Routes())))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-sigCtx.Done()
		if ctx.Err() != nil {
			return
		}
		logger.Info(context.Background(), "Shutting down server")
		settlementJob.Stop()
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(context.Background(), "Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info(ctx, "Startup Nexus backend starting", zap.String("port", cfg.Server.Port))
	if err := runServer(srv); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
