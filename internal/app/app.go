package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobtracker_backend/database"
	_ "jobtracker_backend/docs"
	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/config"
	"jobtracker_backend/internal/email"
	"jobtracker_backend/internal/generator"
	"jobtracker_backend/internal/handlers"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/repositories"
	"jobtracker_backend/internal/routes"
	"jobtracker_backend/internal/services"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/internal/workers"
	"jobtracker_backend/pkg/apperrors"
	"jobtracker_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

// Server - собранное приложение: роутер и сервисы
type Server struct {
	Router    *gin.Engine
	Services  *services.ServiceContainer
	WSManager *ws.WebSocketManager
}

// Option подменяет внешние зависимости, в основном для тестов
type Option func(*options)

type options struct {
	generator     generator.Generator
	emailProvider email.Provider
}

func WithGenerator(g generator.Generator) Option {
	return func(o *options) { o.generator = g }
}

func WithEmailProvider(p email.Provider) Option {
	return func(o *options) { o.emailProvider = p }
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.DSN, cfg.IsDevelopment())
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Database connected")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := NewServer(ctx, cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to build application", "error", err)
	}

	workers.NewSessionWorker(
		gormDB,
		repositories.NewSessionRepository(),
		time.Duration(cfg.Workers.SessionCleanupMinutes)*time.Minute,
	).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:              address,
		Handler:           server.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", address)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	server.Services.NotificationService.Wait()
	_ = sqlDB.Close()
	logger.Info("Server stopped")
}

// NewServer собирает сервисы, хэндлеры и роутер. WebSocket-менеджер
// работает до отмены ctx.
func NewServer(ctx context.Context, cfg *config.Config, gormDB *gorm.DB, opts ...Option) (*Server, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	wsManager := ws.NewWebSocketManager()
	go wsManager.Run(ctx)

	v := validator.New()

	// 1. Инициализируем сервисы
	serviceContainer, err := initializeServices(ctx, cfg, v, wsManager, o)
	if err != nil {
		return nil, err
	}

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer, v)

	// 3. WebSocket
	wsHandler := ws.NewWebSocketHandler(wsManager, nil)

	// 4. Gin и маршруты
	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler, middleware.AuthMiddleware(serviceContainer.AuthService))

	return &Server{
		Router:    ginRouter,
		Services:  serviceContainer,
		WSManager: wsManager,
	}, nil
}

func initializeServices(
	ctx context.Context,
	cfg *config.Config,
	v *validator.Validator,
	wsManager *ws.WebSocketManager,
	o *options,
) (*services.ServiceContainer, error) {
	emailProvider := o.emailProvider
	if emailProvider == nil {
		emailProvider = email.NewProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		}, email.NewTemplateManager())
	}

	backend := o.generator
	if backend == nil {
		var err error
		backend, err = generator.NewFromConfig(ctx, generator.ProviderConfig{
			Provider: cfg.Generator.Provider,
			APIKey:   cfg.Generator.APIKey,
			Model:    cfg.Generator.Model,
			BaseURL:  cfg.Generator.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("document generator: %w", err)
		}
	}
	logger.Info("Document generator configured", "provider", cfg.Generator.Provider)

	docGenerator := generator.NewAdapter(backend,
		generator.WithTimeout(cfg.GeneratorTimeout()),
		generator.WithRateLimit(cfg.Generator.RatePerMinute, cfg.Generator.Burst),
	)

	// --- Репозитории ---
	userRepo := repositories.NewUserRepository()
	sessionRepo := repositories.NewSessionRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()

	// --- Сервисы ---
	hasher := auth.NewHasher(cfg.Security.BcryptCost, int64(cfg.Security.HashingConcurrency))
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL(), cfg.JWT.Issuer)

	authService := services.NewAuthService(userRepo, sessionRepo, hasher, tokens, v)
	jobService := services.NewJobService(jobRepo, v)
	notificationService := services.NewNotificationService(userRepo, emailProvider, wsManager)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo, userRepo, docGenerator, notificationService, v)

	return &services.ServiceContainer{
		AuthService:         authService,
		JobService:          jobService,
		ApplicationService:  applicationService,
		NotificationService: notificationService,
	}, nil
}

func initializeHandlers(services *services.ServiceContainer, v *validator.Validator) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, services.AuthService),
		JobHandler:         handlers.NewJobHandler(baseHandler, services.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, services.ApplicationService),
		HealthHandler:      handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Server.CORSOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}
