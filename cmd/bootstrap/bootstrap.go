package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uhc-health-portal/config"
	deliveryHttp "uhc-health-portal/internal/delivery/http"
	"uhc-health-portal/internal/delivery/http/handler"
	"uhc-health-portal/internal/delivery/http/middleware"
	"uhc-health-portal/internal/infrastructure/cache"
	"uhc-health-portal/internal/infrastructure/database"
	"uhc-health-portal/internal/repository"
	"uhc-health-portal/internal/service"
	"uhc-health-portal/internal/usecase"
	"uhc-health-portal/pkg/token"
	"uhc-health-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize token service
	tokenService := token.NewService(cfg.Token)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	wardRepo := repository.NewWardRepository()
	ashaRepo := repository.NewAshaWorkerRepository()
	householdRepo := repository.NewHouseholdRepository()
	counterRepo := repository.NewHouseholdCounterRepository()
	memberRepo := repository.NewMemberRepository()
	vaccinationRepo := repository.NewVaccinationRepository()
	hospitalRepo := repository.NewHospitalRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	reviewRepo := repository.NewAshaReviewRepository()

	// Initialize services
	refCache := service.NewReferenceCache(redisClient, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, ashaRepo, tokenService)
	wardUsecase := usecase.NewWardUsecase(db, log, wardRepo, refCache)
	householdUsecase := usecase.NewHouseholdUsecase(db, log, householdRepo, memberRepo, vaccinationRepo)
	memberUsecase := usecase.NewMemberUsecase(db, log, memberRepo, householdRepo, counterRepo)
	vaccinationUsecase := usecase.NewVaccinationUsecase(db, log, vaccinationRepo, memberRepo)
	ashaUsecase := usecase.NewAshaWorkerUsecase(db, log, ashaRepo)
	reviewUsecase := usecase.NewReviewUsecase(db, log, reviewRepo, ashaRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, hospitalRepo, refCache)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	wardHandler := handler.NewWardHandler(wardUsecase, customValidator)
	householdHandler := handler.NewHouseholdHandler(householdUsecase, customValidator)
	memberHandler := handler.NewMemberHandler(memberUsecase, customValidator)
	vaccinationHandler := handler.NewVaccinationHandler(vaccinationUsecase, customValidator)
	ashaWorkerHandler := handler.NewAshaWorkerHandler(ashaUsecase, customValidator)
	reviewHandler := handler.NewReviewHandler(reviewUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		wardHandler,
		householdHandler,
		memberHandler,
		vaccinationHandler,
		ashaWorkerHandler,
		reviewHandler,
		appointmentHandler,
		hospitalHandler,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
