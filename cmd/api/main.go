// @title Showcase API
// @version 1.0
// @description Trivia, venue booking and coffee shop APIs.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "showcase/cmd/api/docs"
	"showcase/internal/adapter"
	"showcase/internal/adapter/events"
	"showcase/internal/cache"
	"showcase/internal/config"
	"showcase/internal/database"
	"showcase/internal/domain"
	"showcase/internal/handler"
	"showcase/internal/logger"
	"showcase/internal/middleware"
	"showcase/internal/repository"
	"showcase/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	defaultCategoriesTTL = 10 * time.Minute
	healthCheckTimeout   = 3 * time.Second
	shutdownTimeout      = 10 * time.Second
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, serving without cache", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	mongoClient, err := database.NewMongoClient(ctx, cfg.Mongo)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			appLogger.Warn("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()

	publisher, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create event publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Repositories
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	venueRepository := repository.NewVenueDatabaseAdapter(db)
	artistRepository := repository.NewArtistDatabaseAdapter(db)
	showRepository := repository.NewShowDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	drinkRepository := repository.NewDrinkMongoAdapter(mongoClient.Database(cfg.Mongo.Database).Collection(repository.DrinksCollection))
	if err := drinkRepository.EnsureIndexes(ctx); err != nil {
		appLogger.Fatal("Failed to create drink indexes", zap.Error(err))
	}

	// Services
	categoriesTTL := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Categories, defaultCategoriesTTL)
	categoryService := service.NewCategoryService(categoryRepository, cacheAdapter, categoriesTTL)
	questionService := service.NewQuestionService(questionRepository, categoryService, publisher, cfg.Pagination.QuestionsPerPage)
	quizService := service.NewQuizService(questionRepository, categoryService, domain.NewQuizSelector(nil))
	bookingService := service.NewBookingService(venueRepository, artistRepository, showRepository, txManager, publisher)
	drinkService := service.NewDrinkService(drinkRepository, publisher)

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	// Handlers
	handlers := handler.Handlers{
		Trivia:  handler.NewTriviaHandler(categoryService, questionService, quizService),
		Booking: handler.NewBookingHandler(bookingService),
		Drinks:  handler.NewDrinkHandler(drinkService),
	}

	checks := map[string]handler.HealthCheck{
		"oracle": db.PingContext,
		"mongo": func(ctx context.Context) error {
			return mongoClient.Ping(ctx, readpref.Primary())
		},
	}
	if cacheAdapter != nil {
		checks["redis"] = cacheAdapter.Ping
	}
	healthHandler := handler.NewHealthHandler(checks, healthCheckTimeout)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(metrics.Handler())
	app.Use(middleware.Recover())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/healthz", healthHandler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app.Group("/api"), handlers, authService)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
