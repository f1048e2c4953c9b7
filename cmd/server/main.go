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
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"alcyxob/fitness-coach/internal/api"
	"alcyxob/fitness-coach/internal/autosave"
	"alcyxob/fitness-coach/internal/cache"
	"alcyxob/fitness-coach/internal/config"
	"alcyxob/fitness-coach/internal/logging"
	"alcyxob/fitness-coach/internal/metrics"
	"alcyxob/fitness-coach/internal/repository/mongo"
	"alcyxob/fitness-coach/internal/service"
	"alcyxob/fitness-coach/internal/storage"
)

// @title Fitness Coach API
// @version 1.0
// @description Training programs, client schedules, calendars and workout logging.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.SetupParams{
		Level:    cfg.Log.Level,
		FileName: cfg.Log.File,
		ToStdout: cfg.Log.Stdout,
		JSON:     cfg.Log.JSON,
	})
	log.Info("starting fitness coach server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Database ---
	connectCtx, cancelConnect := context.WithTimeout(ctx, 15*time.Second)
	dbClient, err := mongo.ConnectDB(connectCtx, cfg.Database.URI)
	cancelConnect()
	if err != nil {
		log.Fatalf("connect mongo: %s", err)
	}
	appDB := dbClient.Database(cfg.Database.Name)

	indexCtx, cancelIndexes := context.WithTimeout(ctx, time.Minute)
	if err := mongo.EnsureIndexes(indexCtx, appDB); err != nil {
		log.Errorf("ensure indexes: %s", err)
	}
	cancelIndexes()

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager("fitness_coach", "api", registry)

	// --- Rate limiting ---
	var (
		redisClient *redis.Client
		limiter     api.RequestRateLimiter
	)
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("ping redis at %s: %s", cfg.Redis.Addr, err)
		}
		limiter = redis_rate.NewLimiter(redisClient)
		log.Infof("rate limiting auth endpoints at %d/min", cfg.RateLimit.AuthPerMinute)
	} else {
		log.Warn("redis.addr not set, auth endpoints are not rate limited")
	}

	// --- Storage ---
	fileStorage, err := storage.NewS3Storage(ctx, cfg.S3)
	if err != nil {
		log.Fatalf("init s3 storage: %s", err)
	}

	location, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatalf("schedule time zone: %s", err)
	}

	// --- Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	workoutRepo := mongo.NewMongoProgramWorkoutRepository(appDB)
	clientProgramRepo := mongo.NewMongoClientProgramRepository(appDB)
	completionRepo := mongo.NewMongoCompletionRepository(appDB)
	workoutLogRepo := mongo.NewMongoWorkoutLogRepository(appDB)
	photoRepo := mongo.NewMongoProgressPhotoRepository(appDB)

	// --- Services ---
	clock := service.SystemClock{}
	scheduleCache := cache.NewScheduleCache(cfg.Schedule.CacheSizeMB, cfg.Schedule.CacheTTL, metricsManager)
	saver := autosave.NewSaver(cfg.Autosave.Delay, cfg.Autosave.SaveTimeout, metricsManager)

	authService, err := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, clock)
	if err != nil {
		log.Fatalf("init auth service: %s", err)
	}
	scheduleService := service.NewScheduleService(
		userRepo, clientProgramRepo, programRepo, workoutRepo, completionRepo,
		scheduleCache, clock,
		service.ScheduleOptions{
			CompletionLookbackDays: cfg.Schedule.CompletionLookbackDays,
			CycleWeeks:             cfg.Schedule.CycleWeeks,
			Location:               location,
		},
	)
	exerciseService := service.NewExerciseService(exerciseRepo)
	trainerService := service.NewTrainerService(userRepo, exerciseRepo, programRepo, workoutRepo, clientProgramRepo, scheduleService)
	clientService := service.NewClientService(completionRepo, workoutLogRepo, photoRepo, fileStorage, scheduleService, saver, clock, metricsManager)

	// --- HTTP ---
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	api.SetupRoutes(router, authService, trainerService, clientService, exerciseService, scheduleService, api.RouteOptions{
		Metrics:       metricsManager,
		Gatherer:      registry,
		RateLimiter:   limiter,
		AuthPerMinute: cfg.RateLimit.AuthPerMinute,
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	// Pending draft saves are flushed after the last request has been served.
	err = multierr.Combine(
		server.Shutdown(shutdownCtx),
		saver.Close(shutdownCtx),
	)
	if redisClient != nil {
		err = multierr.Append(err, redisClient.Close())
	}
	err = multierr.Append(err, mongo.DisconnectDB(dbClient))
	if err != nil {
		log.Errorf("shutdown: %s", err)
		os.Exit(1)
	}
	log.Info("server exited")
}
