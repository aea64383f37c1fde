// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"log"

	_ "tripplanner-api/docs" // Required for Swagger
	"tripplanner-api/internal/api"
	"tripplanner-api/internal/api/handlers"
	"tripplanner-api/internal/api/middleware"
	"tripplanner-api/internal/auth"
	"tripplanner-api/internal/config"
	"tripplanner-api/internal/logging"
	"tripplanner-api/internal/place"
	"tripplanner-api/internal/ratelimit"
	"tripplanner-api/internal/repository"
	"tripplanner-api/internal/service"
	"tripplanner-api/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           Trip Planner API
// @version         1.0
// @description     Trip itineraries with day-by-day places, share links and place search

// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format, "tripplanner-api")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConfig := storage.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	}

	if err := storage.EnsureDatabase(dbConfig); err != nil {
		logger.Fatal("Failed to create database", zap.Error(err))
	}

	db, err := storage.NewDB(dbConfig)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	if err := storage.RunMigrations(db, dbConfig.DBName, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	rdb, err := storage.NewRedis(cfg.Redis.URL)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer rdb.Close()

	members := repository.NewMemberRepository(db)
	tripRepo := repository.NewTripRepository(db)
	dayRepo := repository.NewTripDayRepository(db)
	placeRepo := repository.NewTripPlaceRepository(db)
	shareRepo := repository.NewTripShareRepository(db)

	sessions := auth.NewSessions(auth.NewJWTManager(cfg.JWT), auth.NewTokenStore(rdb), members, logger)

	trips := service.NewTripService(tripRepo, members, logger)
	days := service.NewTripDayService(dayRepo, trips)
	tripPlaces := service.NewTripPlaceService(placeRepo, days, logger)

	h := handlers.NewHandler(handlers.Services{
		Members:     service.NewMemberService(members, sessions, logger),
		Trips:       trips,
		TripDays:    days,
		TripPlaces:  tripPlaces,
		TripShares:  service.NewTripShareService(shareRepo, trips, cfg.AppBaseURL, logger),
		PlaceSearch: service.NewPlaceSearchService(place.NewKakaoClient(cfg.Kakao, logger), tripPlaces),
		Export:      service.NewExportService(trips, dayRepo, placeRepo, logger),
	}, cfg.Cookie, logger)
	h.SetHealthChecks(map[string]handlers.HealthCheck{
		"mysql": db.PingContext,
		"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})

	router := api.SetupRouter(api.RouterDeps{
		Handler:     h,
		Sessions:    sessions,
		RateLimiter: ratelimit.NewRateLimiter(rdb),
		RateLimits:  cfg.RateLimit,
		Metrics:     middleware.NewMetrics(),
		Logger:      logger,
	})

	serverAddr := fmt.Sprintf(":%s", cfg.Server.Port)
	if !cfg.IsProduction() {
		logger.Info("Server starting", zap.String("url", "http://localhost"+serverAddr))
		logger.Info("Swagger UI available", zap.String("url", "http://localhost"+serverAddr+"/swagger/index.html"))
	}

	if err := router.Run(serverAddr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
