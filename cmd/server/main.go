package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Elliot-87/YOUTHCENTRE/internal/accounts"
	"github.com/Elliot-87/YOUTHCENTRE/internal/advisory"
	"github.com/Elliot-87/YOUTHCENTRE/internal/api/routes"
	"github.com/Elliot-87/YOUTHCENTRE/internal/applications"
	"github.com/Elliot-87/YOUTHCENTRE/internal/config"
	"github.com/Elliot-87/YOUTHCENTRE/internal/jobs"
	"github.com/Elliot-87/YOUTHCENTRE/internal/logging"
	"github.com/Elliot-87/YOUTHCENTRE/internal/referrals"
	"github.com/Elliot-87/YOUTHCENTRE/internal/storage"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting YOUTHCENTRE job board")

	// Connect database and run migrations
	db, err := storage.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", map[string]interface{}{"error": err.Error()})
	}

	// Redis is optional; without it the home section is recomputed per
	// request.
	var cache *utils.RedisClient
	if cfg.Redis.Enabled {
		cache = utils.NewRedisClient(cfg)
		if err := cache.HealthCheck(context.Background()); err != nil {
			logger.Warn("Redis unavailable, continuing without cache", map[string]interface{}{"error": err.Error()})
			cache.Close()
			cache = nil
		}
	}

	// Wire stores and services
	userStore := storage.NewUserStore(db)
	vacancyStore := storage.NewVacancyStore(db)
	applicationStore := storage.NewApplicationStore(db)
	advisoryStore := storage.NewAdvisoryStore(db)
	referralStore := storage.NewReferralStore(db)
	fileStore := storage.NewFileStore(cfg.Uploads.Dir)

	tokens := accounts.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	svcs := routes.Services{
		Accounts:     accounts.NewService(userStore, tokens),
		Jobs:         jobs.NewService(vacancyStore, userStore, fileStore, cache),
		Applications: applications.NewService(applicationStore, vacancyStore, userStore),
		Advisory:     advisory.NewService(advisoryStore),
		Referrals:    referrals.NewService(referralStore, referralStore, userStore),
		Tokens:       tokens,
		DB:           db,
		Cache:        cache,
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	// Setup routes
	routes.SetupRoutes(e, cfg, svcs)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		if cache != nil {
			if err := cache.Close(); err != nil {
				logger.Error("Error closing redis client", map[string]interface{}{"error": err.Error()})
			}
		}

		if err := storage.Close(db); err != nil {
			logger.Error("Error closing database", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
		logging.CloseLogging()
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
