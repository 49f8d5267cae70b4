package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"userroster/pkg/config"
	"userroster/pkg/repository"
	"userroster/pkg/services"
)

func main() {
	// Setup logging
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)

	// Optional .env file; real env vars take precedence
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Failed to load .env file")
	}

	log.Info("Starting userroster application")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithError(err).Warn("Invalid log level, using info")
	}

	// Initialize repository and services
	repo := repository.NewMemoryRepository()
	userService := services.NewUserService(repo)
	shutdown := services.NewShutdownCoordinator()
	shutdown.Listen()

	appService := services.NewAppService(cfg, repo, userService, shutdown)

	// Run the startup sequence
	if err := appService.Start(context.Background()); err != nil {
		log.WithError(err).Fatal("Application startup failed")
	}

	// Block until a termination signal arrives, then run shutdown hooks
	shutdown.Wait()
}
