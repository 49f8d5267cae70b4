package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"userroster/pkg/config"
	"userroster/pkg/models"
	"userroster/pkg/repository"
)

// AppService coordinates the application startup sequence. Startup is a
// pipeline of named stages: validate configuration, connect storage,
// register the shutdown hook, load initial data. Each stage wraps its error
// and propagates; there is no internal recovery.
type AppService struct {
	mu          sync.RWMutex
	cfg         *config.Config
	repo        repository.Repository
	userService *UserService
	shutdown    *ShutdownCoordinator
	users       []models.User
}

// NewAppService creates a new AppService
func NewAppService(
	cfg *config.Config,
	repo repository.Repository,
	userService *UserService,
	shutdown *ShutdownCoordinator,
) *AppService {
	return &AppService{
		cfg:         cfg,
		repo:        repo,
		userService: userService,
		shutdown:    shutdown,
	}
}

// Start runs the startup pipeline. On any stage failure the error
// propagates to the caller with no partial state left behind: validation
// runs before the first connection attempt.
func (s *AppService) Start(ctx context.Context) error {
	log.Info("Starting application")
	startTime := time.Now()

	if err := s.initializeServices(ctx); err != nil {
		log.WithError(err).Error("Failed to initialize services")
		return fmt.Errorf("initializing services: %w", err)
	}

	if err := s.LoadInitialData(ctx); err != nil {
		log.WithError(err).Error("Failed to load initial data")
		return fmt.Errorf("loading initial data: %w", err)
	}

	duration := time.Since(startTime)
	log.WithField("duration", duration).Info("Application started")

	return nil
}

// initializeServices validates the configuration, connects to storage and
// registers the storage shutdown hook, in that order.
func (s *AppService) initializeServices(ctx context.Context) error {
	if err := s.cfg.Validate(); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if err := s.repo.Connect(ctx, s.cfg.DatabaseURL); err != nil {
		return fmt.Errorf("connecting to storage: %w", err)
	}
	log.WithField("session", s.repo.SessionID()).Info("Storage connection established")

	if err := s.shutdown.Register("storage", func(ctx context.Context) error {
		return s.Close()
	}); err != nil {
		return fmt.Errorf("registering shutdown hook: %w", err)
	}

	return nil
}

// LoadInitialData performs the initial read of active users and logs the
// count. Errors propagate uncaught.
func (s *AppService) LoadInitialData(ctx context.Context) error {
	users, err := s.userService.FetchActiveUsers(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.users = users
	s.mu.Unlock()

	log.WithField("count", len(users)).Info("Loaded active users")
	return nil
}

// ActiveUsers returns the users loaded by the last LoadInitialData call
func (s *AppService) ActiveUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users
}

// Close releases the storage connection
func (s *AppService) Close() error {
	if err := s.repo.Close(); err != nil {
		return fmt.Errorf("closing storage: %w", err)
	}
	return nil
}
