package services

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	apperrors "userroster/pkg/errors"
)

const defaultShutdownTimeout = 30 * time.Second

// shutdownHook is a named resource-release callback
type shutdownHook struct {
	name string
	fn   func(ctx context.Context) error
}

// ShutdownCoordinator owns termination-signal handling for the process.
// Hooks are registered by name and run in reverse registration order when a
// signal arrives or Shutdown is called directly. Registration is guarded
// against duplicates, and signal binding happens at most once.
type ShutdownCoordinator struct {
	mu       sync.Mutex
	hooks    []shutdownHook
	names    map[string]bool
	timeout  time.Duration
	sigChan  chan os.Signal
	shutOnce sync.Once
}

// NewShutdownCoordinator creates a coordinator with the default timeout
func NewShutdownCoordinator() *ShutdownCoordinator {
	return &ShutdownCoordinator{
		names:   make(map[string]bool),
		timeout: defaultShutdownTimeout,
	}
}

// SetTimeout overrides the per-shutdown timeout
func (c *ShutdownCoordinator) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = d
}

// Register adds a named hook. Registering the same name twice is an error
// rather than a silent double-binding.
func (c *ShutdownCoordinator) Register(name string, fn func(ctx context.Context) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.names[name] {
		return fmt.Errorf("%w: %s", apperrors.ErrAlreadyRegistered, name)
	}
	c.names[name] = true
	c.hooks = append(c.hooks, shutdownHook{name: name, fn: fn})

	log.WithField("hook", name).Debug("Registered shutdown hook")
	return nil
}

// Listen binds SIGINT and SIGTERM. Calling Listen more than once keeps the
// original binding.
func (c *ShutdownCoordinator) Listen() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sigChan != nil {
		return
	}
	c.sigChan = make(chan os.Signal, 1)
	signal.Notify(c.sigChan, os.Interrupt, syscall.SIGTERM)
}

// Wait blocks until a termination signal arrives, then runs the shutdown
// sequence. Listen must have been called first.
func (c *ShutdownCoordinator) Wait() {
	c.mu.Lock()
	sigChan := c.sigChan
	timeout := c.timeout
	c.mu.Unlock()

	if sigChan == nil {
		log.Error("Shutdown coordinator is not listening for signals")
		return
	}

	sig := <-sigChan
	log.WithField("signal", sig).Info("Received shutdown signal, initiating graceful shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := c.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Graceful shutdown finished with errors")
		return
	}
	log.Info("Graceful shutdown completed")
}

// Shutdown runs all registered hooks in reverse registration order. A
// failing hook is logged and the remaining hooks still run; the first
// failure is reported after all hooks finished. Shutdown runs at most once.
func (c *ShutdownCoordinator) Shutdown(ctx context.Context) error {
	var firstErr error

	c.shutOnce.Do(func() {
		c.mu.Lock()
		hooks := make([]shutdownHook, len(c.hooks))
		copy(hooks, c.hooks)
		c.mu.Unlock()

		for i := len(hooks) - 1; i >= 0; i-- {
			hook := hooks[i]
			if err := hook.fn(ctx); err != nil {
				log.WithError(err).WithField("hook", hook.name).Error("Shutdown hook failed")
				if firstErr == nil {
					firstErr = fmt.Errorf("shutdown hook %s: %w", hook.name, err)
				}
				continue
			}
			log.WithField("hook", hook.name).Info("Shutdown hook completed")
		}
	})

	return firstErr
}
