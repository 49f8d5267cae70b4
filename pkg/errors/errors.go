package errors

import (
	"errors"
	"fmt"
)

// Common error types
var (
	// ErrInvalidConfig indicates that the application configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidInput indicates that invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConnected indicates that a storage operation ran without a connection
	ErrNotConnected = errors.New("not connected to storage")

	// ErrAlreadyConnected indicates that a connection was opened twice
	ErrAlreadyConnected = errors.New("already connected to storage")

	// ErrDatabaseOperation indicates a database operation failure
	ErrDatabaseOperation = errors.New("database operation failed")

	// ErrDecodeFailed indicates that a stored record could not be decoded
	ErrDecodeFailed = errors.New("record decode failed")

	// ErrAlreadyRegistered indicates that a shutdown hook name was registered twice
	ErrAlreadyRegistered = errors.New("hook already registered")

	// ErrCancelled indicates that an operation was cancelled
	ErrCancelled = errors.New("operation cancelled")
)

// ServiceError represents a service-level error with additional context
type ServiceError struct {
	Op      string                 // Operation that failed
	Service string                 // Service where the error occurred
	Err     error                  // Underlying error
	Context map[string]interface{} // Additional context
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	if len(e.Context) > 0 {
		return fmt.Sprintf("%s.%s: %v (context: %v)", e.Service, e.Op, e.Err, e.Context)
	}
	return fmt.Sprintf("%s.%s: %v", e.Service, e.Op, e.Err)
}

// Unwrap allows errors.Is and errors.As to work
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError
func NewServiceError(service, op string, err error) *ServiceError {
	return &ServiceError{
		Service: service,
		Op:      op,
		Err:     err,
	}
}

// WithContext adds context to a ServiceError
func (e *ServiceError) WithContext(key string, value interface{}) *ServiceError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsConfigurationError checks if an error originates from config validation
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsDatabaseError checks if an error originates from the storage layer
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabaseOperation) ||
		errors.Is(err, ErrNotConnected) ||
		errors.Is(err, ErrAlreadyConnected)
}

// IsDecodeError checks if an error came from decoding a stored record
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecodeFailed)
}
