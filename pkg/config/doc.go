// Package config provides configuration management for the userroster application.
//
// Configuration is loaded from environment variables with sensible defaults.
// The package supports:
//   - Database connection URL
//   - Cache settings (enabled flag and TTL)
//   - Logging level
//
// All configuration values are validated during startup, before any
// connection is attempted, so an invalid configuration never leaves
// partial state behind.
package config
