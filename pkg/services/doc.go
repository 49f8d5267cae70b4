// Package services provides the core business logic for the userroster application.
//
// It includes services for:
//   - Startup orchestration: Validate, connect, register shutdown, load data
//   - User loading: Querying active users and deriving their role sets
//   - Shutdown coordination: Owning signal registration and running release
//     hooks in reverse order on termination
//
// All services support context-based cancellation for graceful shutdown.
package services
