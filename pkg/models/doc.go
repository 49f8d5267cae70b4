// Package models defines the core data structures used throughout the userroster application.
//
// It includes:
//   - User: A user with its full, derived role set
//   - UserRecord: The typed row shape at the storage boundary
//
// All models include serialization tags for storage documents and
// JSON output.
package models
