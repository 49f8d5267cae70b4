// Package repository provides the data access layer for the userroster application.
//
// It defines the Repository interface and implements it with an in-memory
// store. The repository handles:
//   - Connection lifecycle against a storage URL
//   - String-based user queries with an active-status filter
//   - Typed decoding of raw storage documents into UserRecord
//   - Context-aware operations for graceful cancellation
//
// The in-memory implementation stands in for a real database: it honours
// the same connect/query/close contract but serves a fixed document set.
package repository
