package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	apperrors "userroster/pkg/errors"
	"userroster/pkg/models"
)

// ActiveUsersQuery is the query the application issues at startup. The
// storage boundary is an opaque string protocol; only the active filter
// is interpreted by the in-memory implementation.
const ActiveUsersQuery = "SELECT * FROM users WHERE status = 'active'"

const activeFilter = "status = 'active'"

// Repository defines the interface for data access operations
type Repository interface {
	// Connection lifecycle
	Connect(ctx context.Context, url string) error
	Connected() bool
	SessionID() string

	// User operations
	QueryUsers(ctx context.Context, query string) ([]models.UserRecord, error)

	// Utility operations
	Close() error
}

// MemoryRepository implements Repository over a fixed in-memory document
// set. It enforces the same connect-before-query contract a real driver
// would.
type MemoryRepository struct {
	mu        sync.RWMutex
	url       string
	sessionID string
	documents []string // raw JSON documents, decoded on query
}

// seedDocuments is the fixed record set served by the mock store. One
// active user and one inactive user, so the status filter is observable.
var seedDocuments = []string{
	`{"id": 1, "name": "John Doe", "roles": "editor,viewer", "permissions": ["read", "write", "admin"], "total_purchases": 5, "status": "active"}`,
	`{"id": 2, "name": "Jane Roe", "roles": "viewer", "permissions": ["read"], "total_purchases": 0, "status": "inactive"}`,
}

// NewMemoryRepository creates a repository backed by the default document set
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{documents: seedDocuments}
}

// NewMemoryRepositoryWithDocuments creates a repository over a caller-supplied
// raw document set. Used by tests to exercise decode failures.
func NewMemoryRepositoryWithDocuments(documents []string) *MemoryRepository {
	return &MemoryRepository{documents: documents}
}

// Connect establishes the mock connection and assigns a session ID.
// Connecting twice without an intervening Close is an error.
func (r *MemoryRepository) Connect(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrCancelled, err)
	}
	if url == "" {
		return fmt.Errorf("%w: database URL is empty", apperrors.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessionID != "" {
		return fmt.Errorf("%w: session %s", apperrors.ErrAlreadyConnected, r.sessionID)
	}

	r.url = url
	r.sessionID = uuid.NewString()

	log.WithFields(log.Fields{
		"url":     url,
		"session": r.sessionID,
	}).Debug("Connected to storage")

	return nil
}

// Connected reports whether a session is currently open
func (r *MemoryRepository) Connected() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessionID != ""
}

// SessionID returns the current session ID, or empty when disconnected
func (r *MemoryRepository) SessionID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessionID
}

// QueryUsers executes a string query against the document set and decodes
// each matching document into a typed UserRecord. A document that fails to
// decode aborts the query with ErrDecodeFailed rather than being skipped.
func (r *MemoryRepository) QueryUsers(ctx context.Context, query string) ([]models.UserRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCancelled, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.sessionID == "" {
		return nil, fmt.Errorf("failed to query users: %w", apperrors.ErrNotConnected)
	}

	onlyActive := strings.Contains(query, activeFilter)

	records := make([]models.UserRecord, 0, len(r.documents))
	for i, doc := range r.documents {
		var record models.UserRecord
		if err := json.Unmarshal([]byte(doc), &record); err != nil {
			return nil, fmt.Errorf("%w: document %d: %v", apperrors.ErrDecodeFailed, i, err)
		}
		if onlyActive && !record.IsActive() {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Close releases the mock connection. Closing an already closed repository
// is a no-op, closing mid-query waits for the query to finish.
func (r *MemoryRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sessionID == "" {
		return nil
	}

	log.WithField("session", r.sessionID).Debug("Disconnected from storage")
	r.sessionID = ""
	r.url = ""
	return nil
}
