// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"encoding/json"

	"contas/internal/models"
)

// Store defines the persistence operations for the users collection and the
// two financial record collections. This abstraction allows swapping storage
// backends without changing the service layer.
type Store interface {
	// CreateUser persists a new user. Fails if the email is already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	// Returns (nil, nil) if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// InsertRecord persists a financial record document in the given
	// collection and returns the generated identifier.
	InsertRecord(ctx context.Context, kind models.RecordKind, rec *models.FinancialRecord) (string, error)

	// FindRecords returns every document of the given collection in
	// insertion order.
	FindRecords(ctx context.Context, kind models.RecordKind) ([]models.StoredRecord, error)

	// UpdateRecord replaces the top-level fields of the stored document with
	// those present in fields and returns the updated document.
	// Returns (nil, nil) if the id does not exist in the collection.
	UpdateRecord(ctx context.Context, kind models.RecordKind, id string, fields map[string]json.RawMessage) (*models.StoredRecord, error)

	// DeleteRecord removes a document by id, reporting whether a document
	// was actually removed.
	DeleteRecord(ctx context.Context, kind models.RecordKind, id string) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}
