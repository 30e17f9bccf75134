package repositories

import (
	"context"

	"people-api/internal/models"
)

// PersonRepository defines the persistence operations for person entities.
// Every method performs a single round trip to the store; mutating methods
// are committed before returning.
type PersonRepository interface {
	// Create inserts a new person and assigns its ID and timestamps
	// from the draft entity. A unique-constraint rejection on the email
	// column surfaces as a duplicate-entry error.
	Create(ctx context.Context, person *models.Person) error

	// GetByID retrieves a person by ID
	GetByID(ctx context.Context, id int64) (*models.Person, error)

	// GetByEmail retrieves a person by exact email match
	GetByEmail(ctx context.Context, email string) (*models.Person, error)

	// List retrieves all persons in insertion (ID) order
	List(ctx context.Context) ([]*models.Person, error)

	// UpdateFields mutates only the given columns, refreshes updated_at
	// and returns the full stored row.
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (*models.Person, error)

	// Delete removes a person by ID
	Delete(ctx context.Context, id int64) error
}
