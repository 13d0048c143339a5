package publisher

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access operations for the Publisher domain.
type Repository interface {
	// Create inserts a new publisher.
	// Errors: ErrDuplicateName.
	Create(ctx context.Context, p *Publisher) (*Publisher, error)

	// GetByID retrieves publisher by UUID.
	// Errors: ErrPublisherNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Publisher, error)

	// List retrieves one page of publishers plus the total count.
	List(ctx context.Context, limit, offset int) ([]Publisher, int64, error)

	// FindByName retrieves the publisher with this exact name, or nil when
	// none matches.
	FindByName(ctx context.Context, name string) (*Publisher, error)

	// Update replaces all fields of an existing publisher.
	// Errors: ErrPublisherNotFound, ErrDuplicateName.
	Update(ctx context.Context, p *Publisher) (*Publisher, error)

	// Delete removes publisher by ID. Deleting a missing id is not an error.
	// Errors: ErrPublisherHasBooks.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID always queries current storage state, never the cache.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByName reports whether any publisher has this exact name.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
