package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Author data access operations.
// The abstraction keeps services testable and independent of the concrete
// store.
type Repository interface {
	// Create inserts a new author.
	// Errors: ErrDuplicateName if full name is taken (unique constraint).
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID retrieves author by UUID.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List retrieves one fixed-size page of authors plus the total count.
	List(ctx context.Context, limit, offset int) ([]Author, int64, error)

	// FindByFullName retrieves all authors matching a full name exactly.
	FindByFullName(ctx context.Context, fullName string) ([]Author, error)

	// Update replaces all fields of an existing author.
	// Errors: ErrAuthorNotFound, ErrDuplicateName.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes author by ID. Deleting a missing id is not an error.
	// Errors: ErrAuthorHasBooks if books still reference the author.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID reports whether the author exists. Always queries current
	// storage state, never the cache.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByFullName reports whether any author has this exact full name.
	ExistsByFullName(ctx context.Context, fullName string) (bool, error)
}
