package publisher

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Publisher domain.
type Service interface {
	// Create validates the input and inserts a new publisher. All field
	// violations are reported together; a duplicate name is refused.
	Create(ctx context.Context, req *PublisherInput) (*Publisher, error)

	// GetByID retrieves publisher by UUID.
	GetByID(ctx context.Context, id uuid.UUID) (*Publisher, error)

	// List returns one page of publishers (fixed page size 12, 1-indexed)
	// with current page and total page count.
	List(ctx context.Context, page int) (*PublisherListResponse, error)

	// SearchByName finds the publisher with this exact name; a miss is not
	// an error.
	SearchByName(ctx context.Context, name string) (*Publisher, error)

	// Update re-validates the full input and replaces the publisher's
	// fields.
	Update(ctx context.Context, id uuid.UUID, req *PublisherInput) (*Publisher, error)

	// Delete removes a publisher. Missing ids are reported as success;
	// publishers still referenced by books are refused.
	Delete(ctx context.Context, id uuid.UUID) error
}
