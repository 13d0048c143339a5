package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Author domain.
type Service interface {
	// Create validates the input and inserts a new author.
	// Business rules:
	// - every field rule violation is collected and returned together
	//   (validation.Errors), never just the first
	// - full name must not collide with an existing author
	// Errors: validation.Errors, ErrDuplicateName
	Create(ctx context.Context, req *AuthorInput) (*Author, error)

	// GetByID retrieves author by UUID.
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// List returns one page of authors (fixed page size 12, pages are
	// 1-indexed) plus pagination metadata.
	List(ctx context.Context, page int) (*AuthorListResponse, error)

	// SearchByName finds authors whose full name matches exactly.
	SearchByName(ctx context.Context, name string) ([]Author, error)

	// Update re-validates the full input and replaces the author's fields.
	// The uniqueness pre-check is applied on create only; a rename onto an
	// existing name is still rejected by the store's unique constraint.
	// Errors: validation.Errors, ErrAuthorNotFound, ErrDuplicateName
	Update(ctx context.Context, id uuid.UUID, req *AuthorInput) (*Author, error)

	// Delete removes an author. Missing ids are reported as success;
	// authors still referenced by books are refused.
	// Errors: ErrAuthorHasBooks
	Delete(ctx context.Context, id uuid.UUID) error
}
