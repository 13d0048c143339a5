package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Book domain.
//
// Ordering contract for Create and Update: field validation runs to
// completion and is checked before referential validation is attempted, so
// a malformed year is reported as a field error even when the author id
// also happens to point nowhere. Field errors and reference errors are
// never merged into one report.
type Service interface {
	// Create validates the input, confirms the title is unused and the
	// referenced author and publisher exist, then inserts the book.
	// Errors: validation.Errors, ErrDuplicateTitle, *ReferenceError
	Create(ctx context.Context, req *BookInput) (*BookDetail, error)

	// GetByID retrieves a book with author and publisher expanded.
	GetByID(ctx context.Context, id uuid.UUID) (*BookDetail, error)

	// ListAll returns every book with author and publisher expanded.
	ListAll(ctx context.Context) ([]BookDetail, error)

	// Search resolves a single book by title, author name and/or publisher
	// name. The filter must not be empty.
	// Errors: ErrBookNotFound
	Search(ctx context.Context, filter SearchFilter) (*BookDetail, error)

	// Update re-validates the full input, re-checks the references and
	// replaces the book's fields.
	// Errors: validation.Errors, *ReferenceError, ErrBookNotFound
	Update(ctx context.Context, id uuid.UUID, req *BookInput) (*BookDetail, error)

	// Delete removes a book.
	// Errors: ErrBookNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
