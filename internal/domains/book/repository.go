package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access operations for the Book domain.
type Repository interface {
	// Create inserts a new book.
	// Errors: ErrDuplicateTitle.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID retrieves a book with author and publisher expanded.
	// Errors: ErrBookNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*BookDetail, error)

	// ListAll retrieves every book with author and publisher expanded.
	ListAll(ctx context.Context) ([]BookDetail, error)

	// FindOne resolves a single book by any combination of exact title,
	// author full name and publisher name.
	// Errors: ErrBookNotFound.
	FindOne(ctx context.Context, filter SearchFilter) (*BookDetail, error)

	// Update replaces all fields of an existing book.
	// Errors: ErrBookNotFound, ErrDuplicateTitle.
	Update(ctx context.Context, b *Book) (*BookDetail, error)

	// Delete removes a book by ID.
	// Errors: ErrBookNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByTitle reports whether any book has this exact title.
	// Always queries current storage state, never the cache.
	ExistsByTitle(ctx context.Context, title string) (bool, error)
}
