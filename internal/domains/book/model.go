package book

import (
	"time"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/author"
	"library-catalog-backend/internal/domains/publisher"
)

// Book represents the core Book entity. Author and publisher are stored as
// references; both must resolve to an existing record at the moment of
// create or update.
type Book struct {
	ID uuid.UUID `json:"id" db:"id"`

	Title     string `json:"title" db:"title"` // Required, unique across books
	Year      int    `json:"year" db:"year"`   // Four digit year, 1000-9999
	Genre     string `json:"genre" db:"genre"`
	PageCount int    `json:"pageCount" db:"page_count"` // Positive integer

	AuthorID    uuid.UUID `json:"author" db:"author_id"`
	PublisherID uuid.UUID `json:"publisher" db:"publisher_id"`

	BookCover       string `json:"bookCover" db:"book_cover"`
	BookDescription string `json:"bookDescription" db:"book_description"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// BookDetail is a Book with its author and publisher records expanded,
// as returned by the list and search endpoints.
type BookDetail struct {
	ID uuid.UUID `json:"id"`

	Title     string `json:"title"`
	Year      int    `json:"year"`
	Genre     string `json:"genre"`
	PageCount int    `json:"pageCount"`

	Author    author.Author       `json:"author"`
	Publisher publisher.Publisher `json:"publisher"`

	BookCover       string `json:"bookCover"`
	BookDescription string `json:"bookDescription"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SearchFilter narrows the single-book lookup. At least one field must be
// set; all set fields must match.
type SearchFilter struct {
	Title         string
	AuthorName    string
	PublisherName string
}

// Empty reports whether no search option was provided.
func (f SearchFilter) Empty() bool {
	return f.Title == "" && f.AuthorName == "" && f.PublisherName == ""
}
