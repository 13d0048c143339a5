package publisher

import (
	"time"

	"github.com/google/uuid"
)

// Publisher represents the core Publisher entity.
type Publisher struct {
	ID uuid.UUID `json:"id" db:"id"`

	Name                  string `json:"name" db:"name"` // Required, unique across publishers
	CorrespondenceAddress string `json:"correspondenceAddress" db:"correspondence_address"`
	Phone                 string `json:"phone" db:"phone"`
	Email                 string `json:"email" db:"email"`

	// MaxBooksRegistered of -1 means unlimited. The limit is recorded but
	// not enforced against actual book counts.
	MaxBooksRegistered int `json:"maxBooksRegistered" db:"max_books_registered"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
