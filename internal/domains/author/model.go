package author

import (
	"time"

	"github.com/google/uuid"
)

// Author represents the core Author entity.
// This is the domain model, independent of database/API concerns.
type Author struct {
	ID uuid.UUID `json:"id" db:"id"`

	FullName    string    `json:"fullName" db:"full_name"`        // Required, unique across authors
	BirthDate   time.Time `json:"birthDate" db:"birth_date"`      // Date of birth
	CityOfBirth string    `json:"cityOfBirth" db:"city_of_birth"` // Required
	Email       string    `json:"email" db:"email"`               // Required, email format

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
