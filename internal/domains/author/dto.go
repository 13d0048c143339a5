package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// AuthorInput is the request body for both POST /authors and PUT /authors/:id.
// Create and update share one schema on purpose: the legacy API accepted
// differently named fields on update, which only produced drift between the
// two code paths.
type AuthorInput struct {
	FullName    string `json:"fullName"`
	BirthDate   string `json:"birthDate"` // ISO date, e.g. "1970-01-01"
	CityOfBirth string `json:"cityOfBirth"`
	Email       string `json:"email"`
}

// Validate runs the per-field rule chains. Rules for a single field stop at
// the first failure; failures for different fields are all collected, so the
// caller can report every invalid field at once.
func (r AuthorInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("Full name is required"),
		),
		validation.Field(&r.BirthDate,
			validation.Required.Error("Birth date is required"),
			validation.Date("2006-01-02").Error("Birth date must be a valid date (YYYY-MM-DD)"),
		),
		validation.Field(&r.CityOfBirth,
			validation.Required.Error("City of birth is required"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Email is invalid"),
		),
	)
}

// AuthorListResponse - paginated list for GET /authors
type AuthorListResponse struct {
	Authors     []Author `json:"authors"`
	CurrentPage int      `json:"currentPage"`
	TotalPages  int      `json:"totalPages"`
}

// SearchAuthorsResponse - GET /authors/search?name=
type SearchAuthorsResponse struct {
	Authors []Author `json:"authors"`
}
