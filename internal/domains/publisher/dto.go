package publisher

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// positiveInt checks a dereferenced *int is at least 1. The builtin Min
// rule treats a zero value as empty and skips it, which would silently
// persist a zero limit. A nil pointer is left for NotNil to report.
func positiveInt(msg string) validation.RuleFunc {
	return func(value interface{}) error {
		v, _ := value.(*int)
		if v == nil {
			return nil
		}
		if *v < 1 {
			return errors.New(msg)
		}
		return nil
	}
}

// PublisherInput is the request body for POST /publisher and PUT /publisher/:id.
type PublisherInput struct {
	Name                  string `json:"name"`
	CorrespondenceAddress string `json:"correspondenceAddress"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	MaxBooksRegistered    *int   `json:"maxBooksRegistered"`
}

func (r PublisherInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required"),
		),
		validation.Field(&r.CorrespondenceAddress,
			validation.Required.Error("The correspondence address is mandatory"),
		),
		validation.Field(&r.Phone,
			validation.Required.Error("The phone number is required"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Email is invalid"),
		),
		validation.Field(&r.MaxBooksRegistered,
			validation.NotNil.Error("The maximum number of books registered is required"),
			validation.By(positiveInt("Maximum books registered must be a positive integer")),
		),
	)
}

// PublisherListResponse - GET /publisher
type PublisherListResponse struct {
	Publishers  []Publisher `json:"publishers"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
}

// SearchPublisherResponse - GET /publisher/search?name=
// Publisher is null when no record matches; the request itself still
// succeeds.
type SearchPublisherResponse struct {
	Publisher *Publisher `json:"publisher"`
}
