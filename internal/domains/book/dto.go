package book

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// intBetween checks a dereferenced *int against an inclusive range. The
// builtin threshold rules treat a zero value as empty and skip it, which
// would wave through year 0 or a zero page count; this rule does not skip.
// A nil pointer is left for NotNil to report.
func intBetween(min, max int, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		v, _ := value.(*int)
		if v == nil {
			return nil
		}
		if *v < min || *v > max {
			return errors.New(msg)
		}
		return nil
	}
}

// intAtLeast is intBetween with no upper bound.
func intAtLeast(min int, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		v, _ := value.(*int)
		if v == nil {
			return nil
		}
		if *v < min {
			return errors.New(msg)
		}
		return nil
	}
}

// BookInput is the request body for both POST /books and PUT /books/:id.
// The legacy API used numPages/authorId/publisherId on update only; create
// and update now share one schema.
type BookInput struct {
	Title           string `json:"title"`
	Year            *int   `json:"year"`
	Genre           string `json:"genre"`
	PageCount       *int   `json:"pageCount"`
	Author          string `json:"author"`    // Author UUID
	Publisher       string `json:"publisher"` // Publisher UUID
	BookCover       string `json:"bookCover"`
	BookDescription string `json:"bookDescription"`
}

// Validate runs the per-field rule chains: short-circuit within a field,
// accumulation across fields. Whether the referenced author and publisher
// actually exist is a separate, later check — here the identifiers only
// have to be syntactically valid.
func (r BookInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("Title is required"),
		),
		validation.Field(&r.Year,
			validation.NotNil.Error("Year is required"),
			validation.By(intBetween(1000, 9999, "Year must be a 4-digit number between 1000 and 9999")),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("Genre is required"),
		),
		validation.Field(&r.PageCount,
			validation.NotNil.Error("Number of pages is required"),
			validation.By(intAtLeast(1, "Number of pages must be a positive integer")),
		),
		validation.Field(&r.Author,
			validation.Required.Error("Author ID is required"),
			is.UUID.Error("Invalid author ID"),
		),
		validation.Field(&r.Publisher,
			validation.Required.Error("Publisher ID is required"),
			is.UUID.Error("Invalid publisher ID"),
		),
	)
}
