package book

import "errors"

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrDuplicateTitle = errors.New("book title already exists")
)

// ReferenceError reports which of a book's references failed to resolve.
// Author and publisher are checked independently so both can be reported in
// one response. It is a different failure category than field validation:
// the request was well-formed, the records are missing (404, not 400).
type ReferenceError struct {
	AuthorMissing    bool
	PublisherMissing bool
}

func (e *ReferenceError) Error() string {
	switch {
	case e.AuthorMissing && e.PublisherMissing:
		return "the author and publisher do not exist"
	case e.AuthorMissing:
		return "the author does not exist"
	case e.PublisherMissing:
		return "the publisher does not exist"
	default:
		return "reference error"
	}
}

// MissingRefs lists the unresolved references for the response details.
func (e *ReferenceError) MissingRefs() []string {
	var refs []string
	if e.AuthorMissing {
		refs = append(refs, "author")
	}
	if e.PublisherMissing {
		refs = append(refs, "publisher")
	}
	return refs
}

func ToErrorCode(err error) string {
	switch err {
	case ErrBookNotFound:
		return "BOOK_NOT_FOUND"
	case ErrDuplicateTitle:
		return "DUPLICATE_TITLE"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch err {
	case ErrBookNotFound:
		return 404
	case ErrDuplicateTitle:
		return 400
	default:
		return 500
	}
}
