package author

import "errors"

var (
	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateName  = errors.New("author name already exists")
	ErrAuthorHasBooks = errors.New("cannot delete author with registered books")

	// Database Errors
	ErrDatabaseQuery = errors.New("database query error")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrAuthorNotFound:
		return "AUTHOR_NOT_FOUND"
	case ErrDuplicateName:
		return "DUPLICATE_NAME"
	case ErrAuthorHasBooks:
		return "AUTHOR_HAS_BOOKS"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code.
// Duplicate names resolve to 400 rather than 409: name collisions are part
// of the field-validation contract for author creation.
func ToHTTPStatus(err error) int {
	switch err {
	case ErrAuthorNotFound:
		return 404
	case ErrDuplicateName:
		return 400
	case ErrAuthorHasBooks:
		return 409
	default:
		return 500
	}
}
