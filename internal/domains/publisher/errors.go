package publisher

import "errors"

var (
	ErrPublisherNotFound = errors.New("publisher not found")
	ErrDuplicateName     = errors.New("publisher name already exists")
	ErrPublisherHasBooks = errors.New("cannot delete publisher with registered books")
)

func ToErrorCode(err error) string {
	switch err {
	case ErrPublisherNotFound:
		return "PUBLISHER_NOT_FOUND"
	case ErrDuplicateName:
		return "DUPLICATE_NAME"
	case ErrPublisherHasBooks:
		return "PUBLISHER_HAS_BOOKS"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch err {
	case ErrPublisherNotFound:
		return 404
	case ErrDuplicateName:
		return 400
	case ErrPublisherHasBooks:
		return 409
	default:
		return 500
	}
}
