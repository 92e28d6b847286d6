package contact

import "errors"

// Sentinel errors for the four failure kinds of the address book.
var (
	ErrMissingArgument = errors.New("missing argument")
	ErrContactNotFound = errors.New("contact not found")
	ErrInvalidPhone    = errors.New("invalid phone number format")
	ErrInvalidDate     = errors.New("invalid date format")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNone            ErrorKind = ""
	KindMissingArgument ErrorKind = "missing_argument"
	KindContactNotFound ErrorKind = "contact_not_found"
	KindInvalidPhone    ErrorKind = "invalid_phone_format"
	KindInvalidDate     ErrorKind = "invalid_date_format"
	KindOther           ErrorKind = "other"
)

// KindOf classifies err. A nil error has KindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMissingArgument):
		return KindMissingArgument
	case errors.Is(err, ErrContactNotFound):
		return KindContactNotFound
	case errors.Is(err, ErrInvalidPhone):
		return KindInvalidPhone
	case errors.Is(err, ErrInvalidDate):
		return KindInvalidDate
	default:
		return KindOther
	}
}
