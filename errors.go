package currency

import "errors"

type ErrorKind string

const (
	KindMissingParameter ErrorKind = "MISSING_PARAMETER"
	KindInvalidAmount    ErrorKind = "INVALID_AMOUNT"
	KindInvalidCurrency  ErrorKind = "INVALID_CURRENCY"
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindInternal         ErrorKind = "INTERNAL"
)

var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCurrency  = errors.New("invalid currency code")
	ErrNotFound         = errors.New("not found")
)

// KindOf classifies err. A nil error has an empty kind; anything outside the
// resolver taxonomy is KindInternal.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingParameter):
		return KindMissingParameter
	case errors.Is(err, ErrInvalidAmount):
		return KindInvalidAmount
	case errors.Is(err, ErrInvalidCurrency):
		return KindInvalidCurrency
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	}

	return KindInternal
}
