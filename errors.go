package babel

import "errors"

var (
	ErrEmptyLocale        = errors.New("babel: locale cannot be empty")
	ErrInvalidLocale      = errors.New("babel: invalid locale identifier")
	ErrInvalidTimezone    = errors.New("babel: invalid timezone identifier")
	ErrInvalidCurrency    = errors.New("babel: invalid currency code")
	ErrInvalidFormatsFile = errors.New("babel: invalid formats file")
	ErrParsingConfig      = errors.New("babel: failed to parse environment config")
)
