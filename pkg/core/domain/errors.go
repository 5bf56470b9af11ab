package domain

import "errors"

// Client errors. Handlers answer these with 400.
var (
	ErrInvalidIdentifier   = errors.New("invalid identifier: id must be a valid number")
	ErrInvalidImageFormat  = errors.New("invalid image format: expected http(s) URL or base64 image data URL")
	ErrInvalidPage         = errors.New("page must be greater than 0")
	ErrInvalidLimit        = errors.New("limit must be between 1 and 100")
	ErrMissingRangeBound   = errors.New("both minPrice and maxPrice are required")
	ErrInvalidAvailability = errors.New("isAvailable must be a boolean")
	ErrInvalidDimensions   = errors.New("dimensions must be an object with numeric width, height and depth")
	ErrRequiredField       = errors.New("required field missing")
	ErrInvalidBody         = errors.New("invalid request body")
)

// ErrNotFound is returned when a lookup by id finds no row.
var ErrNotFound = errors.New("record not found")

// IsClientError reports whether err should be answered as a bad request.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrInvalidIdentifier,
		ErrInvalidImageFormat,
		ErrInvalidPage,
		ErrInvalidLimit,
		ErrMissingRangeBound,
		ErrInvalidAvailability,
		ErrInvalidDimensions,
		ErrRequiredField,
		ErrInvalidBody,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
