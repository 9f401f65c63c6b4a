package weather

import "errors"

var (
	// ErrNetwork covers transport failures and any non-success upstream status
	// that is not an unresolvable location.
	ErrNetwork = errors.New("network error")

	// ErrNotFound is returned when the upstream cannot resolve the location query.
	ErrNotFound = errors.New("location not found")

	// ErrMalformedResponse is returned when the payload does not match the data model.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrEmptyQuery is a caller error: location queries must be non-empty.
	ErrEmptyQuery = errors.New("location query is empty")

	// ErrMalformedTimestamp is returned for an hourly entry without a time part.
	ErrMalformedTimestamp = errors.New("malformed hourly timestamp")
)
