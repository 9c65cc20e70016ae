package domain

import "errors"

// Coordinate ingestion.
var (
	ErrInvalidCoordinate    = errors.New("invalid coordinate")
	ErrMalformedCoordinate  = errors.New("malformed coordinate")
	ErrNonNumericCoordinate = errors.New("non-numeric coordinate")
	ErrTypeMismatch         = errors.New("element is not a valid coordinate")
)

// Directions fetching. Every status failure also matches ErrUnexpectedStatus.
var (
	ErrTransport         = errors.New("directions transport failure")
	ErrUnexpectedStatus  = errors.New("unexpected directions status")
	ErrHTTPStatus        = errors.New("unexpected http status")
	ErrServiceStatus     = errors.New("unexpected service status")
	ErrZeroResults       = errors.New("no results")
	ErrMissingPolyline   = errors.New("missing overview polyline")
	ErrMalformedResponse = errors.New("malformed response body")
)
