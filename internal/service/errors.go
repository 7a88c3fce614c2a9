package service

import "errors"

var (
	// ErrPageNotFound is returned when an update targets a slug with no content row.
	ErrPageNotFound = errors.New("page not found")
	// ErrDateParse is returned when a page timestamp is not RFC 3339.
	ErrDateParse = errors.New("invalid page timestamp")
	// ErrMissingProperty is returned when a property the sync needs has no value.
	ErrMissingProperty = errors.New("missing page property")
)
