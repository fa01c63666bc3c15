package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrMissingContentType   = errors.New("missing content type")

	// ErrBinderNotApplicable is returned when a binder has nothing to read from the request,
	// e.g. the form binder on a GET request. Callers may skip to the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable to request")
)
