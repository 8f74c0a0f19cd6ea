package services

import "errors"

// Domain error sentinels. Handlers translate these into HTTP statuses;
// anything else coming out of a service is treated as an unexpected
// persistence failure and surfaces as a generic 500.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)
