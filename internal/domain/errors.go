package domain

import "errors"

// ErrNotFound is returned when a lookup by ID, or a modify targeting an ID,
// matches no row.
// Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidRequest is returned when a required request field is absent or the
// request cannot be decoded.
// Handlers map this to HTTP 400.
var ErrInvalidRequest = errors.New("invalid request")
