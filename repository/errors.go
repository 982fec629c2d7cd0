package repository

import "errors"

// ErrNotFound is returned when a lookup by identifier matches no document.
var ErrNotFound = errors.New("document not found")
