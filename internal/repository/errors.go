package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist. Handlers map
// it to 404; pgx.ErrNoRows never leaves this package.
var ErrNotFound = errors.New("not found")
