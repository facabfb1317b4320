package repository

import "errors"

// ErrNotFound is returned by every repository when the requested id (or
// username) does not exist. Deletes and updates on a missing id surface it
// too, rather than silently succeeding.
var ErrNotFound = errors.New("not found")
