package repositories

import "errors"

// ErrNotFound is returned by every repository when a row does not exist.
// Services translate it into their own not-found errors.
var ErrNotFound = errors.New("record not found")
