package repository

import "errors"

// ErrNotFound is returned when a referenced record does not exist. Callers
// match it with errors.Is; any other repository error is a storage failure.
var ErrNotFound = errors.New("record not found")
