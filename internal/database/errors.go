package database

import "errors"

// ErrKeyNotFound is returned when a storage key has never been set or was
// removed.
var ErrKeyNotFound = errors.New("key not found")
