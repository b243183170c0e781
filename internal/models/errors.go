package models

import "errors"

// ErrInvalidStatus is returned when a status string matches no known value.
var ErrInvalidStatus = errors.New("invalid status")
