package store

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("not found")

// ValidationError lists the booking fields that were missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
