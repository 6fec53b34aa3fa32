package models

import (
	"errors"
	"fmt"
)

// ErrLocationNotFound is matched by every NotFoundError.
var ErrLocationNotFound = errors.New("location not found")

// NotFoundError reports a geocoding query that produced zero results.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Location '%s' not found", e.Query)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrLocationNotFound
}
