package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound      = errors.New("project not found")
	ErrInvalidStatus = errors.New("invalid project status")
)

// ValidationError names the required fields that were missing or empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
