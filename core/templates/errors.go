package templates

import (
	"errors"
	"fmt"
)

// Error variables define rendering failures; callers map them to stable
// error codes with errors.Is.
var (
	ErrUnknownKind  = errors.New("unsupported template type")
	ErrEmptyData    = errors.New("template data must be a non-empty mapping")
	ErrMissingField = errors.New("template data is missing a required field")
	ErrRender       = errors.New("failed to render template")
)

// MissingFieldError names the layout placeholder that had no value. With the
// built-in layouts every placeholder is covered by a default, so this can
// only occur when the substitution set is inconsistent with the layout.
type MissingFieldError struct {
	Key string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("template data is missing required field: %s", e.Key)
}

func (e MissingFieldError) Unwrap() error { return ErrMissingField }
