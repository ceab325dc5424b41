package catalog

import "errors"

var (
	// ErrRequiredField is returned when a row is built without a value that
	// the view documents as mandatory.
	ErrRequiredField = errors.New("required field is empty")
	ErrUnknownKind   = errors.New("unknown view kind")
)
