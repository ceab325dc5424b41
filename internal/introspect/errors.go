package introspect

import "errors"

var (
	ErrUnknownView   = errors.New("unknown view")
	ErrUnknownColumn = errors.New("unknown column")
)
