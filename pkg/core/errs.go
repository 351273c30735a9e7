package core

import "errors"

var (
	ErrEmptySeries    = errors.New("empty series")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrValueNotFound  = errors.New("value not found")
)
