package models

import (
	"errors"
	"fmt"
)

var (
	ErrNilArgument       = errors.New("nil argument")
	ErrOutOfBounds       = errors.New("coordinate out of bounds")
	ErrSectorOccupied    = errors.New("sector occupied")
	ErrTooMany           = errors.New("more than 9 of a kind in one quadrant")
	ErrMalformedLine     = errors.New("malformed save line")
	ErrMissingEnterprise = errors.New("save has no [e] line")
	ErrMissingQuadrants  = errors.New("save has no [q] lines")
	ErrInvalidQuadrant   = errors.New("invalid quadrant")
)

// ParseError points at the save-file line that could not be decoded.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
