package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNoSuchVariant  = errors.New("no such variant")
	ErrNotImplemented = errors.New("not implemented")
	ErrUnknownFormat  = errors.New("unknown output format")
)

// ParseError reports a token that is not one of the canonical strings of an enum type.
type ParseError struct {
	Type  string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no such variant for %s: %q", e.Type, e.Value)
}

func (e *ParseError) Unwrap() error { return ErrNoSuchVariant }

// UnsupportedKindError is returned when a writer has no encoding for a record kind.
// It is distinct from I/O failures and from data errors.
type UnsupportedKindError struct {
	Kind   Kind
	Format Format
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s writer for %s records: not implemented", e.Format, e.Kind)
}

func (e *UnsupportedKindError) Unwrap() error { return ErrNotImplemented }
