// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

import (
	"errors"
	"fmt"
)

var (
	// ErrUnderflow is reported by a Permissive scribe when Pop is called with
	// no open context.
	ErrUnderflow = errors.New("jscribe: pop with no open context")

	// ErrOutOfBounds is reported by the view passed to a digression when the
	// callback tries to close a context it did not open.
	ErrOutOfBounds = errors.New("jscribe: close beyond digression cursor")
)

// StateError is the concrete type of errors reported by a Strict scribe when
// an operation is not valid in the current context. A StateError always
// indicates a bug in the caller; nothing is written when one is reported.
type StateError struct {
	Op      string  // the operation attempted
	Context Context // the innermost open context when Op was attempted
	Reason  string  // a human-readable description of the violation
}

// Error satisfies the error interface.
func (e *StateError) Error() string {
	return fmt.Sprintf("jscribe: %s in %v: %s", e.Op, e.Context, e.Reason)
}

// TypeError is the concrete type of errors reported when Value is called
// with an argument whose type has no JSON representation.
type TypeError struct {
	Value any
}

// Error satisfies the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("jscribe: unsupported value type %T", e.Value)
}
