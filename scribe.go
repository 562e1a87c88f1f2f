// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

import (
	"io"
	"math/big"
)

// A Scribe emits JSON tokens to a Sink, tracking the nesting of open
// contexts so that separators and closing tokens are placed correctly.
//
// Node openers (PushObject, PushArray, PushKey, PushValue) enter a new
// context. Leaf emitters (the typed value methods, Null, True, False,
// EmptyObject, EmptyArray, and Key) write a complete token. Closers (Pop,
// PopTo, Close) end contexts and write their closing tokens. The Append
// methods write raw text into an open key or string, with escapes applied.
//
// The two implementations, Strict and Permissive, produce identical output
// for valid call sequences. They differ in how invalid sequences are treated.
type Scribe interface {
	// PushObject writes "{" and enters an object context.
	PushObject() error

	// PushArray writes "[" and enters an array context.
	PushArray() error

	// PushKey writes an opening quote and enters a key context. The key text
	// is supplied with the Append methods and ended by Pop.
	PushKey() error

	// PushValue writes an opening quote and enters a string context. The
	// string text is supplied with the Append methods and ended by Pop.
	PushValue() error

	// Key writes a complete object key, followed by a colon.
	Key(name string) error

	// Value writes v as a JSON value, dispatching on its dynamic type.
	// A nil v is written as null. If v has no JSON representation, Value
	// reports an error of concrete type *TypeError.
	Value(v any) error

	String(s string) error   // write s as a JSON string
	Rune(r rune) error       // write r as a one-character JSON string
	Int(v int64) error       // write v as a JSON number
	Uint(v uint64) error     // write v as a JSON number
	Float32(v float32) error // write v as a JSON number, or null if non-finite
	Float64(v float64) error // write v as a JSON number, or null if non-finite
	Bool(v bool) error       // write true or false
	BigInt(v *big.Int) error // write v as a JSON number, or null if v == nil

	// BigFloat writes v as a JSON number, or null if v == nil or infinite.
	BigFloat(v *big.Float) error

	Null() error        // write null
	True() error        // write true
	False() error       // write false
	EmptyObject() error // write {}
	EmptyArray() error  // write []

	AppendString(s string) error // append s to the open key or string
	AppendBytes(b []byte) error  // append b to the open key or string
	AppendRune(r rune) error     // append r to the open key or string

	// Inscribe registers c to be closed when the next context is closed,
	// before its closing token is written.
	Inscribe(c io.Closer) error

	// Pop closes the innermost open context and writes its closing token.
	// Closing a key writes the closing quote and colon; the enclosing object
	// then expects the value of that key.
	Pop() error

	// PopTo closes contexts until the depth equals cursor.
	PopTo(cursor int) error

	// Close closes all open contexts.
	Close() error

	// Cursor reports the current nesting depth, for use with PopTo.
	Cursor() int
}

// resetter is a Scribe that can be rebound to a new sink.
type resetter interface {
	Scribe
	Reset(w Sink)

	// takeInscription removes and returns the pending inscription, if any.
	takeInscription() io.Closer
}

var (
	_ resetter = (*Strict)(nil)
	_ resetter = (*Permissive)(nil)
)

// writeValue writes v to s by calling the method of s matching the dynamic
// type of v.
func writeValue(s Scribe, v any) error {
	switch t := v.(type) {
	case nil:
		return s.Null()
	case string:
		return s.String(t)
	case bool:
		return s.Bool(t)
	case int:
		return s.Int(int64(t))
	case int8:
		return s.Int(int64(t))
	case int16:
		return s.Int(int64(t))
	case int32:
		return s.Int(int64(t))
	case int64:
		return s.Int(t)
	case uint:
		return s.Uint(uint64(t))
	case uint8:
		return s.Uint(uint64(t))
	case uint16:
		return s.Uint(uint64(t))
	case uint32:
		return s.Uint(uint64(t))
	case uint64:
		return s.Uint(t)
	case uintptr:
		return s.Uint(uint64(t))
	case float32:
		return s.Float32(t)
	case float64:
		return s.Float64(t)
	case *big.Int:
		return s.BigInt(t)
	case *big.Float:
		return s.BigFloat(t)
	default:
		return &TypeError{Value: v}
	}
}
