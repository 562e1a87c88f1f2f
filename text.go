// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

// A Text writes the contents of an open key or string value. Text written to
// it is escaped, so it may be used as the target of fmt.Fprintf or io.Copy.
type Text struct{ h *Host }

// Err reports the first error that occurred in the document, if any.
func (t *Text) Err() error { return t.h.err }

// Close closes every open structure in the document and releases its host.
// The writers of the document must not be used after Close returns.
func (t *Text) Close() error { return t.h.close() }

// Write satisfies io.Writer. It reports the error recorded for the document,
// if there is one.
func (t *Text) Write(data []byte) (int, error) {
	h := t.h
	if h.ok() {
		h.err = h.s.AppendBytes(data)
	}
	if h.err != nil {
		return 0, h.err
	}
	return len(data), nil
}

// WriteString satisfies io.StringWriter.
func (t *Text) WriteString(s string) (int, error) {
	h := t.h
	if h.ok() {
		h.err = h.s.AppendString(s)
	}
	if h.err != nil {
		return 0, h.err
	}
	return len(s), nil
}

// String appends s to the text.
func (t *Text) String(s string) *Text {
	if h := t.h; h.ok() {
		h.err = h.s.AppendString(s)
	}
	return t
}

// Rune appends r to the text.
func (t *Text) Rune(r rune) *Text {
	if h := t.h; h.ok() {
		h.err = h.s.AppendRune(r)
	}
	return t
}

// EndKey ends a key begun by Object.Key and returns a writer for its value.
func (t *Text) EndKey() *Member {
	h := t.h
	_, ok := h.up().(*Object)
	h.upTo("an object", ok)
	return &h.mem
}

// ThenArray ends a string value and returns the writer of its enclosing
// array.
func (t *Text) ThenArray() *Array { return t.h.thenArray() }

// ThenObject ends a string value and returns the writer of its enclosing
// object.
func (t *Text) ThenObject() *Object { return t.h.thenObject() }
