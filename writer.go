// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

import (
	"errors"
	"fmt"
	"io"
)

var (
	errNoParent = errors.New("jscribe: no enclosing structure")
	errClosed   = errors.New("jscribe: document is already closed")
)

func (h *Host) ok() bool { return h.err == nil }

// key writes a complete key and reports whether the document is still ok.
func (h *Host) key(name string) bool {
	if h.err == nil {
		h.err = h.s.Key(name)
	}
	return h.err == nil
}

// up closes the innermost context and returns the writer recorded for it.
func (h *Host) up() any {
	if h.err == nil {
		h.err = h.s.Pop()
	}
	p, ok := h.anc.Pop()
	if !ok && h.err == nil {
		h.err = errNoParent
	}
	return p
}

func (h *Host) upTo(want string, ok bool) {
	if !ok && h.err == nil {
		h.err = fmt.Errorf("jscribe: enclosing structure is not %s", want)
	}
}

func (h *Host) thenArray() *Array {
	_, ok := h.up().(*Array)
	h.upTo("an array", ok)
	return &h.arr
}

func (h *Host) thenObject() *Object {
	_, ok := h.up().(*Object)
	h.upTo("an object", ok)
	return &h.obj
}

// close ends the document and returns h to its pool. An inscription still
// pending after the document is closed, as when an earlier write failed, is
// closed here.
func (h *Host) close() error {
	if h.released {
		return errClosed
	}
	err := h.err
	if err == nil {
		err = h.s.Close()
	}
	if c := h.s.takeInscription(); c != nil {
		err = errors.Join(err, c.Close())
	}
	h.pool.put(h)
	return err
}

// An Array writes the elements of a JSON array. Each method writes one
// element and returns the writer for the next one.
//
// If a write fails, the error is recorded and later writes in the same
// document have no effect. Use Err or Close to check for an error.
type Array struct{ h *Host }

// Host reports the pooled host that owns a.
func (a *Array) Host() *Host { return a.h }

// Err reports the first error that occurred in the document, if any.
func (a *Array) Err() error { return a.h.err }

// Close closes every open structure in the document and releases its host.
// The writers of the document must not be used after Close returns.
func (a *Array) Close() error { return a.h.close() }

// Null adds a null element.
func (a *Array) Null() *Array {
	if h := a.h; h.ok() {
		h.err = h.s.Null()
	}
	return a
}

// Bool adds a Boolean element.
func (a *Array) Bool(v bool) *Array {
	if h := a.h; h.ok() {
		h.err = h.s.Bool(v)
	}
	return a
}

// Int adds an integer element.
func (a *Array) Int(v int64) *Array {
	if h := a.h; h.ok() {
		h.err = h.s.Int(v)
	}
	return a
}

// Uint adds an unsigned integer element.
func (a *Array) Uint(v uint64) *Array {
	if h := a.h; h.ok() {
		h.err = h.s.Uint(v)
	}
	return a
}

// Float adds a number element. NaN and infinities are written as null.
func (a *Array) Float(v float64) *Array {
	if h := a.h; h.ok() {
		h.err = h.s.Float64(v)
	}
	return a
}

// String adds a string element.
func (a *Array) String(s string) *Array {
	if h := a.h; h.ok() {
		h.err = h.s.String(s)
	}
	return a
}

// Rune adds a one-character string element.
func (a *Array) Rune(r rune) *Array {
	if h := a.h; h.ok() {
		h.err = h.s.Rune(r)
	}
	return a
}

// Value adds an element of any type supported by Scribe.Value.
func (a *Array) Value(v any) *Array {
	if h := a.h; h.ok() {
		h.err = h.s.Value(v)
	}
	return a
}

// EmptyArray adds an empty array element.
func (a *Array) EmptyArray() *Array {
	if h := a.h; h.ok() {
		h.err = h.s.EmptyArray()
	}
	return a
}

// EmptyObject adds an empty object element.
func (a *Array) EmptyObject() *Array {
	if h := a.h; h.ok() {
		h.err = h.s.EmptyObject()
	}
	return a
}

// Array begins a nested array element. Call ThenArray on the result to
// return to a.
func (a *Array) Array() *Array {
	h := a.h
	if h.ok() {
		h.err = h.s.PushArray()
	}
	h.anc.Push(a)
	return &h.arr
}

// Object begins a nested object element. Call ThenArray on the result to
// return to a.
func (a *Array) Object() *Object {
	h := a.h
	if h.ok() {
		h.err = h.s.PushObject()
	}
	h.anc.Push(a)
	return &h.obj
}

// Text begins a string element whose contents are written incrementally.
// Call ThenArray on the result to return to a.
func (a *Array) Text() *Text {
	h := a.h
	if h.ok() {
		h.err = h.s.PushValue()
	}
	h.anc.Push(a)
	return &h.txt
}

// With calls f to add elements to a, as described by Digress.
func (a *Array) With(f func(Scribe) error) *Array {
	if h := a.h; h.ok() {
		h.err = Digress(h.s, f)
	}
	return a
}

// Inscribe registers c to be closed when the next structure ends.
func (a *Array) Inscribe(c io.Closer) *Array {
	if h := a.h; h.ok() {
		h.err = h.s.Inscribe(c)
	}
	return a
}

// ThenArray ends a and returns the writer of its enclosing array.
func (a *Array) ThenArray() *Array { return a.h.thenArray() }

// ThenObject ends a and returns the writer of its enclosing object.
func (a *Array) ThenObject() *Object { return a.h.thenObject() }
