// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

import "io"

// An Object writes the members of a JSON object. Each method writes one
// complete member and returns the writer for the next one.
//
// As with Array, the first error is recorded and later writes in the same
// document have no effect.
type Object struct{ h *Host }

// Host reports the pooled host that owns o.
func (o *Object) Host() *Host { return o.h }

// Err reports the first error that occurred in the document, if any.
func (o *Object) Err() error { return o.h.err }

// Close closes every open structure in the document and releases its host.
// The writers of the document must not be used after Close returns.
func (o *Object) Close() error { return o.h.close() }

// Null adds a member with the given key and a null value.
func (o *Object) Null(key string) *Object {
	if h := o.h; h.key(key) {
		h.err = h.s.Null()
	}
	return o
}

// Bool adds a member with a Boolean value.
func (o *Object) Bool(key string, v bool) *Object {
	if h := o.h; h.key(key) {
		h.err = h.s.Bool(v)
	}
	return o
}

// Int adds a member with an integer value.
func (o *Object) Int(key string, v int64) *Object {
	if h := o.h; h.key(key) {
		h.err = h.s.Int(v)
	}
	return o
}

// Uint adds a member with an unsigned integer value.
func (o *Object) Uint(key string, v uint64) *Object {
	if h := o.h; h.key(key) {
		h.err = h.s.Uint(v)
	}
	return o
}

// Float adds a member with a number value. NaN and infinities are written
// as null.
func (o *Object) Float(key string, v float64) *Object {
	if h := o.h; h.key(key) {
		h.err = h.s.Float64(v)
	}
	return o
}

// String adds a member with a string value.
func (o *Object) String(key, v string) *Object {
	if h := o.h; h.key(key) {
		h.err = h.s.String(v)
	}
	return o
}

// Value adds a member whose value has any type supported by Scribe.Value.
func (o *Object) Value(key string, v any) *Object {
	if h := o.h; h.key(key) {
		h.err = h.s.Value(v)
	}
	return o
}

// Member writes key and returns a writer for its value.
func (o *Object) Member(key string) *Member {
	o.h.key(key)
	return &o.h.mem
}

// Key begins a key whose text is written incrementally. Call EndKey on the
// result to obtain a writer for its value.
func (o *Object) Key() *Text {
	h := o.h
	if h.ok() {
		h.err = h.s.PushKey()
	}
	h.anc.Push(o)
	return &h.txt
}

// Array adds a member whose value is a nested array. Call ThenObject on the
// result to return to o.
func (o *Object) Array(key string) *Array {
	h := o.h
	if h.key(key) {
		h.err = h.s.PushArray()
	}
	h.anc.Push(o)
	return &h.arr
}

// Object adds a member whose value is a nested object. Call ThenObject on
// the result to return to o.
func (o *Object) Object(key string) *Object {
	h := o.h
	if h.key(key) {
		h.err = h.s.PushObject()
	}
	h.anc.Push(o)
	return &h.obj
}

// Text adds a member whose string value is written incrementally. Call
// ThenObject on the result to return to o.
func (o *Object) Text(key string) *Text {
	h := o.h
	if h.key(key) {
		h.err = h.s.PushValue()
	}
	h.anc.Push(o)
	return &h.txt
}

// With calls f to add members to o, as described by Digress.
func (o *Object) With(f func(Scribe) error) *Object {
	if h := o.h; h.ok() {
		h.err = Digress(h.s, f)
	}
	return o
}

// Inscribe registers c to be closed when the next structure ends.
func (o *Object) Inscribe(c io.Closer) *Object {
	if h := o.h; h.ok() {
		h.err = h.s.Inscribe(c)
	}
	return o
}

// ThenArray ends o and returns the writer of its enclosing array.
func (o *Object) ThenArray() *Array { return o.h.thenArray() }

// ThenObject ends o and returns the writer of its enclosing object.
func (o *Object) ThenObject() *Object { return o.h.thenObject() }

// A Member writes the value of an object member whose key has already been
// written. Each method writes the value and returns the enclosing Object.
type Member struct{ h *Host }

// Null writes a null value.
func (m *Member) Null() *Object {
	if h := m.h; h.ok() {
		h.err = h.s.Null()
	}
	return &m.h.obj
}

// Bool writes a Boolean value.
func (m *Member) Bool(v bool) *Object {
	if h := m.h; h.ok() {
		h.err = h.s.Bool(v)
	}
	return &m.h.obj
}

// Int writes an integer value.
func (m *Member) Int(v int64) *Object {
	if h := m.h; h.ok() {
		h.err = h.s.Int(v)
	}
	return &m.h.obj
}

// Uint writes an unsigned integer value.
func (m *Member) Uint(v uint64) *Object {
	if h := m.h; h.ok() {
		h.err = h.s.Uint(v)
	}
	return &m.h.obj
}

// Float writes a number value. NaN and infinities are written as null.
func (m *Member) Float(v float64) *Object {
	if h := m.h; h.ok() {
		h.err = h.s.Float64(v)
	}
	return &m.h.obj
}

// String writes a string value.
func (m *Member) String(v string) *Object {
	if h := m.h; h.ok() {
		h.err = h.s.String(v)
	}
	return &m.h.obj
}

// Rune writes a one-character string value.
func (m *Member) Rune(r rune) *Object {
	if h := m.h; h.ok() {
		h.err = h.s.Rune(r)
	}
	return &m.h.obj
}

// Value writes a value of any type supported by Scribe.Value.
func (m *Member) Value(v any) *Object {
	if h := m.h; h.ok() {
		h.err = h.s.Value(v)
	}
	return &m.h.obj
}

// EmptyArray writes an empty array value.
func (m *Member) EmptyArray() *Object {
	if h := m.h; h.ok() {
		h.err = h.s.EmptyArray()
	}
	return &m.h.obj
}

// EmptyObject writes an empty object value.
func (m *Member) EmptyObject() *Object {
	if h := m.h; h.ok() {
		h.err = h.s.EmptyObject()
	}
	return &m.h.obj
}

// Array begins a nested array value. Call ThenObject on the result to return
// to the enclosing object.
func (m *Member) Array() *Array {
	h := m.h
	if h.ok() {
		h.err = h.s.PushArray()
	}
	h.anc.Push(&h.obj)
	return &h.arr
}

// Object begins a nested object value. Call ThenObject on the result to
// return to the enclosing object.
func (m *Member) Object() *Object {
	h := m.h
	if h.ok() {
		h.err = h.s.PushObject()
	}
	h.anc.Push(&h.obj)
	return &h.obj
}

// Text begins a string value written incrementally. Call ThenObject on the
// result to return to the enclosing object.
func (m *Member) Text() *Text {
	h := m.h
	if h.ok() {
		h.err = h.s.PushValue()
	}
	h.anc.Push(&h.obj)
	return &h.txt
}
