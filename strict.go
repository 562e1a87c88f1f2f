// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

import (
	"fmt"
	"io"
	"math/big"
	"reflect"

	"github.com/creachadair/mds/stack"
)

// Strict is a Scribe that checks every operation against the innermost open
// context. An operation that would produce invalid JSON is rejected with a
// *StateError and writes nothing.
//
// When a key is closed, the innermost context becomes InMember. The next
// value, node, or empty literal written resolves it; popping it directly is
// an error. At the top level, Strict accepts exactly one value.
type Strict struct {
	a     appender
	stk   stack.Stack[Context]
	comma bool
	ins   io.Closer
	done  bool // a complete top-level value has been written
}

// NewStrict constructs a Strict scribe that writes to w.
func NewStrict(w Sink) *Strict { return &Strict{a: appender{w: w}} }

// Reset discards the state of s and rebinds it to write to w.
func (s *Strict) Reset(w Sink) {
	s.a.w = w
	s.stk.Clear()
	s.comma = false
	s.ins = nil
	s.done = false
}

// Depth reports the number of open contexts. It is equivalent to Cursor.
func (s *Strict) Depth() int { return s.stk.Len() }

// Cursor implements a method of the Scribe interface.
func (s *Strict) Cursor() int { return s.stk.Len() }

func (s *Strict) top() Context {
	top, _ := s.stk.Peek(0)
	return top
}

func (s *Strict) fail(op, msg string, args ...any) error {
	return &StateError{Op: op, Context: s.top(), Reason: fmt.Sprintf(msg, args...)}
}

// checkValue reports whether a value may be written in the current context.
func (s *Strict) checkValue(op string) error {
	switch top := s.top(); top {
	case TopLevel:
		if s.done {
			return s.fail(op, "document is already complete")
		}
	case InArray, InMember:
		// OK
	case InObject:
		return s.fail(op, "object member requires a key")
	default:
		return s.fail(op, "cannot write a value inside a %v; use Append", top)
	}
	return nil
}

// begin prepares to write a value, after checkValue has succeeded. It writes
// a separator if one is needed, or resolves a pending member value.
func (s *Strict) begin() error {
	if s.top() == InMember {
		s.stk.Pop()
		return nil
	}
	if s.comma {
		return s.a.byte(',')
	}
	return nil
}

// leaf records that a complete value was written, if err == nil.
func (s *Strict) leaf(err error) error {
	if err == nil {
		s.comma = true
		s.done = s.stk.IsEmpty()
	}
	return err
}

func (s *Strict) openValue(op string, c Context, tok byte) error {
	if err := s.checkValue(op); err != nil {
		return err
	}
	if err := s.begin(); err != nil {
		return err
	}
	if err := s.a.byte(tok); err != nil {
		return err
	}
	s.stk.Push(c)
	s.comma = false
	return nil
}

// PushObject implements a method of the Scribe interface.
func (s *Strict) PushObject() error { return s.openValue("PushObject", InObject, '{') }

// PushArray implements a method of the Scribe interface.
func (s *Strict) PushArray() error { return s.openValue("PushArray", InArray, '[') }

// PushValue implements a method of the Scribe interface.
func (s *Strict) PushValue() error { return s.openValue("PushValue", InString, '"') }

func (s *Strict) beginKey(op string) error {
	if top := s.top(); top != InObject {
		return s.fail(op, "a key is only valid in an object")
	}
	if s.comma {
		return s.a.byte(',')
	}
	return nil
}

// PushKey implements a method of the Scribe interface.
func (s *Strict) PushKey() error {
	if err := s.beginKey("PushKey"); err != nil {
		return err
	}
	if err := s.a.byte('"'); err != nil {
		return err
	}
	s.stk.Push(InKey)
	s.comma = false
	return nil
}

// Key implements a method of the Scribe interface.
func (s *Strict) Key(name string) error {
	if err := s.beginKey("Key"); err != nil {
		return err
	}
	if err := s.a.key(name); err != nil {
		return err
	}
	s.stk.Push(InMember)
	s.comma = false
	return nil
}

// Value implements a method of the Scribe interface.
func (s *Strict) Value(v any) error { return writeValue(s, v) }

// scalar checks and prepares the context for a leaf value named by op.
func (s *Strict) scalar(op string) error {
	if err := s.checkValue(op); err != nil {
		return err
	}
	return s.begin()
}

// String implements a method of the Scribe interface.
func (s *Strict) String(v string) error {
	if err := s.scalar("String"); err != nil {
		return err
	}
	return s.leaf(s.a.quoted(v))
}

// Rune implements a method of the Scribe interface.
func (s *Strict) Rune(r rune) error {
	if err := s.scalar("Rune"); err != nil {
		return err
	}
	if err := s.a.byte('"'); err != nil {
		return err
	}
	if err := s.a.textRune(r); err != nil {
		return err
	}
	return s.leaf(s.a.byte('"'))
}

// Int implements a method of the Scribe interface.
func (s *Strict) Int(v int64) error {
	if err := s.scalar("Int"); err != nil {
		return err
	}
	return s.leaf(s.a.int(v))
}

// Uint implements a method of the Scribe interface.
func (s *Strict) Uint(v uint64) error {
	if err := s.scalar("Uint"); err != nil {
		return err
	}
	return s.leaf(s.a.uint(v))
}

// Float32 implements a method of the Scribe interface.
func (s *Strict) Float32(v float32) error {
	if err := s.scalar("Float32"); err != nil {
		return err
	}
	return s.leaf(s.a.float(float64(v), 32))
}

// Float64 implements a method of the Scribe interface.
func (s *Strict) Float64(v float64) error {
	if err := s.scalar("Float64"); err != nil {
		return err
	}
	return s.leaf(s.a.float(v, 64))
}

// Bool implements a method of the Scribe interface.
func (s *Strict) Bool(v bool) error {
	if err := s.scalar("Bool"); err != nil {
		return err
	}
	return s.leaf(s.a.bool(v))
}

// BigInt implements a method of the Scribe interface.
func (s *Strict) BigInt(v *big.Int) error {
	if err := s.scalar("BigInt"); err != nil {
		return err
	}
	return s.leaf(s.a.bigInt(v))
}

// BigFloat implements a method of the Scribe interface.
func (s *Strict) BigFloat(v *big.Float) error {
	if err := s.scalar("BigFloat"); err != nil {
		return err
	}
	return s.leaf(s.a.bigFloat(v))
}

func (s *Strict) literal(op, text string) error {
	if err := s.scalar(op); err != nil {
		return err
	}
	return s.leaf(s.a.literal(text))
}

// Null implements a method of the Scribe interface.
func (s *Strict) Null() error { return s.literal("Null", "null") }

// True implements a method of the Scribe interface.
func (s *Strict) True() error { return s.literal("True", "true") }

// False implements a method of the Scribe interface.
func (s *Strict) False() error { return s.literal("False", "false") }

// EmptyObject implements a method of the Scribe interface.
func (s *Strict) EmptyObject() error { return s.literal("EmptyObject", "{}") }

// EmptyArray implements a method of the Scribe interface.
func (s *Strict) EmptyArray() error { return s.literal("EmptyArray", "[]") }

func (s *Strict) checkAppend(op string) error {
	if top := s.top(); top != InKey && top != InString {
		return s.fail(op, "text may only be appended to a key or string")
	}
	return nil
}

// AppendString implements a method of the Scribe interface.
func (s *Strict) AppendString(v string) error {
	if err := s.checkAppend("AppendString"); err != nil {
		return err
	}
	return s.a.text(v)
}

// AppendBytes implements a method of the Scribe interface.
func (s *Strict) AppendBytes(b []byte) error {
	if err := s.checkAppend("AppendBytes"); err != nil {
		return err
	}
	return s.a.textBytes(b)
}

// AppendRune implements a method of the Scribe interface.
func (s *Strict) AppendRune(r rune) error {
	if err := s.checkAppend("AppendRune"); err != nil {
		return err
	}
	return s.a.textRune(r)
}

// Inscribe implements a method of the Scribe interface. Registering the same
// closer again is a no-op; registering a different closer while one is
// pending is an error. Closers whose dynamic type is not comparable are
// always treated as different.
func (s *Strict) Inscribe(c io.Closer) error {
	switch {
	case c == nil:
		return s.fail("Inscribe", "nil closer")
	case s.stk.IsEmpty():
		return s.fail("Inscribe", "no open context")
	case s.ins == nil:
		s.ins = c
	case !sameCloser(s.ins, c):
		return s.fail("Inscribe", "another inscription is already pending")
	}
	return nil
}

func sameCloser(a, b io.Closer) bool {
	t := reflect.TypeOf(a)
	return t == reflect.TypeOf(b) && t.Comparable() && a == b
}

// takeInscription removes and returns the pending inscription, if any.
func (s *Strict) takeInscription() io.Closer {
	c := s.ins
	s.ins = nil
	return c
}

// pendingMember reports whether a key has been written whose value has not.
func (s *Strict) pendingMember() bool { return s.top() == InMember }

// Pop implements a method of the Scribe interface.
func (s *Strict) Pop() error {
	top, ok := s.stk.Peek(0)
	if !ok {
		return s.fail("Pop", "no open context")
	} else if top == InMember {
		return s.fail("Pop", "key has no value")
	}
	if c := s.ins; c != nil {
		s.ins = nil
		if err := c.Close(); err != nil {
			return err
		}
	}
	s.stk.Pop()
	switch top {
	case InObject:
		return s.leaf(s.a.byte('}'))
	case InArray:
		return s.leaf(s.a.byte(']'))
	case InKey:
		if err := s.a.literal(`":`); err != nil {
			return err
		}
		s.stk.Push(InMember)
		return nil
	default:
		return s.leaf(s.a.byte('"'))
	}
}

// PopTo implements a method of the Scribe interface. It reports an error if
// cursor is negative or greater than the current depth.
func (s *Strict) PopTo(cursor int) error {
	if cursor < 0 {
		return s.fail("PopTo", "negative cursor %d", cursor)
	} else if d := s.stk.Len(); cursor > d {
		return s.fail("PopTo", "cursor %d is beyond depth %d", cursor, d)
	}
	for s.stk.Len() > cursor {
		if err := s.Pop(); err != nil {
			return err
		}
	}
	return nil
}

// Close implements a method of the Scribe interface.
func (s *Strict) Close() error { return s.PopTo(0) }
