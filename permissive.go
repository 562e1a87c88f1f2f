// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

import (
	"io"
	"math/big"

	"github.com/creachadair/mds/stack"
)

// Permissive is a Scribe that does not check whether its operations are valid
// in the current context. It is meant for callers that produce only valid
// sequences by construction, and for those it emits the same output as a
// Strict scribe.
//
// An invalid sequence produces malformed output rather than an error, with
// two exceptions: Pop with no open context reports ErrUnderflow, and Value
// reports a *TypeError for an unsupported type. PopTo ignores a negative
// cursor or one deeper than the current depth.
type Permissive struct {
	a     appender
	stk   stack.Stack[Context]
	comma bool
	ins   io.Closer
}

// NewPermissive constructs a Permissive scribe that writes to w.
func NewPermissive(w Sink) *Permissive { return &Permissive{a: appender{w: w}} }

// Reset discards the state of p and rebinds it to write to w.
func (p *Permissive) Reset(w Sink) {
	p.a.w = w
	p.stk.Clear()
	p.comma = false
	p.ins = nil
}

// Depth reports the number of open contexts. It is equivalent to Cursor.
func (p *Permissive) Depth() int { return p.stk.Len() }

// Cursor implements a method of the Scribe interface.
func (p *Permissive) Cursor() int { return p.stk.Len() }

// sep writes a comma if one is required before the next sibling.
func (p *Permissive) sep() error {
	if p.comma {
		return p.a.byte(',')
	}
	return nil
}

// leaf records that a complete value was written, if err == nil.
func (p *Permissive) leaf(err error) error {
	if err == nil {
		p.comma = true
	}
	return err
}

func (p *Permissive) open(c Context, tok byte) error {
	if err := p.sep(); err != nil {
		return err
	}
	if err := p.a.byte(tok); err != nil {
		return err
	}
	p.stk.Push(c)
	p.comma = false
	return nil
}

// PushObject implements a method of the Scribe interface.
func (p *Permissive) PushObject() error { return p.open(InObject, '{') }

// PushArray implements a method of the Scribe interface.
func (p *Permissive) PushArray() error { return p.open(InArray, '[') }

// PushKey implements a method of the Scribe interface.
func (p *Permissive) PushKey() error { return p.open(InKey, '"') }

// PushValue implements a method of the Scribe interface.
func (p *Permissive) PushValue() error { return p.open(InString, '"') }

// Key implements a method of the Scribe interface.
func (p *Permissive) Key(name string) error {
	if err := p.sep(); err != nil {
		return err
	}
	if err := p.a.key(name); err != nil {
		return err
	}
	p.comma = false
	return nil
}

// Value implements a method of the Scribe interface.
func (p *Permissive) Value(v any) error { return writeValue(p, v) }

// String implements a method of the Scribe interface.
func (p *Permissive) String(s string) error {
	if err := p.sep(); err != nil {
		return err
	}
	return p.leaf(p.a.quoted(s))
}

// Rune implements a method of the Scribe interface.
func (p *Permissive) Rune(r rune) error {
	if err := p.sep(); err != nil {
		return err
	}
	if err := p.a.byte('"'); err != nil {
		return err
	}
	if err := p.a.textRune(r); err != nil {
		return err
	}
	return p.leaf(p.a.byte('"'))
}

// Int implements a method of the Scribe interface.
func (p *Permissive) Int(v int64) error {
	if err := p.sep(); err != nil {
		return err
	}
	return p.leaf(p.a.int(v))
}

// Uint implements a method of the Scribe interface.
func (p *Permissive) Uint(v uint64) error {
	if err := p.sep(); err != nil {
		return err
	}
	return p.leaf(p.a.uint(v))
}

// Float32 implements a method of the Scribe interface.
func (p *Permissive) Float32(v float32) error {
	if err := p.sep(); err != nil {
		return err
	}
	return p.leaf(p.a.float(float64(v), 32))
}

// Float64 implements a method of the Scribe interface.
func (p *Permissive) Float64(v float64) error {
	if err := p.sep(); err != nil {
		return err
	}
	return p.leaf(p.a.float(v, 64))
}

// Bool implements a method of the Scribe interface.
func (p *Permissive) Bool(v bool) error {
	if err := p.sep(); err != nil {
		return err
	}
	return p.leaf(p.a.bool(v))
}

// BigInt implements a method of the Scribe interface.
func (p *Permissive) BigInt(v *big.Int) error {
	if err := p.sep(); err != nil {
		return err
	}
	return p.leaf(p.a.bigInt(v))
}

// BigFloat implements a method of the Scribe interface.
func (p *Permissive) BigFloat(v *big.Float) error {
	if err := p.sep(); err != nil {
		return err
	}
	return p.leaf(p.a.bigFloat(v))
}

func (p *Permissive) literal(s string) error {
	if err := p.sep(); err != nil {
		return err
	}
	return p.leaf(p.a.literal(s))
}

// Null implements a method of the Scribe interface.
func (p *Permissive) Null() error { return p.literal("null") }

// True implements a method of the Scribe interface.
func (p *Permissive) True() error { return p.literal("true") }

// False implements a method of the Scribe interface.
func (p *Permissive) False() error { return p.literal("false") }

// EmptyObject implements a method of the Scribe interface.
func (p *Permissive) EmptyObject() error { return p.literal("{}") }

// EmptyArray implements a method of the Scribe interface.
func (p *Permissive) EmptyArray() error { return p.literal("[]") }

// AppendString implements a method of the Scribe interface.
func (p *Permissive) AppendString(s string) error { return p.a.text(s) }

// AppendBytes implements a method of the Scribe interface.
func (p *Permissive) AppendBytes(b []byte) error { return p.a.textBytes(b) }

// AppendRune implements a method of the Scribe interface.
func (p *Permissive) AppendRune(r rune) error { return p.a.textRune(r) }

// Inscribe implements a method of the Scribe interface. If a different
// closer is already pending, c replaces it.
func (p *Permissive) Inscribe(c io.Closer) error { p.ins = c; return nil }

// takeInscription removes and returns the pending inscription, if any.
func (p *Permissive) takeInscription() io.Closer {
	c := p.ins
	p.ins = nil
	return c
}

// Pop implements a method of the Scribe interface.
func (p *Permissive) Pop() error {
	top, ok := p.stk.Peek(0)
	if !ok {
		return ErrUnderflow
	}
	if c := p.ins; c != nil {
		p.ins = nil
		if err := c.Close(); err != nil {
			return err
		}
	}
	p.stk.Pop()
	switch top {
	case InObject:
		return p.leaf(p.a.byte('}'))
	case InArray:
		return p.leaf(p.a.byte(']'))
	case InKey:
		return p.a.literal(`":`)
	default:
		return p.leaf(p.a.byte('"'))
	}
}

// PopTo implements a method of the Scribe interface.
func (p *Permissive) PopTo(cursor int) error {
	if cursor < 0 {
		return nil
	}
	for p.stk.Len() > cursor {
		if err := p.Pop(); err != nil {
			return err
		}
	}
	return nil
}

// Close implements a method of the Scribe interface.
func (p *Permissive) Close() error { return p.PopTo(0) }
