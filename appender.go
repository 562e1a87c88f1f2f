// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

import (
	"math"
	"math/big"
	"strconv"
	"unicode/utf8"

	"github.com/creachadair/jscribe/internal/escape"
)

// An appender writes the literal spelling of JSON tokens to a Sink.
// Numbers are formatted into buf, so emitting scalars does not allocate.
type appender struct {
	w   Sink
	buf [64]byte
}

func (a *appender) byte(c byte) error { return a.w.WriteByte(c) }

func (a *appender) literal(s string) error {
	_, err := a.w.WriteString(s)
	return err
}

func (a *appender) raw(b []byte) error {
	_, err := a.w.Write(b)
	return err
}

func (a *appender) null() error { return a.literal("null") }

func (a *appender) bool(v bool) error {
	if v {
		return a.literal("true")
	}
	return a.literal("false")
}

func (a *appender) int(v int64) error { return a.raw(strconv.AppendInt(a.buf[:0], v, 10)) }

func (a *appender) uint(v uint64) error { return a.raw(strconv.AppendUint(a.buf[:0], v, 10)) }

// float writes v formatted at the given bit size. JSON has no spelling for
// NaN or infinities, so those are written as null.
func (a *appender) float(v float64, bits int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return a.null()
	}
	return a.raw(strconv.AppendFloat(a.buf[:0], v, 'g', -1, bits))
}

func (a *appender) bigInt(v *big.Int) error {
	if v == nil {
		return a.null()
	}
	return a.raw(v.Append(a.buf[:0], 10))
}

func (a *appender) bigFloat(v *big.Float) error {
	if v == nil || v.IsInf() {
		return a.null()
	}
	return a.raw(v.Append(a.buf[:0], 'g', -1))
}

// text writes s with string escapes applied.
func (a *appender) text(s string) error { return escape.WriteString(a.w, s) }

// textBytes writes b with string escapes applied.
func (a *appender) textBytes(b []byte) error { return escape.WriteBytes(a.w, b) }

// textRune writes the UTF-8 encoding of r with string escapes applied.
func (a *appender) textRune(r rune) error {
	if 0 <= r && r < utf8.RuneSelf {
		if esc := escape.Escape(byte(r)); esc != "" {
			return a.literal(esc)
		}
		return a.byte(byte(r))
	}
	n := utf8.EncodeRune(a.buf[:], r)
	return a.raw(a.buf[:n])
}

// quoted writes s as a complete JSON string.
func (a *appender) quoted(s string) error {
	if err := a.byte('"'); err != nil {
		return err
	}
	if err := a.text(s); err != nil {
		return err
	}
	return a.byte('"')
}

// key writes s as a complete object key, including the colon.
func (a *appender) key(s string) error {
	if err := a.byte('"'); err != nil {
		return err
	}
	if err := a.text(s); err != nil {
		return err
	}
	return a.literal(`":`)
}
