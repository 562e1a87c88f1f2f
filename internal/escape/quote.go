// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape implements the character escaping rule for JSON strings.
package escape

import (
	"io"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// escTable maps each byte to its escape sequence, or "" if the byte is
// written unchanged.
var escTable [256]string

func init() {
	for c := range byte(' ') {
		if b := controlEsc[c]; b != 0 {
			escTable[c] = string([]byte{'\\', b})
		} else {
			escTable[c] = string([]byte{'\\', 'u', '0', '0', hexDigit[c>>4], hexDigit[c&15]})
		}
	}
	escTable['"'] = `\"`
	escTable['\\'] = `\\`
}

// Escape returns the escape sequence for c, or "" if c is written unchanged.
// Named escapes are preferred over numeric ones.
func Escape(c byte) string { return escTable[c] }

// Needs reports whether c must be escaped inside a JSON string.
func Needs(c byte) bool { return escTable[c] != "" }

// WriteString writes s to w with escapes applied. Runs of bytes that need no
// escaping are written as a single sub-range of s.
func WriteString(w io.StringWriter, s string) error {
	start := 0
	for i := 0; i < len(s); i++ {
		esc := escTable[s[i]]
		if esc == "" {
			continue
		}
		if start < i {
			if _, err := w.WriteString(s[start:i]); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(esc); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(s) {
		_, err := w.WriteString(s[start:])
		return err
	}
	return nil
}

// Writer is the interface required by WriteBytes.
type Writer interface {
	io.Writer
	io.StringWriter
}

// WriteBytes writes b to w with escapes applied. Runs of bytes that need no
// escaping are written as a single sub-slice of b.
func WriteBytes(w Writer, b []byte) error {
	start := 0
	for i, c := range b {
		esc := escTable[c]
		if esc == "" {
			continue
		}
		if start < i {
			if _, err := w.Write(b[start:i]); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(esc); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(b) {
		_, err := w.Write(b[start:])
		return err
	}
	return nil
}

// Quote encodes a string to escape characters for inclusion in a JSON string.
// The result does not include the enclosing quotation marks.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		c := src.At(i)
		if esc := escTable[c]; esc != "" {
			buf = append(buf, esc...)
		} else {
			buf = append(buf, c)
		}
	}
	return buf
}
