// Package testutil defines support code for unit tests.
package testutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/tailscale/hujson"
)

// ErrSinkFull is reported by a LimitSink that has reached its limit.
var ErrSinkFull = errors.New("sink is full")

// A LimitSink is a sink that accepts at most Limit bytes, and reports
// ErrSinkFull for any write that would exceed it. Bytes from a rejected write
// are discarded.
type LimitSink struct {
	Limit int
	buf   strings.Builder
}

// String returns the text accepted so far.
func (s *LimitSink) String() string { return s.buf.String() }

func (s *LimitSink) room(n int) bool { return s.buf.Len()+n <= s.Limit }

func (s *LimitSink) Write(data []byte) (int, error) {
	if !s.room(len(data)) {
		return 0, ErrSinkFull
	}
	return s.buf.Write(data)
}

func (s *LimitSink) WriteByte(c byte) error {
	if !s.room(1) {
		return ErrSinkFull
	}
	return s.buf.WriteByte(c)
}

func (s *LimitSink) WriteString(str string) (int, error) {
	if !s.room(len(str)) {
		return 0, ErrSinkFull
	}
	return s.buf.WriteString(str)
}

// A Closer records the order in which closers are closed into a shared log.
type Closer struct {
	Name string
	Log  *[]string
	Err  error // if set, reported by Close
}

// Close records c.Name in the log and reports c.Err.
func (c *Closer) Close() error {
	*c.Log = append(*c.Log, c.Name)
	return c.Err
}

// CheckJSON reports a test error if text is not a single standard JSON value.
func CheckJSON(t testing.TB, text string) {
	t.Helper()
	v, err := hujson.Parse([]byte(text))
	if err != nil {
		t.Errorf("Invalid JSON %#q: %v", text, err)
		return
	}
	if !v.IsStandard() {
		t.Errorf("Non-standard JSON %#q", text)
	}
}
