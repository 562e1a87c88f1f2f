// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

import "io"

// A Sink is the destination of emitted JSON text. The standard library types
// *strings.Builder, *bytes.Buffer, and *bufio.Writer all satisfy Sink.
//
// Errors reported by the sink are returned unchanged by the operation that
// triggered the write. The scribe does not retry or recover partial writes.
type Sink interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// NewSink adapts w to a Sink. If w already implements Sink it is returned
// as-is. Otherwise, each write is passed through to w without buffering.
func NewSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return &writerSink{w: w}
}

type writerSink struct {
	w   io.Writer
	buf [1]byte
}

func (s *writerSink) Write(data []byte) (int, error) { return s.w.Write(data) }

func (s *writerSink) WriteByte(c byte) error {
	s.buf[0] = c
	_, err := s.w.Write(s.buf[:])
	return err
}

func (s *writerSink) WriteString(str string) (int, error) { return io.WriteString(s.w, str) }
