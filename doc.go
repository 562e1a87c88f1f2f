// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jscribe implements a streaming JSON emitter.
//
// JSON text is written one token at a time to a Sink, without building the
// document in memory. The emitter tracks the nesting of open objects, arrays,
// keys, and strings, so that commas, colons, quotes, and closing brackets are
// placed correctly no matter how the calling code is structured.
//
// # Scribes
//
// The Scribe interface is the low-level emitter. Construct one bound to a
// sink and call its methods in the order the output should appear:
//
//	var sb strings.Builder
//	s := jscribe.NewStrict(&sb)
//	s.PushObject()
//	s.Key("name")
//	s.String("value")
//	s.Close() // sb.String() == `{"name":"value"}`
//
// There are two implementations. A Strict scribe checks every operation and
// reports a *StateError for a call that would produce invalid JSON. A
// Permissive scribe performs no checks, and is meant for callers that produce
// only valid sequences by construction.
//
//	Operation             | Effect
//	--------------------- | --------------------------------------------
//	PushObject, PushArray | open an object or array
//	PushKey, PushValue    | open a key or string; write text with Append*
//	Key                   | write a complete key and colon
//	Value, String, ...    | write a complete value
//	Pop                   | close the innermost open context
//	PopTo(Cursor())       | close everything opened since the cursor
//	Close                 | close every open context
//
// Numbers that JSON cannot represent (NaN and infinities) are written as null.
//
// # Digressions
//
// Cursor reports the current depth, and PopTo closes contexts until that
// depth is restored. Digress uses this to hand a callback a view of the
// scribe that cannot close anything it did not open, and to close whatever
// the callback left open when it returns, fails, or panics.
//
// # Writers
//
// The Array, Object, Member, and Text types are fluent writers over a scribe.
// Their methods can be chained, and an error is recorded for the document
// rather than returned from each call:
//
//	err := jscribe.NewArray(w).Int(1).Int(2).Int(3).Close() // [1,2,3]
//
// The writers for a document belong to a Host, which is taken from a Pool when
// the document begins and returned to it by Close. A host serves one document
// at a time; a Pool may be shared among goroutines.
package jscribe
