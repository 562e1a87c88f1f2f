// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

// Context is the kind of JSON construct currently open in a Scribe.
type Context byte

// Constants defining the valid Context values.
const (
	TopLevel Context = iota // no open context
	InObject                // object: { ... }
	InArray                 // array: [ ... ]
	InKey                   // object key: " ... ":
	InString                // string value: " ... "
	InMember                // a closed key awaiting its value (Strict only)
)

var contextStr = [...]string{
	TopLevel: "top level",
	InObject: "object",
	InArray:  "array",
	InKey:    "key",
	InString: "string",
	InMember: "member value",
}

func (c Context) String() string {
	v := int(c)
	if v >= len(contextStr) {
		return "invalid context"
	}
	return contextStr[v]
}
