// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

import "errors"

// memberScribe is implemented by scribes that track a key awaiting its value
// as an open context.
type memberScribe interface {
	pendingMember() bool
}

func hasPendingMember(s Scribe) bool {
	m, ok := s.(memberScribe)
	return ok && m.pendingMember()
}

// Digress calls f with a view of s that cannot close any context open at the
// time of the call. When f returns, every context f left open is closed, so
// s is restored to the depth it had before f ran. This also happens if f
// returns an error or panics; a panic is propagated after the rollback.
//
// If s has a key awaiting its value, f may write that value, and the value
// is completed by the rollback if f leaves it open.
//
// The error returned by Digress combines the error from f, if any, with any
// error from closing the contexts f left open.
func Digress(s Scribe, f func(Scribe) error) (err error) {
	cur := s.Cursor()
	floor := cur
	if hasPendingMember(s) {
		floor--
	}
	defer func() {
		// Nothing to do if the key is still waiting for f to write its value.
		if d := s.Cursor(); d > floor && !(d == cur && hasPendingMember(s)) {
			err = errors.Join(err, s.PopTo(floor))
		}
	}()
	return f(bounded{Scribe: s, floor: floor})
}

// bounded is a Scribe that will not close contexts at or below floor.
type bounded struct {
	Scribe
	floor int
}

func (b bounded) pendingMember() bool { return hasPendingMember(b.Scribe) }

func (b bounded) Pop() error {
	if b.Cursor() <= b.floor {
		return ErrOutOfBounds
	}
	return b.Scribe.Pop()
}

func (b bounded) PopTo(cursor int) error {
	if cursor < b.floor {
		return ErrOutOfBounds
	}
	return b.Scribe.PopTo(cursor)
}

func (b bounded) Close() error {
	if b.Cursor() <= b.floor {
		return nil
	}
	return b.Scribe.PopTo(b.floor)
}
