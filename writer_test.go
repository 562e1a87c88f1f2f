// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/creachadair/jscribe"
	"github.com/creachadair/jscribe/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestWriters(t *testing.T) {
	pools := []struct {
		name string
		pool *jscribe.Pool
	}{
		{"Default", nil},
		{"Strict", jscribe.NewPool(&jscribe.PoolOptions{Strict: true})},
	}
	newArray := func(p *jscribe.Pool, w jscribe.Sink) *jscribe.Array {
		if p == nil {
			return jscribe.NewArray(w)
		}
		return p.Array(w)
	}
	newObject := func(p *jscribe.Pool, w jscribe.Sink) *jscribe.Object {
		if p == nil {
			return jscribe.NewObject(w)
		}
		return p.Object(w)
	}

	tests := []struct {
		name  string
		write func(*jscribe.Pool, jscribe.Sink) error
		want  string
	}{
		{"Array", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newArray(p, w).Int(1).Int(2).Int(3).Close()
		}, `[1,2,3]`},
		{"Object", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newObject(p, w).String("k", "v").Close()
		}, `{"k":"v"}`},
		{"TwoKeys", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newObject(p, w).String("k1", "v1").String("k2", "v2").Close()
		}, `{"k1":"v1","k2":"v2"}`},
		{"NaN", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newArray(p, w).Float(math.NaN()).Close()
		}, `[null]`},
		{"Scalars", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newArray(p, w).Null().Bool(true).Int(-1).Uint(2).Float(0.5).
				String("s").Rune('r').Value(nil).EmptyArray().EmptyObject().Close()
		}, `[null,true,-1,2,0.5,"s","r",null,[],{}]`},
		{"Members", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newObject(p, w).Null("a").Bool("b", false).Int("c", 3).Uint("d", 4).
				Float("e", 1e-7).Value("f", "x").
				Member("g").EmptyArray().Member("h").EmptyObject().
				Member("i").Rune('\n').Member("j").Int(5).Close()
		}, `{"a":null,"b":false,"c":3,"d":4,"e":1e-07,"f":"x","g":[],"h":{},"i":"\n","j":5}`},
		{"Nested", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newObject(p, w).String("name", "x").
				Array("list").Int(1).Object().Bool("ok", true).ThenArray().Null().ThenObject().
				Member("m").Text().String("a").Rune('\t').ThenObject().
				Close()
		}, `{"name":"x","list":[1,{"ok":true},null],"m":"a\t"}`},
		{"MemberStructures", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newObject(p, w).
				Member("a").Array().Int(1).ThenObject().
				Member("o").Object().Null("z").ThenObject().
				Object("p").Array("q").ThenObject().ThenObject().
				Text("t").String("u").ThenObject().
				Close()
		}, `{"a":[1],"o":{"z":null},"p":{"q":[]},"t":"u"}`},
		{"StreamedKey", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newObject(p, w).Key().String("k").Rune('"').EndKey().Int(1).Close()
		}, `{"k\"":1}`},
		{"Fprintf", func(p *jscribe.Pool, w jscribe.Sink) error {
			a := newArray(p, w)
			txt := a.Text()
			if _, err := fmt.Fprintf(txt, "%d<%s>", 5, `q"`); err != nil {
				return err
			}
			return txt.ThenArray().String("next").Close()
		}, `["5<q\">","next"]`},
		{"NestedArrays", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newArray(p, w).Array().Array().Int(1).ThenArray().ThenArray().Int(2).Close()
		}, `[[[1]],2]`},
		{"CloseOpen", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newArray(p, w).Object().Array("x").Text().String("open").Close()
		}, `[{"x":["open"]}]`},
		{"With", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newArray(p, w).Int(1).With(func(s jscribe.Scribe) error {
				s.PushObject()
				s.Key("x")
				return s.PushArray()
			}).Int(2).Close()
		}, `[1,{"x":[]},2]`},
		{"ObjectWith", func(p *jscribe.Pool, w jscribe.Sink) error {
			return newObject(p, w).With(func(s jscribe.Scribe) error {
				for _, k := range []string{"a", "b"} {
					if err := s.Key(k); err != nil {
						return err
					}
					if err := s.Int(int64(len(k))); err != nil {
						return err
					}
				}
				return nil
			}).Null("c").Close()
		}, `{"a":1,"b":1,"c":null}`},
	}
	for _, p := range pools {
		for _, tc := range tests {
			t.Run(p.name+"/"+tc.name, func(t *testing.T) {
				var sb strings.Builder
				if err := tc.write(p.pool, &sb); err != nil {
					t.Fatalf("Write: unexpected error: %v", err)
				}
				got := sb.String()
				if diff := cmp.Diff(got, tc.want); diff != "" {
					t.Errorf("Output (-got, +want):\n%s", diff)
				}
				testutil.CheckJSON(t, got)
			})
		}
	}
}

func TestWriterInscribe(t *testing.T) {
	var sb strings.Builder
	var log []string
	if err := jscribe.NewObject(&sb).
		Array("a").Inscribe(&testutil.Closer{Name: "a", Log: &log}).Int(1).ThenObject().
		Inscribe(&testutil.Closer{Name: "root", Log: &log}).
		Close(); err != nil {
		t.Fatalf("Close: unexpected error: %v", err)
	}
	if got, want := sb.String(), `{"a":[1]}`; got != want {
		t.Errorf("Output: got %#q, want %#q", got, want)
	}
	if diff := cmp.Diff(log, []string{"a", "root"}); diff != "" {
		t.Errorf("Closed (-got, +want):\n%s", diff)
	}
}

func TestWriterErrors(t *testing.T) {
	t.Run("WrongParent", func(t *testing.T) {
		var sb strings.Builder
		a := jscribe.NewArray(&sb)
		a.Object().ThenObject().Null("x")
		err := a.Err()
		if err == nil {
			t.Fatal("Err: got nil, want error")
		}
		t.Logf("Got expected error: %v", err)
		if got := a.Close(); got != err {
			t.Errorf("Close: got %v, want %v", got, err)
		}
		if got, want := sb.String(), `[{}`; got != want {
			t.Errorf("Output: got %#q, want %#q", got, want)
		}
	})
	t.Run("NoParent", func(t *testing.T) {
		var sb strings.Builder
		a := jscribe.NewArray(&sb).ThenArray()
		if err := a.Close(); err == nil {
			t.Error("Close: got nil, want error")
		} else {
			t.Logf("Got expected error: %v", err)
		}
	})
	t.Run("Sticky", func(t *testing.T) {
		w := &testutil.LimitSink{Limit: 3}
		err := jscribe.NewArray(w).Int(1).Int(22).Int(3).Array().ThenArray().Close()
		if !errors.Is(err, testutil.ErrSinkFull) {
			t.Errorf("Close: got %v, want %v", err, testutil.ErrSinkFull)
		}
		if got, want := w.String(), `[1,`; got != want {
			t.Errorf("Output: got %#q, want %#q", got, want)
		}
	})
	t.Run("TextWrite", func(t *testing.T) {
		w := &testutil.LimitSink{Limit: 4}
		txt := jscribe.NewArray(w).Text()
		if _, err := txt.WriteString("abc"); err == nil {
			t.Error("WriteString: got nil, want error")
		}
		if n, err := txt.Write([]byte("c")); err == nil || n != 0 {
			t.Errorf("Write: got (%d, %v), want (0, error)", n, err)
		}
		if err := txt.ThenArray().Close(); !errors.Is(err, testutil.ErrSinkFull) {
			t.Errorf("Close: got %v, want %v", err, testutil.ErrSinkFull)
		}
	})
	t.Run("InscriptionAfterError", func(t *testing.T) {
		var log []string
		w := &testutil.LimitSink{Limit: 2}
		a := jscribe.NewArray(w).Inscribe(&testutil.Closer{Name: "held", Log: &log}).Int(1).Int(2)
		if err := a.Close(); !errors.Is(err, testutil.ErrSinkFull) {
			t.Errorf("Close: got %v, want %v", err, testutil.ErrSinkFull)
		}
		if diff := cmp.Diff(log, []string{"held"}); diff != "" {
			t.Errorf("Closed (-got, +want):\n%s", diff)
		}
	})
	t.Run("InscriptionErrorJoined", func(t *testing.T) {
		var log []string
		bad := errors.New("release failed")
		w := &testutil.LimitSink{Limit: 1}
		err := jscribe.NewArray(w).Inscribe(&testutil.Closer{Name: "c", Log: &log, Err: bad}).Int(1).Close()
		if !errors.Is(err, testutil.ErrSinkFull) || !errors.Is(err, bad) {
			t.Errorf("Close: got %v, want both %v and %v", err, testutil.ErrSinkFull, bad)
		}
	})
	t.Run("TextRoot", func(t *testing.T) {
		var sb strings.Builder
		txt := jscribe.NewObject(&sb).Text("t").String("v")
		if err := txt.Err(); err != nil {
			t.Fatalf("Err: unexpected error: %v", err)
		}
		if err := txt.Close(); err != nil {
			t.Fatalf("Close: unexpected error: %v", err)
		}
		if got, want := sb.String(), `{"t":"v"}`; got != want {
			t.Errorf("Output: got %#q, want %#q", got, want)
		}
	})
	t.Run("StrictMisuse", func(t *testing.T) {
		var sb strings.Builder
		p := jscribe.NewPool(&jscribe.PoolOptions{Strict: true})
		o := p.Object(&sb)
		o.Member("a")
		o.Member("b")
		var serr *jscribe.StateError
		if err := o.Close(); !errors.As(err, &serr) {
			t.Errorf("Close: got %v, want *StateError", err)
		} else if serr.Context != jscribe.InMember {
			t.Errorf("Error context: got %v, want %v", serr.Context, jscribe.InMember)
		}
		if got, want := sb.String(), `{"a":`; got != want {
			t.Errorf("Output: got %#q, want %#q", got, want)
		}
	})
	t.Run("WithError", func(t *testing.T) {
		var sb strings.Builder
		bad := errors.New("bad element")
		err := jscribe.NewArray(&sb).With(func(s jscribe.Scribe) error {
			s.PushArray()
			s.Int(1)
			return bad
		}).Int(2).Close()
		if !errors.Is(err, bad) {
			t.Errorf("Close: got %v, want %v", err, bad)
		}
		if got, want := sb.String(), `[[1]`; got != want {
			t.Errorf("Output: got %#q, want %#q", got, want)
		}
	})
}

func TestPoolIdentity(t *testing.T) {
	p := jscribe.NewPool(nil)

	var sb strings.Builder
	a := p.Array(&sb)
	h := a.Host()
	if err := a.Int(1).Close(); err != nil {
		t.Fatalf("Close: unexpected error: %v", err)
	}
	if got := p.Idle(); got != 1 {
		t.Errorf("Idle: got %d, want 1", got)
	}

	o := p.Object(&sb)
	if o.Host() != h {
		t.Error("Reacquired host differs from the released one")
	}
	if got := p.Idle(); got != 0 {
		t.Errorf("Idle: got %d, want 0", got)
	}
	if err := o.Bool("x", true).Close(); err != nil {
		t.Fatalf("Close: unexpected error: %v", err)
	}
	if got, want := sb.String(), `[1]{"x":true}`; got != want {
		t.Errorf("Output: got %#q, want %#q", got, want)
	}
}

func TestPoolConcurrent(t *testing.T) {
	p := jscribe.NewPool(&jscribe.PoolOptions{Capacity: 4})

	const workers = 16
	var wg sync.WaitGroup
	errc := make(chan error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				var sb strings.Builder
				if err := p.Object(&sb).Int("worker", int64(i)).
					Array("seq").Int(int64(j)).ThenObject().Close(); err != nil {
					errc <- err
					return
				}
				want := fmt.Sprintf(`{"worker":%d,"seq":[%d]}`, i, j)
				if got := sb.String(); got != want {
					errc <- fmt.Errorf("got %#q, want %#q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errc)
	for err := range errc {
		t.Error(err)
	}
	if got := p.Idle(); got > 4 {
		t.Errorf("Idle: got %d, want at most 4", got)
	}
}
