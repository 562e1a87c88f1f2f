// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jscribe

import (
	"errors"

	"github.com/creachadair/mds/stack"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultPoolCapacity is the number of idle hosts retained by a Pool when no
// capacity is given in its options.
const DefaultPoolCapacity = 8

// A Host bundles a Scribe with one instance of each fluent writer type, for
// reuse across documents. Every writer reached from a document belongs to the
// same Host, and a Host serves one document at a time.
type Host struct {
	pool *Pool
	s    resetter
	anc  stack.Stack[any] // the writer each open structure returns to
	err  error            // the first error reported in this document

	released bool // the host is on the free list or discarded

	arr Array
	obj Object
	mem Member
	txt Text
}

func newHost(p *Pool) *Host {
	h := &Host{pool: p}
	if p.strict {
		h.s = NewStrict(nil)
	} else {
		h.s = NewPermissive(nil)
	}
	h.arr.h = h
	h.obj.h = h
	h.mem.h = h
	h.txt.h = h
	return h
}

// PoolOptions are settings for a Pool. A nil *PoolOptions is ready for use
// and provides default values.
type PoolOptions struct {
	// The maximum number of idle hosts retained. If zero, the pool uses
	// DefaultPoolCapacity. Hosts released when the pool is full are discarded.
	Capacity int

	// If true, hosts use a Strict scribe; otherwise Permissive.
	Strict bool

	// If non-nil, debug events are logged here.
	Logger log.Logger

	// If non-nil, pool metrics are registered here. Pools that share a
	// registerer share their metrics.
	Registerer prometheus.Registerer
}

func (o *PoolOptions) capacity() int {
	if o == nil || o.Capacity <= 0 {
		return DefaultPoolCapacity
	}
	return o.Capacity
}

func (o *PoolOptions) strict() bool { return o != nil && o.Strict }

func (o *PoolOptions) logger() log.Logger {
	if o == nil || o.Logger == nil {
		return log.NewNopLogger()
	}
	return o.Logger
}

func (o *PoolOptions) registerer() prometheus.Registerer {
	if o == nil {
		return nil
	}
	return o.Registerer
}

// A Pool is a bounded free list of Hosts. It is safe for concurrent use by
// multiple goroutines, each writing its own documents.
type Pool struct {
	free   chan *Host
	strict bool
	logger log.Logger

	// Metrics.
	acquired  prometheus.Counter
	reused    prometheus.Counter
	discarded prometheus.Counter
}

// NewPool constructs a new empty Pool with the given options.
func NewPool(opts *PoolOptions) *Pool {
	r := opts.registerer()
	return &Pool{
		free:   make(chan *Host, opts.capacity()),
		strict: opts.strict(),
		logger: opts.logger(),
		acquired: newCounter(r, prometheus.CounterOpts{
			Name: "jscribe_pool_acquired_total",
			Help: "Total number of hosts acquired for new documents.",
		}),
		reused: newCounter(r, prometheus.CounterOpts{
			Name: "jscribe_pool_reused_total",
			Help: "Total number of acquired hosts taken from the free list.",
		}),
		discarded: newCounter(r, prometheus.CounterOpts{
			Name: "jscribe_pool_discarded_total",
			Help: "Total number of released hosts discarded because the free list was full.",
		}),
	}
}

// newCounter registers a counter with r, or returns the counter already
// registered there under the same name.
func newCounter(r prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if r == nil {
		return c
	}
	if err := r.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if old, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return old
			}
		}
		panic(err)
	}
	return c
}

// Idle reports the number of hosts currently on the free list.
func (p *Pool) Idle() int { return len(p.free) }

// get returns an idle host bound to w, or a new one if none is idle.
func (p *Pool) get(w Sink) *Host {
	p.acquired.Inc()
	var h *Host
	select {
	case h = <-p.free:
		p.reused.Inc()
	default:
		h = newHost(p)
	}
	h.released = false
	h.s.Reset(w)
	return h
}

// put resets h and returns it to the free list, unless the list is full.
func (p *Pool) put(h *Host) {
	h.s.Reset(nil)
	h.anc.Clear()
	h.err = nil
	h.released = true
	select {
	case p.free <- h:
	default:
		p.discarded.Inc()
		level.Debug(p.logger).Log("msg", "discarding surplus host", "capacity", cap(p.free))
	}
}

// Array begins a new document whose root is an array, writing to w.
// The document must be closed by calling Close on any of its writers.
func (p *Pool) Array(w Sink) *Array {
	h := p.get(w)
	h.err = h.s.PushArray()
	return &h.arr
}

// Object begins a new document whose root is an object, writing to w.
// The document must be closed by calling Close on any of its writers.
func (p *Pool) Object(w Sink) *Object {
	h := p.get(w)
	h.err = h.s.PushObject()
	return &h.obj
}

var defaultPool = NewPool(nil)

// NewArray begins a new document whose root is an array, writing to w, using
// a host from the default pool. The default pool uses Permissive scribes.
func NewArray(w Sink) *Array { return defaultPool.Array(w) }

// NewObject begins a new document whose root is an object, writing to w,
// using a host from the default pool. The default pool uses Permissive
// scribes.
func NewObject(w Sink) *Object { return defaultPool.Object(w) }
