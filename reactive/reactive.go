// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package reactive

import "github.com/mdhender/syntaxdb/cerrs"

// Equatable is the constraint a value stored in a Signal or Memo must
// satisfy: reactive.go needs to tell "recomputed to something new" from
// "recomputed to the same thing" to implement backdating, and a simple
// comparable constraint isn't enough once T is a struct holding a slice
// (langspec.CstStage's Diagnostics, a *cst.CstNode's structural equality).
type Equatable[T any] interface {
	Equal(T) bool
}

// Revisioned is anything a Memo can depend on: a Signal, or another Memo.
// refresh is unexported so only this package's own types can satisfy the
// interface — a caller can store a Signal or Memo behind Revisioned but
// can never fabricate one that skips validation.
type Revisioned interface {
	ChangedAt() uint64
	refresh()
}

// Runtime is the shared monotonic clock a graph of Signals and Memos is
// built against. It is not safe for concurrent use; a runtime and its
// cells belong to one logical session with a single writer.
type Runtime struct {
	revision uint64
}

// NewRuntime returns a runtime at revision 0.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// Revision returns the current global revision.
func (r *Runtime) Revision() uint64 { return r.revision }

// Signal is a reactive input cell. Set always advances the runtime's
// global revision, but only advances the signal's own ChangedAt if the
// new value differs from the old one — the same backdating rule Memo
// applies to recomputed values, so that setting a signal to its current
// value never forces dependents to recompute.
type Signal[T Equatable[T]] struct {
	rt        *Runtime
	value     T
	changedAt uint64
}

// NewSignal returns a signal holding initial, considered changed as of
// the runtime's current revision.
func NewSignal[T Equatable[T]](rt *Runtime, initial T) *Signal[T] {
	return &Signal[T]{rt: rt, value: initial, changedAt: rt.revision}
}

// Get returns the signal's current value.
func (s *Signal[T]) Get() T { return s.value }

// ChangedAt returns the revision at which the signal's value last
// actually differed from what it held before.
func (s *Signal[T]) ChangedAt() uint64 { return s.changedAt }

// refresh is a no-op: a Signal's value is set directly, it is never stale.
func (s *Signal[T]) refresh() {}

// Set installs v as the signal's new value.
func (s *Signal[T]) Set(v T) {
	s.rt.revision++
	if !s.value.Equal(v) {
		s.value = v
		s.changedAt = s.rt.revision
	}
}

// Memo is a derived reactive cell: compute is re-run only when at least
// one dependency's ChangedAt has advanced past the revision this memo was
// last verified at. A recomputation that produces a value equal to the
// cached one is backdated — changedAt does not advance — so a Memo
// chained after this one sees no change and skips its own recompute.
type Memo[T Equatable[T]] struct {
	rt         *Runtime
	deps       []Revisioned
	compute    func() T
	value      T
	hasValue   bool
	verifiedAt uint64
	changedAt  uint64
	evaluating bool
}

// NewMemo returns a memo that recomputes via compute whenever any
// dependency in deps has changed since this memo was last verified.
func NewMemo[T Equatable[T]](rt *Runtime, deps []Revisioned, compute func() T) *Memo[T] {
	return &Memo[T]{rt: rt, deps: deps, compute: compute}
}

// dirty reports whether m needs recomputing. Each dependency is refreshed
// first — forcing it, transitively, to its own up-to-date value — before
// its ChangedAt is read; otherwise a chain of memos queried only at the
// end (never individually) would compare against a dependency's stale
// cached revision and wrongly conclude nothing changed.
func (m *Memo[T]) dirty() bool {
	if !m.hasValue {
		return true
	}
	for _, d := range m.deps {
		d.refresh()
		if d.ChangedAt() > m.verifiedAt {
			return true
		}
	}
	return false
}

// refresh recomputes m if dirty, without returning the value — used so a
// memo that depends on m can validate it before reading its ChangedAt.
// It panics with cerrs.ErrMemoCycle if m's own compute closure reads m
// (directly, or transitively through another memo that reads m back)
// while already evaluating — the core's single-threaded model has no
// other way to terminate that loop.
func (m *Memo[T]) refresh() {
	if m.evaluating {
		panic(cerrs.ErrMemoCycle)
	}
	if !m.dirty() {
		return
	}
	m.evaluating = true
	v := func() T {
		defer func() { m.evaluating = false }()
		return m.compute()
	}()
	m.verifiedAt = m.rt.revision
	if !m.hasValue || !m.value.Equal(v) {
		m.value = v
		m.changedAt = m.rt.revision
	}
	m.hasValue = true
}

// Get returns the memo's up-to-date value, recomputing first if dirty.
func (m *Memo[T]) Get() T {
	m.refresh()
	return m.value
}

// ChangedAt returns the revision at which this memo's value last actually
// differed from what it held before.
func (m *Memo[T]) ChangedAt() uint64 { return m.changedAt }
