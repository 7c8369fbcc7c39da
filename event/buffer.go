// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package event

import (
	"github.com/mdhender/syntaxdb/cerrs"
	"github.com/mdhender/syntaxdb/cst"
)

// Buffer is the ordered sequence of events a parser context appends to.
// It is the single source of truth Builder replays; nothing else holds
// parse state that the builder needs.
type Buffer struct {
	events []Event
}

// NewBuffer returns an empty event buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Len reports how many events have been appended (including tombstones,
// filled or not).
func (b *Buffer) Len() int { return len(b.events) }

// Events returns the buffer's events. The slice is owned by Builder
// callers and must not be mutated; Buffer keeps appending to the same
// backing array across calls.
func (b *Buffer) Events() []Event { return b.events }

// PushStartNode appends a StartNode event.
func (b *Buffer) PushStartNode(kind cst.Kind) {
	b.events = append(b.events, Event{Tag: StartNode, NodeKind: kind})
}

// PushFinishNode appends a FinishNode event.
func (b *Buffer) PushFinishNode() {
	b.events = append(b.events, Event{Tag: FinishNode})
}

// PushToken appends a Token event.
func (b *Buffer) PushToken(kind cst.Kind, text string) {
	b.events = append(b.events, Event{Tag: Token, TokenKind: kind, Text: text})
}

// Mark reserves a Tombstone slot at the current position and returns its
// index, to be filled later by StartAt (or left unfilled, in which case
// the builder silently skips it).
func (b *Buffer) Mark() int {
	idx := len(b.events)
	b.events = append(b.events, Event{Tag: Tombstone})
	return idx
}

// StartAt overwrites the tombstone reserved at idx with a StartNode event
// of the given kind, retroactively wrapping everything emitted since the
// mark in a node once FinishNode is eventually emitted. It panics if idx
// is out of range or the slot is not a tombstone — both indicate a bug in
// the calling grammar, not a property of the input.
func (b *Buffer) StartAt(idx int, kind cst.Kind) {
	if idx < 0 || idx >= len(b.events) {
		panic(cerrs.ErrMarkOutOfRange)
	}
	if b.events[idx].Tag != Tombstone {
		panic(cerrs.ErrMarkAlreadyFilled)
	}
	b.events[idx] = Event{Tag: StartNode, NodeKind: kind}
}
