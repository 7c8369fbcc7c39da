// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package cerrs

// Error defines a constant error
type Error string

// Error implements the error interface
func (e Error) Error() string { return string(e) }

const (
	// ErrUnbalancedEventStream indicates the event builder found an
	// unmatched StartNode or FinishNode. This is a bug in the language's
	// grammar (or in the parser context it drives), never a property of
	// the input being parsed.
	ErrUnbalancedEventStream = Error("unbalanced event stream")

	// ErrUnknownEvent indicates the builder encountered an event kind it
	// does not recognize.
	ErrUnknownEvent = Error("unknown event kind")

	// ErrRootKindMismatch indicates the event stream already wraps itself
	// in a single outer frame, but that frame's kind does not match the
	// root kind BuildTree was called with.
	ErrRootKindMismatch = Error("root kind mismatch")

	// ErrMarkOutOfRange indicates start_at was called with an index that
	// does not reference a previously reserved tombstone slot.
	ErrMarkOutOfRange = Error("mark index out of range")

	// ErrMarkAlreadyFilled indicates start_at was called on a slot that
	// is not a tombstone (either already filled or never reserved).
	ErrMarkAlreadyFilled = Error("mark slot already filled")

	// ErrMemoCycle indicates a Memo's closure read itself, directly or
	// transitively, during its own recomputation.
	ErrMemoCycle = Error("memo read its own value during recomputation")
)
