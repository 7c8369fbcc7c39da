// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

// Package event implements the flat event-stream protocol a parser context
// emits and the balanced-replay builder that turns it into a cst.CstNode.
// A valid stream is balanced: every StartNode is matched by a FinishNode.
// Tombstone is a reserved slot, filled retroactively by StartAt or left to
// be silently skipped, which is what makes retroactive wrapping of an
// already-emitted prefix possible.
package event
