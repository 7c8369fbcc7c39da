// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package parsectx

import (
	"github.com/mdhender/syntaxdb/cst"
	"github.com/mdhender/syntaxdb/event"
	"github.com/mdhender/syntaxdb/langspec"
	"github.com/mdhender/syntaxdb/reuse"
)

// errorBudget caps how many diagnostics a single parse will record before
// giving up on targeted recovery and consuming the remainder of the
// stream as one error node. Chosen generously above any realistic
// hand-written test source; a pathological or truncated file shouldn't be
// able to make a parse emit an unbounded number of errors.
const errorBudget = 50

// Context is the mutable state a grammar's recursive-descent functions
// thread through: the token cursor, the event buffer they append to, the
// diagnostics collected along the way, and (for an incremental reparse)
// the reuse cursor consulted by Node.
//
// Trivia between two sibling nodes lands in their enclosing node, between
// the two siblings, never as leading children of the node that follows — see
// package reuse's doc comment for why that convention matters.
type Context[Tok langspec.Token] struct {
	spec   langspec.LanguageSpec[Tok]
	tokens []Tok
	pos    int
	offset int

	buf           *event.Buffer
	diags         []langspec.Diagnostic
	pendingTrivia []Tok

	errorsEmitted int
	reuse         *reuse.Cursor[Tok]

	// depth counts currently-open StartNode/StartAt frames. It reaches
	// zero exactly when the grammar's outermost Node call closes, which
	// is when any trivia still sitting in pendingTrivia — trailing
	// whitespace or a trailing comment with nothing left to attach it
	// to — must be flushed into that frame instead of being dropped.
	depth int
}

// New returns a parser context over tokens (the full re-lexed sequence,
// including trivia), ready to drive spec's grammar from scratch. Pass a
// non-nil cursor to enable subtree reuse during an incremental reparse.
func New[Tok langspec.Token](spec langspec.LanguageSpec[Tok], tokens []Tok, cursor *reuse.Cursor[Tok]) *Context[Tok] {
	return &Context[Tok]{
		spec:   spec,
		tokens: tokens,
		buf:    event.NewBuffer(),
		reuse:  cursor,
	}
}

// skipTrivia eagerly buffers every trivia token starting at pos, advancing
// pos and offset past them, until it reaches a non-trivia token or the end
// of the stream. Buffered trivia is flushed as trailing children of
// whichever node is open when the next real token or subtree is emitted.
func (c *Context[Tok]) skipTrivia() {
	for c.pos < len(c.tokens) && c.spec.TokenIsTrivia(c.tokens[c.pos]) {
		c.pendingTrivia = append(c.pendingTrivia, c.tokens[c.pos])
		c.offset += len(c.tokens[c.pos].Text())
		c.pos++
	}
}

// Peek returns the next non-trivia token without consuming it, or the
// language's EOF token once the stream is exhausted.
func (c *Context[Tok]) Peek() Tok {
	c.skipTrivia()
	if c.pos >= len(c.tokens) {
		return c.spec.EOFToken()
	}
	return c.tokens[c.pos]
}

// At reports whether the next non-trivia token has the given kind.
func (c *Context[Tok]) At(kind cst.Kind) bool {
	return c.Peek().Kind() == kind
}

// AtToken reports whether the next non-trivia token equals tok, using the
// language's own token equality (kind and text both).
func (c *Context[Tok]) AtToken(tok Tok) bool {
	return c.spec.TokensEqual(c.Peek(), tok)
}

// AtEOF reports whether the next non-trivia token is end of input.
func (c *Context[Tok]) AtEOF() bool {
	return c.spec.TokenIsEOF(c.Peek())
}

// Offset returns the current byte offset in the new document: the start
// of the next non-trivia token, which is also the position Node consults
// the reuse cursor with.
func (c *Context[Tok]) Offset() int {
	c.skipTrivia()
	return c.offset
}

// flushTrivia drains pendingTrivia into the event buffer as plain Token
// events, attached to whatever node is currently open.
func (c *Context[Tok]) flushTrivia() {
	for _, t := range c.pendingTrivia {
		c.buf.PushToken(c.spec.WhitespaceKind(), t.Text())
	}
	c.pendingTrivia = c.pendingTrivia[:0]
}

// EmitToken flushes pending trivia, then consumes the current non-trivia
// token and appends it as a Token event under kind — which may differ
// from the raw token's own kind, for grammars that retag contextual
// keywords.
func (c *Context[Tok]) EmitToken(kind cst.Kind) {
	c.skipTrivia()
	c.flushTrivia()
	if c.pos >= len(c.tokens) {
		return
	}
	tok := c.tokens[c.pos]
	c.buf.PushToken(kind, tok.Text())
	c.offset += len(tok.Text())
	c.pos++
}

// Bump consumes the current token under its own kind.
func (c *Context[Tok]) Bump() {
	c.EmitToken(c.Peek().Kind())
}

// EmitErrorPlaceholder appends a zero-width synthetic token under the
// language's error kind, without consuming any input — used to stand in
// for a missing required token so the tree shape stays well-formed and
// HasErrors still finds the spot.
func (c *Context[Tok]) EmitErrorPlaceholder() {
	c.flushTrivia()
	c.buf.PushToken(c.spec.ErrorKind(), "")
}

// StartNode appends a StartNode event.
func (c *Context[Tok]) StartNode(kind cst.Kind) {
	c.flushTrivia()
	c.buf.PushStartNode(kind)
	c.depth++
}

// FinishNode appends a FinishNode event. Closing the outermost frame
// flushes any trivia the grammar never came back to consume — e.g. a
// trailing comment or whitespace at end of input — so it lands inside
// the tree instead of vanishing (see depth's doc comment).
func (c *Context[Tok]) FinishNode() {
	c.depth--
	if c.depth == 0 {
		c.skipTrivia()
		c.flushTrivia()
	}
	c.buf.PushFinishNode()
}

// Mark reserves a tombstone slot, for a later retroactive StartAt.
func (c *Context[Tok]) Mark() int {
	return c.buf.Mark()
}

// StartAt retroactively opens kind at the reserved mark.
func (c *Context[Tok]) StartAt(mark int, kind cst.Kind) {
	c.buf.StartAt(mark, kind)
	c.depth++
}

// Error records a diagnostic spanning the current lookahead token. It
// also ticks the error budget; once ErrorsExhausted reports true the
// grammar should stop attempting targeted recovery and call
// ConsumeRemainder instead.
func (c *Context[Tok]) Error(message string) {
	c.errorsEmitted++
	start := c.Offset()
	end := start + len(c.Peek().Text())
	c.diags = append(c.diags, langspec.Diagnostic{Message: message, Start: start, End: end})
}

// Expected records a diagnostic naming what the grammar wanted instead of
// the current lookahead token.
func (c *Context[Tok]) Expected(want string) {
	c.Error("expected " + want + ", found " + c.spec.PrintToken(c.Peek()))
}

// BumpError consumes the current token under the language's error kind:
// the recovery move for a token the grammar cannot place anywhere.
func (c *Context[Tok]) BumpError() {
	c.EmitToken(c.spec.ErrorKind())
}

// ErrorsExhausted reports whether the error budget has been spent.
func (c *Context[Tok]) ErrorsExhausted() bool {
	return c.errorsEmitted > errorBudget
}

// RecoverTo wraps an error node around tokens consumed up to (but not
// including) the first token whose kind is in kinds, or end of input.
func (c *Context[Tok]) RecoverTo(kinds ...cst.Kind) {
	c.StartNode(c.spec.ErrorKind())
	for !c.AtEOF() {
		cur := c.Peek()
		for _, k := range kinds {
			if cur.Kind() == k {
				c.FinishNode()
				return
			}
		}
		c.Bump()
	}
	c.FinishNode()
}

// ConsumeRemainder wraps every remaining token in a single error node. A
// grammar calls this once ErrorsExhausted reports the budget spent,
// forcing termination instead of risking quadratic recovery thrashing on
// pathological input.
func (c *Context[Tok]) ConsumeRemainder() {
	c.StartNode(c.spec.ErrorKind())
	for !c.AtEOF() {
		c.Bump()
	}
	c.FinishNode()
}

// advanceBy skips width bytes' worth of raw tokens without emitting
// events for them — used after a reuse splice, whose adopted subtree
// already encodes everything those tokens would have produced.
func (c *Context[Tok]) advanceBy(width int) {
	for width > 0 && c.pos < len(c.tokens) {
		n := len(c.tokens[c.pos].Text())
		c.pos++
		c.offset += n
		width -= n
	}
}

// Node wraps body in a node of kind, unless a reuse cursor is attached and
// offers a prior subtree of that kind starting exactly here — in which
// case the prior subtree is spliced in verbatim and body never runs.
func (c *Context[Tok]) Node(kind cst.Kind, body func()) {
	if c.reuse != nil {
		if sub, diags, ok := c.reuse.TryReuse(kind, c.Offset()); ok {
			c.flushTrivia()
			event.AppendSubtree(c.buf, sub)
			c.diags = append(c.diags, diags...)
			c.advanceBy(sub.TextLen())
			return
		}
	}
	c.StartNode(kind)
	body()
	c.FinishNode()
}

// WrapAt retroactively wraps everything emitted since mark in a node of
// kind, then runs body before closing it. Reuse is never consulted here:
// start_at wraps what has already been parsed, not a fresh span.
func (c *Context[Tok]) WrapAt(mark int, kind cst.Kind, body func()) {
	c.StartAt(mark, kind)
	body()
	c.FinishNode()
}

// ReuseHits reports how many subtrees this context's reuse cursor (if
// any) spliced in instead of reparsing.
func (c *Context[Tok]) ReuseHits() int {
	if c.reuse == nil {
		return 0
	}
	return c.reuse.Hits()
}

// Finish builds the final CST from the accumulated event stream and
// returns it alongside the collected diagnostics. rootKind and triviaKind
// are forwarded to event.BuildTree; interner, if non-nil, dedupes leaves.
func (c *Context[Tok]) Finish(rootKind, triviaKind cst.Kind, interner *cst.Interner) (*cst.CstNode, []langspec.Diagnostic) {
	root := event.BuildTree(c.buf.Events(), rootKind, triviaKind, interner)
	return root, c.diags
}
