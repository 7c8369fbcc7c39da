// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package incremental

import (
	"github.com/google/uuid"

	"github.com/mdhender/syntaxdb/langspec"
	"github.com/mdhender/syntaxdb/reactive"
	"github.com/mdhender/syntaxdb/syntax"
)

// Language is the type-erased surface a ParserDb drives. Implementations
// keep their own token and kind types behind these three methods (see
// lang/lambda's Language), so ParserDb itself is generic only over Ast.
type Language[Ast reactive.Equatable[Ast]] interface {
	// ParseSource lexes and parses source from scratch, never aborting:
	// a lex failure yields IsLexError with at least one diagnostic and a
	// minimal valid CST; syntactic errors yield a best-effort recovery
	// CST with diagnostics populated; success yields empty diagnostics.
	ParseSource(source string) langspec.CstStage
	// ToAST lowers a positioned CST into the language's AST. Equality on
	// the returned value must be structure-only: positions and synthetic
	// IDs must not participate, or backdating loses most of its benefit.
	ToAST(root *syntax.Node) Ast
	// OnLexError builds the AST term_memo routes to when the current
	// CstStage is a lex failure, given its first diagnostic's message.
	OnLexError(firstDiagnostic string) Ast
}

// sourceText is source_text's value type: a plain string wrapped to
// satisfy reactive.Equatable.
type sourceText string

func (s sourceText) Equal(o sourceText) bool { return s == o }

// ParserDb is one document session: a source signal and the two-memo
// pipeline (cst_memo, term_memo) derived from it. Exactly one
// Runtime backs each ParserDb; nothing about it is safe for concurrent
// use, matching the single-threaded, cooperative scheduling model the
// core specifies.
type ParserDb[Ast reactive.Equatable[Ast]] struct {
	sessionID string
	rt        *reactive.Runtime
	source    *reactive.Signal[sourceText]
	cstMemo   *reactive.Memo[langspec.CstStage]
	termMemo  *reactive.Memo[Ast]
	lang      Language[Ast]
}

// New returns a ParserDb seeded with source, driven by lang.
func New[Ast reactive.Equatable[Ast]](source string, lang Language[Ast]) *ParserDb[Ast] {
	rt := reactive.NewRuntime()
	sig := reactive.NewSignal[sourceText](rt, sourceText(source))

	db := &ParserDb[Ast]{
		sessionID: uuid.NewString(),
		rt:        rt,
		source:    sig,
		lang:      lang,
	}
	db.cstMemo = reactive.NewMemo[langspec.CstStage](rt, []reactive.Revisioned{sig}, func() langspec.CstStage {
		return lang.ParseSource(string(db.source.Get()))
	})
	db.termMemo = reactive.NewMemo[Ast](rt, []reactive.Revisioned{db.cstMemo}, func() Ast {
		stage := db.cstMemo.Get()
		if stage.IsLexError {
			msg := ""
			if len(stage.Diagnostics) > 0 {
				msg = stage.Diagnostics[0].Message
			}
			return lang.OnLexError(msg)
		}
		return lang.ToAST(syntax.NewRoot(stage.Cst))
	})
	return db
}

// SessionID identifies this ParserDb for logging and correlation; it has
// no bearing on pipeline behavior.
func (db *ParserDb[Ast]) SessionID() string { return db.sessionID }

// Revision returns the runtime's current global revision counter.
func (db *ParserDb[Ast]) Revision() uint64 { return db.rt.Revision() }

// CstChangedAt returns the revision at which cst_memo's value last
// actually changed. Together with TermChangedAt it lets a consumer
// observe backdating: a reparse that produced an equal stage leaves the
// value untouched.
func (db *ParserDb[Ast]) CstChangedAt() uint64 { return db.cstMemo.ChangedAt() }

// TermChangedAt returns the revision at which term_memo's value last
// actually changed.
func (db *ParserDb[Ast]) TermChangedAt() uint64 { return db.termMemo.ChangedAt() }

// SetSource installs s as the new source. If s equals the current
// source (string equality), this is a complete no-op — it never touches
// the runtime's revision counter, not just the memo cache — so an editor
// calling SetSource on every keystroke pays nothing for keystrokes that
// happen not to change the buffer (e.g. an undo that round-trips).
func (db *ParserDb[Ast]) SetSource(s string) {
	if db.source.Get() == sourceText(s) {
		return
	}
	db.source.Set(sourceText(s))
}

// Cst returns the current CstStage, forcing cst_memo only if the source
// has changed since it was last computed.
func (db *ParserDb[Ast]) Cst() langspec.CstStage {
	return db.cstMemo.Get()
}

// Diagnostics returns a defensive copy of the current CstStage's
// diagnostics, so callers mutating the result cannot corrupt the cache.
func (db *ParserDb[Ast]) Diagnostics() []langspec.Diagnostic {
	stage := db.cstMemo.Get()
	out := make([]langspec.Diagnostic, len(stage.Diagnostics))
	copy(out, stage.Diagnostics)
	return out
}

// Term forces term_memo and returns the resulting AST. Lex-error routing
// is based exclusively on CstStage.IsLexError.
func (db *ParserDb[Ast]) Term() Ast {
	return db.termMemo.Get()
}
