// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package lambda

import (
	"github.com/mdhender/syntaxdb/cst"
	"github.com/mdhender/syntaxdb/edit"
	"github.com/mdhender/syntaxdb/event"
	"github.com/mdhender/syntaxdb/langspec"
	"github.com/mdhender/syntaxdb/parsectx"
	"github.com/mdhender/syntaxdb/reuse"
	"github.com/mdhender/syntaxdb/syntax"
)

// Language implements incremental.Language[*Expr]. Unlike the bare
// parse_source(source) -> CstStage contract package incremental sees, a
// Language value remembers the previous source and CstStage it produced,
// so each reparse after the first builds a reuse.Cursor from the edit
// between the two and hands it to the parser context — entirely as an
// implementation detail the pipeline never needs to know about.
type Language struct {
	havePrior     bool
	priorSource   string
	priorStage    langspec.CstStage
	lastReuseHits int
}

// New returns a fresh Language, with no prior parse to reuse from.
func New() *Language {
	return &Language{}
}

// LastReuseHits reports how many subtrees the most recent ParseSource
// call adopted from the prior parse instead of reparsing.
func (l *Language) LastReuseHits() int { return l.lastReuseHits }

func (l *Language) ParseSource(source string) langspec.CstStage {
	var stage langspec.CstStage
	if l.havePrior {
		stage = l.parseIncremental(source)
	} else {
		stage = l.parseFromScratch(source)
	}
	l.priorSource = source
	l.priorStage = stage
	l.havePrior = true
	return stage
}

func (l *Language) ToAST(root *syntax.Node) *Expr {
	return toAST(root)
}

func (l *Language) OnLexError(firstDiagnostic string) *Expr {
	return &Expr{Tag: ExprError}
}

func (l *Language) parseIncremental(newSource string) langspec.CstStage {
	if l.priorStage.IsLexError {
		// Nothing reusable in a minimal error root; reparse clean.
		return l.parseFromScratch(newSource)
	}
	tokens, lexMsg, ok := lex(newSource)
	if !ok {
		return lexFailure(lexMsg)
	}
	ed := diffEdit(l.priorSource, newSource)
	cursor := reuse.NewCursor[Token](langSpec{}, l.priorStage.Cst, l.priorStage.Diagnostics, ed, tokens)
	return l.runParse(tokens, cursor)
}

func (l *Language) parseFromScratch(source string) langspec.CstStage {
	tokens, lexMsg, ok := lex(source)
	if !ok {
		return lexFailure(lexMsg)
	}
	return l.runParse(tokens, nil)
}

func (l *Language) runParse(tokens []Token, cursor *reuse.Cursor[Token]) langspec.CstStage {
	ctx := parsectx.New[Token](langSpec{}, tokens, cursor)
	ctx.Node(KindRoot, func() {
		parseExpr(ctx)
		if !ctx.AtEOF() {
			// parseExpr's own recovery can stop short of the end of input
			// (e.g. unexpected input it doesn't know how to resume from);
			// wrap whatever is left so the parse still covers every byte.
			ctx.Expected("end of input")
			ctx.ConsumeRemainder()
		}
	})
	root, diags := ctx.Finish(KindRoot, KindWhitespace, cst.NewInterner())
	l.lastReuseHits = ctx.ReuseHits()
	return langspec.CstStage{Cst: root, Diagnostics: diags, IsLexError: false}
}

func lexFailure(message string) langspec.CstStage {
	return langspec.CstStage{
		Cst:         event.BuildTree(nil, KindRoot, KindWhitespace, nil),
		Diagnostics: []langspec.Diagnostic{{Message: message}},
		IsLexError:  true,
	}
}

// diffEdit derives the single contiguous Edit between two full source
// strings by trimming their common prefix and suffix — the simplest
// possible "what changed" for a demo language whose callers hand
// ParseSource a whole new document rather than an incremental patch.
func diffEdit(oldSrc, newSrc string) edit.Edit {
	n := len(oldSrc)
	if len(newSrc) < n {
		n = len(newSrc)
	}
	p := 0
	for p < n && oldSrc[p] == newSrc[p] {
		p++
	}
	oldEnd, newEnd := len(oldSrc), len(newSrc)
	for oldEnd > p && newEnd > p && oldSrc[oldEnd-1] == newSrc[newEnd-1] {
		oldEnd--
		newEnd--
	}
	return edit.Edit{Start: p, OldLen: oldEnd - p, NewLen: newEnd - p}
}
