// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package lambda

import (
	"testing"

	"github.com/mdhender/syntaxdb/cst"
)

func TestLexProducesTrailingEOF(t *testing.T) {
	tokens, _, ok := lex("x")
	if !ok {
		t.Fatal("lex should succeed on a single identifier")
	}
	if len(tokens) != 2 {
		t.Fatalf("tokens = %v, want [ident, eof]", tokens)
	}
	if tokens[1].Kind() != KindEOF || tokens[1].Text() != "" {
		t.Errorf("final token = %+v, want zero-width EOF", tokens[1])
	}
}

func TestLexRecognizesEveryKind(t *testing.T) {
	tokens, msg, ok := lex("λ foo . + ( ) \\")
	if !ok {
		t.Fatalf("lex failed: %s", msg)
	}
	want := []cst.Kind{
		KindLambda, KindWhitespace,
		KindIdent, KindWhitespace,
		KindDot, KindWhitespace,
		KindPlus, KindWhitespace,
		KindLParen, KindWhitespace,
		KindRParen, KindWhitespace,
		KindLambda, KindEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(tokens), len(want), tokens)
	}
	for i := range want {
		if tokens[i].Kind() != want[i] {
			t.Errorf("kind[%d] = %v, want %v", i, tokens[i].Kind(), want[i])
		}
	}
}

func TestLexIdentAllowsDigitsAndUnderscore(t *testing.T) {
	tokens, _, ok := lex("x_1")
	if !ok || len(tokens) != 2 || tokens[0].Text() != "x_1" {
		t.Fatalf("tokens = %v, ok = %v, want single ident %q", tokens, ok, "x_1")
	}
}

func TestLexRejectsUnknownCharacter(t *testing.T) {
	_, msg, ok := lex("x @ y")
	if ok {
		t.Fatal("expected lex to fail on '@'")
	}
	if msg == "" {
		t.Error("expected a non-empty lex error message")
	}
}

func TestLexCollapsesRunsOfWhitespace(t *testing.T) {
	tokens, _, ok := lex("x   y")
	if !ok {
		t.Fatal("lex should succeed")
	}
	if tokens[1].Kind() != KindWhitespace || tokens[1].Text() != "   " {
		t.Errorf("whitespace token = %+v, want a single run of 3 spaces", tokens[1])
	}
}
