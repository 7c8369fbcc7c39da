// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package langspec_test

import (
	"testing"

	"github.com/mdhender/syntaxdb/cst"
	"github.com/mdhender/syntaxdb/langspec"
)

const kindRoot cst.Kind = 1
const kindInt cst.Kind = 2

func TestCstStageEqualIgnoresNothingButValue(t *testing.T) {
	build := func() langspec.CstStage {
		n := cst.NewNode(kindRoot, []cst.Element{cst.NewToken(kindInt, "1")}, cst.NoTrivia)
		return langspec.CstStage{
			Cst:         n,
			Diagnostics: []langspec.Diagnostic{{Message: "m", Start: 0, End: 1}},
		}
	}
	a, b := build(), build()
	if !a.Equal(b) {
		t.Error("two stages built the same way should be Equal")
	}

	c := build()
	c.IsLexError = true
	if a.Equal(c) {
		t.Error("differing IsLexError should break equality")
	}

	d := build()
	d.Diagnostics = nil
	if a.Equal(d) {
		t.Error("differing diagnostics should break equality")
	}
}

func TestDiagnosticString(t *testing.T) {
	d := langspec.Diagnostic{Message: "bad token", Start: 3, End: 5}
	want := "3:5: bad token"
	if d.String() != want {
		t.Errorf("String() = %q, want %q", d.String(), want)
	}
}
