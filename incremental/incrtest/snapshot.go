// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

//go:build test || !release

// Package incrtest provides helpers for pipeline golden snapshot tests.
// Keep this lightweight and test-focused. Not for production use.
//
// Purpose: turn a langspec.CstStage into a compact, deterministic JSON
// snapshot of its tree shape, spans, and diagnostics.
package incrtest

import (
	"encoding/json"
	"sort"

	"github.com/mdhender/syntaxdb/langspec"
	"github.com/mdhender/syntaxdb/syntax"
)

type nodeSnap struct {
	Kind     int32 `json:"kind"`
	Start    int   `json:"start"`
	End      int   `json:"end"`
	Children []any `json:"children,omitempty"`
}

type tokenSnap struct {
	Kind  int32  `json:"kind"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type diagSnap struct {
	Message string `json:"message"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

type stageSnap struct {
	IsLexError  bool       `json:"isLexError"`
	Tree        any        `json:"tree"`
	Diagnostics []diagSnap `json:"diagnostics"`
}

// Snapshot marshals stage to pretty JSON for goldens. Diagnostics are
// sorted by (start, message) first so snapshot output is stable
// regardless of the order a grammar happened to append them in.
func Snapshot(stage langspec.CstStage) ([]byte, error) {
	s := stageSnap{IsLexError: stage.IsLexError}
	if stage.Cst != nil {
		s.Tree = elementOf(syntax.NewRoot(stage.Cst))
	}

	diags := append([]langspec.Diagnostic(nil), stage.Diagnostics...)
	sort.Slice(diags, func(i, j int) bool {
		if diags[i].Start != diags[j].Start {
			return diags[i].Start < diags[j].Start
		}
		return diags[i].Message < diags[j].Message
	})
	for _, d := range diags {
		s.Diagnostics = append(s.Diagnostics, diagSnap{Message: d.Message, Start: d.Start, End: d.End})
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	out = append(out, '\n')
	return out, nil
}

func elementOf(e syntax.Element) any {
	switch v := e.(type) {
	case *syntax.Token:
		return tokenSnap{Kind: int32(v.Kind()), Text: v.Text(), Start: v.Start(), End: v.End()}
	case *syntax.Node:
		n := nodeSnap{Kind: int32(v.Kind()), Start: v.Start(), End: v.End()}
		for _, c := range v.AllChildren() {
			n.Children = append(n.Children, elementOf(c))
		}
		return n
	default:
		return nil
	}
}
