// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package event

import "github.com/mdhender/syntaxdb/cst"

// Tag identifies the shape of an Event.
type Tag int

const (
	StartNode Tag = iota
	FinishNode
	Token
	Tombstone
)

// Event is one entry in the flat event stream a parser context emits.
// NodeKind is populated for StartNode; TokenKind and Text for Token. A
// Tombstone carries no payload until StartAt overwrites it in place.
type Event struct {
	Tag       Tag
	NodeKind  cst.Kind
	TokenKind cst.Kind
	Text      string
}
