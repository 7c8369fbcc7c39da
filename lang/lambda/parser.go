// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package lambda

import (
	"github.com/mdhender/syntaxdb/parsectx"
)

func parseExpr(ctx *parsectx.Context[Token]) {
	mark := ctx.Mark()
	parseAtom(ctx)
	if !ctx.At(KindPlus) {
		return // nothing to wrap; the tombstone at mark is skipped unfilled
	}
	for ctx.At(KindPlus) {
		ctx.Bump()
		parseAtom(ctx)
	}
	ctx.WrapAt(mark, KindExprAdd, func() {})
}

func parseAtom(ctx *parsectx.Context[Token]) {
	switch {
	case ctx.At(KindLambda):
		ctx.Node(KindExprLambda, func() {
			ctx.Bump()
			if ctx.At(KindIdent) {
				ctx.Bump()
			} else {
				ctx.Expected("a parameter name")
				ctx.EmitErrorPlaceholder()
			}
			if ctx.At(KindDot) {
				ctx.Bump()
			} else {
				ctx.Expected("'.'")
				ctx.EmitErrorPlaceholder()
			}
			parseExpr(ctx)
		})
	case ctx.At(KindLParen):
		ctx.Node(KindExprParen, func() {
			ctx.Bump()
			parseExpr(ctx)
			if ctx.At(KindRParen) {
				ctx.Bump()
			} else {
				ctx.Expected("')'")
				if ctx.ErrorsExhausted() {
					ctx.ConsumeRemainder()
					return
				}
				ctx.EmitErrorPlaceholder()
			}
		})
	case ctx.At(KindIdent):
		ctx.Node(KindExprIdent, func() {
			ctx.Bump()
		})
	default:
		ctx.Expected("an expression")
		if ctx.ErrorsExhausted() {
			ctx.ConsumeRemainder()
			return
		}
		ctx.RecoverTo(KindPlus, KindRParen, KindDot)
	}
}
