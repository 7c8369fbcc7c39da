// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package lambda

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/mdhender/syntaxdb/cst"
)

// Token is a single lexed token: a kind plus its exact source slice. It
// satisfies langspec.Token by method set alone.
type Token struct {
	kind cst.Kind
	text string
}

func (t Token) Kind() cst.Kind { return t.kind }
func (t Token) Text() string   { return t.text }

// lex tokenizes src in full, including trivia, terminated by a synthetic
// EOF token. It returns ok=false with a message on the first unrecognized
// rune; lex never partially succeeds.
func lex(src string) (tokens []Token, lexErrMessage string, ok bool) {
	i := 0
	n := len(src)
	for i < n {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			start := i
			for i < n {
				r2, size2 := utf8.DecodeRuneInString(src[i:])
				if r2 == ' ' || r2 == '\t' || r2 == '\n' || r2 == '\r' {
					i += size2
					continue
				}
				break
			}
			tokens = append(tokens, Token{KindWhitespace, src[start:i]})
		case r == 'λ' || r == '\\':
			tokens = append(tokens, Token{KindLambda, src[i : i+size]})
			i += size
		case r == '.':
			tokens = append(tokens, Token{KindDot, "."})
			i += size
		case r == '+':
			tokens = append(tokens, Token{KindPlus, "+"})
			i += size
		case r == '(':
			tokens = append(tokens, Token{KindLParen, "("})
			i += size
		case r == ')':
			tokens = append(tokens, Token{KindRParen, ")"})
			i += size
		case unicode.IsLetter(r):
			start := i
			for i < n {
				r2, size2 := utf8.DecodeRuneInString(src[i:])
				if unicode.IsLetter(r2) || unicode.IsDigit(r2) || r2 == '_' {
					i += size2
					continue
				}
				break
			}
			tokens = append(tokens, Token{KindIdent, src[start:i]})
		default:
			return nil, fmt.Sprintf("unexpected character %q at byte offset %d", r, i), false
		}
	}
	tokens = append(tokens, Token{KindEOF, ""})
	return tokens, "", true
}
