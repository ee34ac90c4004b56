// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc implements the tokenizer, recursive-descent parser and REPL
// driver for the bigcalc expression language: signed integer arithmetic
// over +, -, *, /, unary minus and parentheses, evaluated with
// github.com/nkessler/bignum.
//
// Grounded on original_source/calc.c's next_token/expr/sum/term/factor,
// restructured into the Lexer/Parser split idiomatic for a Go
// tokenizer-then-parser pipeline (compare
// vovakirdan-surge/internal/driver's tokenize-then-parse stages).
package calc

import (
	"bufio"
	"fmt"
	"io"

	"github.com/nkessler/bignum"
)

// TokenKind identifies the lexical category of a Token.
type TokenKind int

const (
	Add TokenKind = iota
	Sub
	Mul
	Div
	LParen
	RParen
	Num
	EOL
	End
)

func (k TokenKind) String() string {
	switch k {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Num:
		return "number"
	case EOL:
		return "end of line"
	case End:
		return "end of input"
	default:
		return "unknown token"
	}
}

// Token is a single lexical unit. Value is populated only when Kind == Num.
type Token struct {
	Kind  TokenKind
	Value *bignum.Int
}

// LexError reports a tokenization failure: an unexpected character or a
// numeral literal longer than MaxLiteralDigits.
type LexError struct {
	Msg string
}

func (e *LexError) Error() string { return "calc: " + e.Msg }

// Lexer reads tokens from an io.Reader one byte at a time, matching
// original_source/calc.c's getchar/ungetc-based scanner.
type Lexer struct {
	r *bufio.Reader

	// MaxLiteralDigits bounds how many consecutive digit characters a
	// single numeral token may contain, mirroring calc.c's fixed
	// BUFFER_SIZE-byte scan buffer. Defaults to bignum.MaxDecimalDigits.
	MaxLiteralDigits int
}

// NewLexer returns a Lexer reading from r.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r), MaxLiteralDigits: bignum.MaxDecimalDigits}
}

// Next reads and returns the next token, or a *LexError on malformed input.
// Once it returns a Token with Kind == End, further calls keep returning
// the same End token.
func (l *Lexer) Next() (Token, error) {
	c, err := l.skipSpaceAndRead()
	if err != nil {
		if err == io.EOF {
			return Token{Kind: End}, nil
		}
		return Token{}, err
	}

	switch c {
	case '+':
		return Token{Kind: Add}, nil
	case '-':
		return Token{Kind: Sub}, nil
	case '*':
		return Token{Kind: Mul}, nil
	case '/':
		return Token{Kind: Div}, nil
	case '(':
		return Token{Kind: LParen}, nil
	case ')':
		return Token{Kind: RParen}, nil
	case '\n':
		return Token{Kind: EOL}, nil
	}

	if c >= '0' && c <= '9' {
		return l.scanNumber(c)
	}

	return Token{}, &LexError{Msg: fmt.Sprintf("unexpected character: %q", c)}
}

func (l *Lexer) skipSpaceAndRead() (byte, error) {
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if c != ' ' && c != '\t' {
			return c, nil
		}
	}
}

func (l *Lexer) scanNumber(first byte) (Token, error) {
	digits := make([]byte, 0, 32)
	digits = append(digits, first)

	for {
		c, err := l.r.ReadByte()
		if err != nil {
			break
		}
		if c < '0' || c > '9' {
			_ = l.r.UnreadByte()
			break
		}
		if len(digits) >= l.MaxLiteralDigits {
			return Token{}, &LexError{Msg: "numeral too long"}
		}
		digits = append(digits, c)
	}

	v, err := bignum.NewFromDecimal(string(digits))
	if err != nil {
		return Token{}, &LexError{Msg: err.Error()}
	}
	return Token{Kind: Num, Value: v}, nil
}
