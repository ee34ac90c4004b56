// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"fmt"

	"github.com/nkessler/bignum"
)

// ParseError reports a syntax error: an unexpected token where the grammar
// required something else.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "calc: " + e.Msg }

// Parser implements the recursive-descent grammar from
// original_source/calc.c:
//
//	expr   = sum EOL | End
//	sum    = term (('+' | '-') term)*
//	term   = factor (('*' | '/') factor)*
//	factor = '-' factor | '(' sum ')' | number
//
// Each call to Next parses one line of input up to and including its
// terminating newline, leaving the parser positioned to read the next line.
type Parser struct {
	lex *Lexer
	cur Token
}

// NewParser returns a Parser reading tokens from lex.
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

func (p *Parser) advance() error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

// Next parses the next expression. ok is false with a nil error when input
// is exhausted (matching original_source's expr() returning NULL at EOF).
func (p *Parser) Next() (result *bignum.Int, ok bool, err error) {
	if err := p.advance(); err != nil {
		return nil, false, err
	}
	if p.cur.Kind == End {
		return nil, false, nil
	}

	x, err := p.sum()
	if err != nil {
		return nil, false, err
	}
	if p.cur.Kind != EOL {
		return nil, false, &ParseError{Msg: "trailing character(s)"}
	}
	return x, true, nil
}

func (p *Parser) sum() (*bignum.Int, error) {
	x, err := p.term()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur.Kind {
		case Add:
			if err := p.advance(); err != nil {
				return nil, err
			}
			y, err := p.term()
			if err != nil {
				return nil, err
			}
			x = bignum.Add(x, y)
		case Sub:
			if err := p.advance(); err != nil {
				return nil, err
			}
			y, err := p.term()
			if err != nil {
				return nil, err
			}
			x = bignum.Sub(x, y)
		default:
			return x, nil
		}
	}
}

func (p *Parser) term() (*bignum.Int, error) {
	x, err := p.factor()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur.Kind {
		case Mul:
			if err := p.advance(); err != nil {
				return nil, err
			}
			y, err := p.factor()
			if err != nil {
				return nil, err
			}
			x = bignum.Mul(x, y)
		case Div:
			if err := p.advance(); err != nil {
				return nil, err
			}
			y, err := p.factor()
			if err != nil {
				return nil, err
			}
			x, err = bignum.Div(x, y)
			if err != nil {
				return nil, err
			}
		default:
			return x, nil
		}
	}
}

func (p *Parser) factor() (*bignum.Int, error) {
	switch p.cur.Kind {
	case Sub:
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.factor()
		if err != nil {
			return nil, err
		}
		return bignum.Neg(x), nil
	case LParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		x, err := p.sum()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != RParen {
			return nil, &ParseError{Msg: "expected ')'"}
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return x, nil
	case Num:
		x := p.cur.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
		return x, nil
	default:
		return nil, &ParseError{Msg: fmt.Sprintf("expected '-', number or '(', got %s", p.cur.Kind)}
	}
}
