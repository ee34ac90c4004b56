// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"errors"
	"strings"
	"testing"

	"github.com/nkessler/bignum"
)

func evalLine(t *testing.T, line string) (string, error) {
	t.Helper()
	p := NewParser(NewLexer(strings.NewReader(line)))
	result, ok, err := p.Next()
	if err != nil {
		return "", err
	}
	if !ok {
		t.Fatalf("expected a result for %q", line)
	}
	return result.String(), nil
}

func TestParserArithmetic(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1\n", "1"},
		{"1 + 2\n", "3"},
		{"(123 + 456) * 789\n", "457131"},
		{"2 * 3 + 4\n", "10"},
		{"2 + 3 * 4\n", "14"},
		{"-5\n", "-5"},
		{"-(2 + 3)\n", "-5"},
		{"--5\n", "5"},
		{"10 - 3 - 2\n", "5"},
		{"100 / 3\n", "33"},
		{"-17 / 5\n", "-3"},
		{"-17 - 5 * -2 / -2 - -3\n", "-19"},
		{"99999999999999999999 * 99999999999999999999\n", "9999999999999999999800000000000000000001"},
	}
	for _, tt := range tests {
		got, err := evalLine(t, tt.expr)
		if err != nil {
			t.Fatalf("%q: %v", tt.expr, err)
		}
		if got != tt.want {
			t.Errorf("%q = %s, want %s", tt.expr, got, tt.want)
		}
	}
}

func TestParserEndOfInput(t *testing.T) {
	p := NewParser(NewLexer(strings.NewReader("")))
	_, ok, err := p.Next()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected ok=false at end of input")
	}
}

func TestParserSyntaxErrors(t *testing.T) {
	tests := []string{
		"1 +\n",
		"(1 + 2\n",
		")\n",
		"1 2\n",
	}
	for _, expr := range tests {
		if _, err := evalLine(t, expr); err == nil {
			t.Errorf("%q should fail to parse", expr)
		} else {
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("%q error type = %T, want *ParseError", expr, err)
			}
		}
	}
}

func TestParserDivisionByZero(t *testing.T) {
	_, err := evalLine(t, "1 / 0\n")
	if err == nil {
		t.Fatal("expected division by zero error")
	}
	var divErr *bignum.DivisionByZeroError
	if !errors.As(err, &divErr) {
		t.Errorf("error type = %T, want *bignum.DivisionByZeroError", err)
	}
}

func TestParserMultipleExpressions(t *testing.T) {
	p := NewParser(NewLexer(strings.NewReader("1 + 1\n2 * 2\n")))

	first, ok, err := p.Next()
	if err != nil || !ok {
		t.Fatalf("first expression: ok=%v err=%v", ok, err)
	}
	if first.String() != "2" {
		t.Errorf("first = %s, want 2", first.String())
	}

	second, ok, err := p.Next()
	if err != nil || !ok {
		t.Fatalf("second expression: ok=%v err=%v", ok, err)
	}
	if second.String() != "4" {
		t.Errorf("second = %s, want 4", second.String())
	}

	_, ok, err = p.Next()
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected end of input after two expressions")
	}
}
