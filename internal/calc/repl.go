// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/nkessler/bignum"
)

// Options configures a REPL. The zero value writes error diagnostics in red
// and disables tracing.
type Options struct {
	// Verbose enables per-expression tracing (parsed value, timing) through
	// a zerolog logger, off by default since the calculator has no other use
	// for structured logging (spec.md's §5 has no metrics or tracing needs).
	Verbose bool
	// NoColor disables ANSI coloring of error diagnostics, for non-terminal
	// output or --no-color.
	NoColor bool
}

// REPL reads expressions from In, one per line, writes each result followed
// by a blank line to Out, and reports errors to Err. It stops at end of
// input or at the first error, matching original_source/calc.c's
// diagnose-and-exit(1) behavior: there is no error recovery within a run.
type REPL struct {
	parser *Parser
	out    io.Writer
	err    io.Writer
	log    zerolog.Logger
	red    *color.Color
}

// New returns a REPL reading from in and writing to out/errOut.
func New(in io.Reader, out, errOut io.Writer, opts Options) *REPL {
	red := color.New(color.FgRed)
	if opts.NoColor {
		red.DisableColor()
	}

	logLevel := zerolog.Disabled
	if opts.Verbose {
		logLevel = zerolog.DebugLevel
	}
	log := zerolog.New(errOut).Level(logLevel).With().Timestamp().Logger()

	return &REPL{
		parser: NewParser(NewLexer(in)),
		out:    out,
		err:    errOut,
		log:    log,
		red:    red,
	}
}

// Run evaluates expressions until end of input or an error, returning the
// first error encountered (nil on a clean end of input). The caller is
// expected to translate a non-nil return into a nonzero process exit, per
// spec.md §7's diagnostic-to-stderr / nonzero-exit contract.
func (r *REPL) Run() error {
	for {
		result, ok, err := r.parser.Next()
		if err != nil {
			r.reportError(err)
			return err
		}
		if !ok {
			return nil
		}

		r.log.Debug().Str("result", result.String()).Msg("evaluated expression")
		fmt.Fprintln(r.out, result.String())
		fmt.Fprintln(r.out)
	}
}

// EvalOne evaluates a single expression string (with or without a trailing
// newline) and returns its decimal result, for --expr-style non-interactive
// use. It does not print anything itself.
func EvalOne(expr string) (string, error) {
	if len(expr) == 0 || expr[len(expr)-1] != '\n' {
		expr += "\n"
	}
	parser := NewParser(NewLexer(strings.NewReader(expr)))
	result, ok, err := parser.Next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New("calc: empty expression")
	}
	return result.String(), nil
}

// errorKinder is satisfied by bignum's structured error types, letting
// reportError dispatch on ErrorKind instead of enumerating concrete types.
type errorKinder interface {
	Kind() bignum.ErrorKind
}

func (r *REPL) reportError(err error) {
	msg := err.Error()

	switch e := err.(type) {
	case errorKinder:
		r.log.Debug().Str("kind", e.Kind().String()).Msg(msg)
	case *LexError:
		r.log.Debug().Str("phase", "lex").Msg(msg)
	case *ParseError:
		r.log.Debug().Str("phase", "parse").Msg(msg)
	}

	r.red.Fprintf(r.err, "error: %s\n", msg)
}
