// Package lox wires the scanner, parser, resolver, and interpreter into
// the single-source-unit pipeline shared by file execution and the REPL
// (spec.md §6), grounded in sam-decook-lox's top-level run() driver.
package lox

import (
	"io"
	"time"

	"github.com/loxlang/golox/interpreter"
	"github.com/loxlang/golox/loxerr"
	"github.com/loxlang/golox/parser"
	"github.com/loxlang/golox/resolver"
	"github.com/loxlang/golox/scanner"
)

// Lox owns one long-lived Interpreter (so globals and clock's epoch persist
// across REPL lines) and a Reporter whose flags the caller inspects after
// each Run to decide the process exit code (spec.md §6).
type Lox struct {
	Reporter *loxerr.Reporter
	interp   *interpreter.Interpreter
}

// SetTrace turns on per-statement execution tracing to w (nil disables it).
func (l *Lox) SetTrace(w io.Writer) {
	l.interp.SetTrace(w)
}

func New(stdout io.Writer, noColor bool) *Lox {
	reporter := loxerr.New(stdout)
	reporter.NoColor = noColor
	start := time.Now()
	interp := interpreter.New(reporter, stdout, func() float64 {
		return time.Since(start).Seconds()
	})
	return &Lox{Reporter: reporter, interp: interp}
}

// Run scans, parses, resolves, and (if no static error occurred)
// interprets source. It never stops early on a static error within a
// single stage; each stage still runs against whatever partial result the
// prior stage produced, matching the book's "keep going to report more
// errors" behavior, except resolution and execution are skipped once any
// static error has been recorded.
func (l *Lox) Run(source string) {
	l.Reporter.Reset()

	sc := scanner.New(source, l.Reporter)
	tokens := sc.Scan()

	p := parser.New(tokens, l.Reporter)
	stmts := p.Parse()

	if l.Reporter.HadStaticError {
		return
	}

	res := resolver.New(l.Reporter)
	locals := res.Resolve(stmts)

	if l.Reporter.HadStaticError {
		return
	}

	l.interp.Interpret(stmts, locals)
}
