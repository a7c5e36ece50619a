// Package loxerr implements the process-wide error reporter shared by the
// scanner, parser, resolver, and interpreter, per spec.md §7/§9: "model as
// a small mutable reporter object threaded through all stages rather than
// true global state; the driver owns its lifetime and reads it at end of
// run."
package loxerr

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/loxlang/golox/token"
)

// RuntimeError is raised by the interpreter and unwinds to the top level,
// carrying the offending token for line reporting (spec.md §7.2).
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func NewRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// Reporter accumulates the two process-wide flags from spec.md §3 and
// writes formatted diagnostics to an output stream.
type Reporter struct {
	Out              io.Writer
	HadStaticError   bool
	HadRuntimeError  bool
	NoColor          bool
}

func New(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

// Reset clears both flags. The REPL calls this between lines (spec.md §6).
func (r *Reporter) Reset() {
	r.HadStaticError = false
	r.HadRuntimeError = false
}

// Error reports a static error with no token context (scanner character
// errors, unterminated strings).
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAt reports a static error located at a token, using the "at end" /
// "at 'lexeme'" forms from spec.md §6.
func (r *Reporter) ErrorAt(tok token.Token, message string) {
	if tok.Type == token.EOF {
		r.report(tok.Line, " at end", message)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	r.HadStaticError = true
	text := fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
	if r.NoColor || color.NoColor {
		fmt.Fprintln(r.Out, text)
	} else {
		fmt.Fprintln(r.Out, color.RedString(text))
	}
}

// RuntimeErrorOccurred reports a runtime error per spec.md §6's
// "MESSAGE\n[line L]" form and sets HadRuntimeError.
func (r *Reporter) RuntimeErrorOccurred(err *RuntimeError) {
	r.HadRuntimeError = true
	if r.NoColor || color.NoColor {
		fmt.Fprintln(r.Out, err.Error())
	} else {
		fmt.Fprintln(r.Out, color.RedString(err.Error()))
	}
}
