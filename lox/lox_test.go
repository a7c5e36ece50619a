package lox

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestRunPrintsStdout(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, true)
	l.Run(`print "hello, world";`)
	if l.Reporter.HadStaticError || l.Reporter.HadRuntimeError {
		t.Fatalf("unexpected error flags")
	}
	if got, want := out.String(), "hello, world\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunResetsErrorFlagsBetweenCalls(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, true)
	l.Run(`this is not lox;;; (`)
	if !l.Reporter.HadStaticError {
		t.Fatal("expected a static error on malformed input")
	}
	out.Reset()
	l.Run(`print 1;`)
	if l.Reporter.HadStaticError {
		t.Fatal("expected the static error flag to reset on the next Run call")
	}
	if got, want := out.String(), "1\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunSkipsExecutionOnStaticError(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, true)
	l.Run(`print 1 +;`)
	if out.String() != "" {
		t.Fatalf("expected no program output when parsing fails, got %q", out.String())
	}
}

func TestGlobalsPersistAcrossRunCalls(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, true)
	l.Run(`var counter = 0;`)
	l.Run(`counter = counter + 1; print counter;`)
	if got, want := out.String(), "1\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSetTraceWritesOneLinePerStatement(t *testing.T) {
	var out, traceOut bytes.Buffer
	l := New(&out, true)
	l.SetTrace(&traceOut)
	l.Run(`print 1; print 2;`)
	if got, want := strings.Count(traceOut.String(), "[trace]"), 2; got != want {
		t.Fatalf("expected %d trace lines, got %d (%q)", want, got, traceOut.String())
	}
}

func TestSetTraceNilDisablesTracing(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, true)
	l.SetTrace(io.Discard)
	l.SetTrace(nil)
	l.Run(`print 1;`)
	if got, want := out.String(), "1\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
