package compiler_test

import (
	"testing"

	"github.com/nomisfailla/arctic/internal/compiler"
)

func TestCompileAcceptsAWellFormedProgram(t *testing.T) {
	result := compiler.Compile("test", []byte(`
func fib(n: i64): i64 {
	if n < 2 {
		return n;
	} else {
		return fib(n - 1) + fib(n - 2);
	}
}
`))
	if result.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
	if len(result.Module.Declarations) != 1 {
		t.Fatalf("got %d declarations, want 1", len(result.Module.Declarations))
	}
}

func TestCompileStopsAtParseErrorsBeforeChecking(t *testing.T) {
	result := compiler.Compile("test", []byte(`func f(: none {}`))
	if len(result.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want exactly the one syntactic error: %v", len(result.Diagnostics), result.Diagnostics)
	}
	if result.Diagnostics[0].Kind.String() != "syntactic" {
		t.Fatalf("diagnostic kind = %s, want syntactic", result.Diagnostics[0].Kind)
	}
}

func TestCompileRunsControlFlowAndTypeCheckingTogether(t *testing.T) {
	result := compiler.Compile("test", []byte(`
func f(): i64 {
	let x: bool = 1;
}
`))
	if len(result.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want one type-mismatch and one missing-return: %v", len(result.Diagnostics), result.Diagnostics)
	}
}

func TestCompileReportsLexicalErrorsButStillAttemptsTheRestOfThePipeline(t *testing.T) {
	result := compiler.Compile("test", []byte("func f(): none { @ }"))
	if !result.Diagnostics.HasErrors() {
		t.Fatalf("expected at least the lexical diagnostic for '@'")
	}
}
