// Package compiler wires the front-end stages — scan, parse, control-flow
// analysis, type check — into the single pipeline every outer surface
// (the CLI, the REPL, the test suite) drives a source buffer through
// (§4, §6).
package compiler

import (
	"github.com/nomisfailla/arctic/internal/ast"
	"github.com/nomisfailla/arctic/internal/cfa"
	"github.com/nomisfailla/arctic/internal/checker"
	"github.com/nomisfailla/arctic/internal/diag"
	"github.com/nomisfailla/arctic/internal/lexer"
	"github.com/nomisfailla/arctic/internal/parser"
	"github.com/nomisfailla/arctic/internal/token"
)

// Result carries every stage's output so a caller that wants to inspect
// tokens or the AST directly (the CLI's --dump-tokens/--dump-ast flags)
// doesn't have to re-run the pipeline by hand.
type Result struct {
	Tokens      []token.Token
	Module      ast.Module
	Diagnostics diag.List
}

// Compile runs the full pipeline over one named source buffer. Each
// stage's diagnostics are appended in order. The parser runs even if
// scanning reported errors; the control-flow analyzer and the checker
// are skipped whenever the parser reported a diagnostic.
func Compile(file string, data []byte) Result {
	var r Result

	toks, lexDiags := lexer.Scan(file, data)
	r.Tokens = toks
	r.Diagnostics = append(r.Diagnostics, lexDiags...)

	mod, parseDiags := parser.ParseModule(file, toks)
	r.Module = mod
	r.Diagnostics = append(r.Diagnostics, parseDiags...)
	if parseDiags.HasErrors() {
		return r
	}

	r.Diagnostics = append(r.Diagnostics, cfa.Analyze(file, mod)...)
	r.Diagnostics = append(r.Diagnostics, checker.Check(file, mod)...)

	return r
}
