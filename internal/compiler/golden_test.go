package compiler_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/nomisfailla/arctic/internal/compiler"
	"github.com/nomisfailla/arctic/internal/source"
)

// TestDiagnosticRendering pins the on-disk rendering of a program that
// fails both the control-flow analyzer and the type checker against a
// golden file under testdata.
func TestDiagnosticRendering(t *testing.T) {
	src := "func f(): i64 {\nlet x: bool = 1;\n}\n"
	result := compiler.Compile("test", []byte(src))

	var out bytes.Buffer
	result.Diagnostics.RenderAll(&out, source.New("test", []byte(src)))

	g := goldie.New(t)
	g.Assert(t, "type-mismatch", out.Bytes())
}
