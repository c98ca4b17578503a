package repl

import (
	"bytes"
	"testing"
)

func TestEvalAcceptsAFunctionDeclaration(t *testing.T) {
	var out, errOut bytes.Buffer
	sess := NewSession(false, &out, &errOut)

	if diags := sess.Eval("func f(): none { return; }"); diags != nil {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(sess.source) == 0 {
		t.Fatalf("accepted line should be appended to session source")
	}
}

func TestEvalRollsBackOnFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	sess := NewSession(false, &out, &errOut)

	sess.Eval("func f(): none { return; }")
	before := append([]byte{}, sess.source...)

	if diags := sess.Eval("func f(): none { let x: bool = 1; }"); diags == nil {
		t.Fatalf("expected a type-mismatch diagnostic")
	}
	if !bytes.Equal(sess.source, before) {
		t.Fatalf("failed line should not be appended to session source")
	}
}

func TestEvalSeesDeclarationsFromEarlierLines(t *testing.T) {
	var out, errOut bytes.Buffer
	sess := NewSession(false, &out, &errOut)

	if diags := sess.Eval("func g(): i64 { return 1; }"); diags != nil {
		t.Fatalf("unexpected diagnostics on first line: %v", diags)
	}
	if diags := sess.Eval("func f(): i64 { return g(); }"); diags != nil {
		t.Fatalf("second line should see the first line's function: %v", diags)
	}
}
