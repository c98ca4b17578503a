package errors_test

import (
	"testing"

	perrors "github.com/nomisfailla/arctic/internal/errors"
	"github.com/nomisfailla/arctic/internal/source"
	"github.com/nomisfailla/arctic/internal/token"
)

func TestUnexpectedTokenImplementsPositioned(t *testing.T) {
	var p perrors.Positioned = perrors.UnexpectedToken{
		Expected: token.LPAREN,
		Got:      token.Token{Kind: token.IDENT, Pos: source.Position{Line: 1, Column: 4}},
	}
	if p.Position().Column != 4 {
		t.Fatalf("Position() = %+v", p.Position())
	}
	if p.Error() == "" {
		t.Fatalf("Error() should not be empty")
	}
}

func TestUnexpectedTokenOneOfListsEveryExpectedKind(t *testing.T) {
	e := perrors.UnexpectedTokenOneOf{
		Expected: []token.Kind{token.LPAREN, token.STAR},
		Got:      token.Token{Kind: token.IDENT},
	}
	msg := e.Error()
	if !contains(msg, "(") || !contains(msg, "*") {
		t.Fatalf("Error() = %q, want it to mention both expected kinds", msg)
	}
}

func TestNameAlreadyTakenReportsTheName(t *testing.T) {
	e := perrors.NameAlreadyTaken{Name: "x", Pos: source.Position{Line: 2, Column: 3}}
	if !contains(e.Error(), "x") {
		t.Fatalf("Error() = %q, want it to mention the duplicated name", e.Error())
	}
	if e.Position().Line != 2 {
		t.Fatalf("Position() = %+v", e.Position())
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
