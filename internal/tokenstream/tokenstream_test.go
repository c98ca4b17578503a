package tokenstream

import (
	"testing"

	"github.com/nomisfailla/arctic/internal/token"
)

func toks(kinds ...token.Kind) []token.Token {
	out := make([]token.Token, len(kinds))
	for i, k := range kinds {
		out[i] = token.Token{Kind: k}
	}
	return out
}

func TestNextStopsAtEOF(t *testing.T) {
	s := New(toks(token.IDENT, token.EOF))
	if got := s.Next().Kind; got != token.IDENT {
		t.Fatalf("first Next = %s", got)
	}
	if got := s.Next().Kind; got != token.EOF {
		t.Fatalf("second Next = %s, want eof", got)
	}
	if got := s.Next().Kind; got != token.EOF {
		t.Fatalf("Next past eof = %s, want eof again", got)
	}
}

func TestExpectAdvancesOnMatch(t *testing.T) {
	s := New(toks(token.LPAREN, token.EOF))
	failed := false
	s.Expect(token.LPAREN, func(got token.Token, expected ...token.Kind) { failed = true })
	if failed {
		t.Fatalf("Expect reported failure on a match")
	}
	if s.PeekType() != token.EOF {
		t.Fatalf("Expect did not advance")
	}
}

func TestExpectInvokesOnFailWithoutAdvancing(t *testing.T) {
	s := New(toks(token.IDENT, token.EOF))
	var gotExpected token.Kind
	called := false
	s.Expect(token.LPAREN, func(got token.Token, expected ...token.Kind) {
		called = true
		gotExpected = expected[0]
	})
	if !called {
		t.Fatalf("onFail was not invoked")
	}
	if gotExpected != token.LPAREN {
		t.Fatalf("onFail got expected=%s, want lparen", gotExpected)
	}
	if s.PeekType() != token.IDENT {
		t.Fatalf("Expect advanced past the mismatched token")
	}
}
