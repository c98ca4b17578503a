// Package tokenstream is a cursor over an already-scanned token list,
// generalizing the teacher's Lexer.Peek/PeekIs/LexExpecting idiom from a
// byte-at-a-time lexer to a list-at-a-time one: the scanner has already
// run to completion by the time the parser needs this.
package tokenstream

import (
	"github.com/nomisfailla/arctic/internal/source"
	"github.com/nomisfailla/arctic/internal/token"
)

// Stream is bounds-safe because toks always ends in exactly one EOF
// token; Peek/Next never run off the end.
type Stream struct {
	toks []token.Token
	idx  int
}

func New(toks []token.Token) *Stream {
	return &Stream{toks: toks}
}

func (s *Stream) current() token.Token {
	if s.idx >= len(s.toks) {
		return s.toks[len(s.toks)-1] // the trailing EOF
	}
	return s.toks[s.idx]
}

// Position returns the position of the next token to be consumed.
func (s *Stream) Position() source.Position {
	return s.current().Pos
}

func (s *Stream) PeekType() token.Kind {
	return s.current().Kind
}

func (s *Stream) Peek() token.Token {
	return s.current()
}

// Next consumes and returns the current token, unless it is EOF, in
// which case it is returned without advancing past it.
func (s *Stream) Next() token.Token {
	t := s.current()
	if t.Kind != token.EOF {
		s.idx++
	}
	return t
}

func (s *Stream) NextIs(kind token.Kind) bool {
	return s.PeekType() == kind
}

func (s *Stream) NextIsOneOf(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if s.PeekType() == k {
			return true
		}
	}
	return false
}

// Expect consumes the next token if it has the given kind, invoking
// onFail (which is expected to raise a diagnostic and unwind) otherwise.
func (s *Stream) Expect(kind token.Kind, onFail func(got token.Token, expected ...token.Kind)) token.Token {
	if !s.NextIs(kind) {
		onFail(s.current(), kind)
		return s.current()
	}
	return s.Next()
}

func (s *Stream) ExpectOneOf(kinds []token.Kind, onFail func(got token.Token, expected ...token.Kind)) token.Token {
	if !s.NextIsOneOf(kinds...) {
		onFail(s.current(), kinds...)
		return s.current()
	}
	return s.Next()
}
