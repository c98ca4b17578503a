// Package lexer turns a byte buffer into a token stream plus a
// diagnostic list, following the shape of the teacher's lexer.Lexer but
// restructured around the cursor package and extended to the language's
// number formats and full operator set.
package lexer

import (
	"fmt"

	"github.com/nomisfailla/arctic/internal/cursor"
	"github.com/nomisfailla/arctic/internal/diag"
	"github.com/nomisfailla/arctic/internal/source"
	"github.com/nomisfailla/arctic/internal/token"
)

// Scanner consumes a buffer's bytes and produces tokens. It never
// throws: an unrecognized byte is recorded as a diagnostic and the
// scanner resynchronizes by advancing one byte.
type Scanner struct {
	file string
	cur  *cursor.Cursor
	toks []token.Token
	diag diag.List
}

func New(file string, data []byte) *Scanner {
	return &Scanner{file: file, cur: cursor.New(data)}
}

// Scan runs the tokenization loop to completion (it is total: it always
// terminates in exactly one EOF token, regardless of how many
// diagnostics were raised along the way).
func Scan(file string, data []byte) ([]token.Token, diag.List) {
	s := New(file, data)
	s.run()
	return s.toks, s.diag
}

func isWhitespace(b byte) bool {
	return b == 0x09 || b == 0x0A || b == 0x0D || b == 0x20
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func (s *Scanner) emit(kind token.Kind, value any, pos source.Position) {
	s.toks = append(s.toks, token.Token{Kind: kind, Value: value, Pos: pos})
}

func (s *Scanner) errorf(pos source.Position, format string, args ...any) {
	s.diag.Add(diag.New(diag.Lexical, s.file, pos, format, args...))
}

func (s *Scanner) run() {
	for {
		b := s.cur.Peek(0)
		if s.cur.AtEnd() {
			s.emit(token.EOF, nil, s.cur.Position())
			return
		}

		pos := s.cur.Position()

		switch {
		case isWhitespace(b):
			s.cur.Next()
		case isIdentStart(b):
			s.scanIdentifier(pos)
		case isDigit(b):
			s.scanNumber(pos)
		default:
			if !s.scanOperator(pos) {
				s.errorf(pos, "unexpected character %q", string(b))
				s.cur.Next()
			}
		}
	}
}

func (s *Scanner) scanIdentifier(pos source.Position) {
	var lexeme []byte
	for isIdentContinue(s.cur.Peek(0)) {
		lexeme = append(lexeme, s.cur.Next())
	}
	lit := string(lexeme)
	if kind, ok := token.Keywords[lit]; ok {
		if kind == token.BOOLEAN {
			s.emit(token.BOOLEAN, lit == "true", pos)
			return
		}
		s.emit(kind, lit, pos)
		return
	}
	s.emit(token.IDENT, lit, pos)
}

// scanNumber implements §4.2's number grammar: a leading 0b/0o/0x
// selects a non-decimal base; otherwise decimal digits are accumulated,
// and a following '.' switches to float accumulation.
func (s *Scanner) scanNumber(pos source.Position) {
	if s.cur.Peek(0) == '0' && (s.cur.Peek(1) == 'b' || s.cur.Peek(1) == 'o' || s.cur.Peek(1) == 'x') {
		lead := s.cur.Next()
		base := s.cur.Next()
		s.scanBasedInteger(pos, lead, base)
		return
	}
	s.scanDecimal(pos)
}

func digitValue(b byte, base int) (int, bool) {
	var v int
	switch {
	case b >= '0' && b <= '9':
		v = int(b - '0')
	case b >= 'a' && b <= 'f':
		v = int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		v = int(b-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

func (s *Scanner) scanBasedInteger(pos source.Position, lead, baseChar byte) {
	_ = lead
	base := 16
	switch baseChar {
	case 'b':
		base = 2
	case 'o':
		base = 8
	case 'x':
		base = 16
	}

	var v uint64
	count := 0
	for {
		d, ok := digitValue(s.cur.Peek(0), base)
		if !ok {
			break
		}
		s.cur.Next()
		v = v*uint64(base) + uint64(d)
		count++
	}
	if count == 0 {
		s.errorf(pos, "malformed integer literal")
		s.emit(token.INTEGER, uint64(0), pos)
		return
	}
	s.emit(token.INTEGER, v, pos)
}

func (s *Scanner) scanDecimal(pos source.Position) {
	var v uint64
	for isDigit(s.cur.Peek(0)) {
		d := s.cur.Next() - '0'
		v = v*10 + uint64(d)
	}

	if s.cur.Peek(0) == '.' {
		s.cur.Next() // consume '.'
		fv := float64(v)
		scale := 0.1
		for isDigit(s.cur.Peek(0)) {
			d := s.cur.Next() - '0'
			fv += float64(d) * scale
			scale *= 0.1
		}
		s.emit(token.FLOAT, fv, pos)
		return
	}

	s.emit(token.INTEGER, v, pos)
}

// operator entry: a byte sequence (after the already-consumed lead byte,
// so the first element of extra is what Peek(0) must match) and the
// token kind it resolves to. Entries for a given lead byte are tried in
// order, so the longest match must be listed first.
type extension struct {
	extra []byte
	kind  token.Kind
}

// scanOperator dispatches on the lead byte to the fixed-order family of
// possible extensions, strictly longest-match, per §4.2. Returns false
// if the byte matches no separator or operator at all.
func (s *Scanner) scanOperator(pos source.Position) bool {
	lead := s.cur.Peek(0)

	single := map[byte]token.Kind{
		'(': token.LPAREN,
		')': token.RPAREN,
		'[': token.LBRACKET,
		']': token.RBRACKET,
		'{': token.LBRACE,
		'}': token.RBRACE,
		',': token.COMMA,
		'~': token.TILDE,
		'.': token.DOT,
		';': token.SEMICOLON,
	}
	if kind, ok := single[lead]; ok {
		s.cur.Next()
		s.emit(kind, nil, pos)
		return true
	}

	families := map[byte][]extension{
		':': {
			{[]byte(":"), token.COLONCOLON},
			{nil, token.COLON},
		},
		'*': {
			{[]byte("="), token.STAREQ},
			{nil, token.STAR},
		},
		'/': {
			{[]byte("="), token.SLASHEQ},
			{nil, token.SLASH},
		},
		'^': {
			{[]byte("="), token.CARETEQ},
			{nil, token.CARET},
		},
		'=': {
			{[]byte("="), token.EQEQ},
			{nil, token.EQ},
		},
		'!': {
			{[]byte("="), token.BANGEQ},
			{nil, token.BANG},
		},
		'%': {
			{[]byte("="), token.PERCENTEQ},
			{nil, token.PERCENT},
		},
		'+': {
			{[]byte("+"), token.PLUSPLUS},
			{[]byte("="), token.PLUSEQ},
			{nil, token.PLUS},
		},
		'-': {
			{[]byte("-"), token.MINUSMINUS},
			{[]byte("="), token.MINUSEQ},
			{nil, token.MINUS},
		},
		'|': {
			{[]byte("|"), token.PIPEPIPE},
			{[]byte("="), token.PIPEEQ},
			{nil, token.PIPE},
		},
		'&': {
			{[]byte("&"), token.AMPAMP},
			{[]byte("="), token.AMPEQ},
			{nil, token.AMP},
		},
		'>': {
			{[]byte(">="), token.GTGTEQ},
			{[]byte(">"), token.GTGT},
			{[]byte("="), token.GTEQ},
			{nil, token.GT},
		},
		'<': {
			{[]byte("<="), token.LTLTEQ},
			{[]byte("<"), token.LTLT},
			{[]byte("="), token.LTEQ},
			{nil, token.LT},
		},
	}

	exts, ok := families[lead]
	if !ok {
		return false
	}

	s.cur.Next() // consume the lead byte
	for _, ext := range exts {
		if len(ext.extra) == 0 {
			s.emit(ext.kind, nil, pos)
			return true
		}
		if s.matches(ext.extra) {
			for range ext.extra {
				s.cur.Next()
			}
			s.emit(ext.kind, nil, pos)
			return true
		}
	}
	// unreachable: every family ends in a nil-extra fallback.
	panic(fmt.Sprintf("internal: operator family for %q has no fallback", string(lead)))
}

func (s *Scanner) matches(extra []byte) bool {
	for i, b := range extra {
		if s.cur.Peek(i) != b {
			return false
		}
	}
	return true
}
