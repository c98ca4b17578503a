package ast

import (
	"testing"

	"github.com/nomisfailla/arctic/internal/token"
)

func TestBinaryOpForResolvesEveryOperatorToken(t *testing.T) {
	cases := map[token.Kind]BinaryOp{
		token.PLUS: Add, token.MINUS: Sub, token.STAR: Mul, token.SLASH: Div, token.PERCENT: Mod,
		token.LTLT: Shl, token.GTGT: Shr,
		token.LT: Lt, token.LTEQ: Le, token.GT: Gt, token.GTEQ: Ge,
		token.EQEQ: Eq, token.BANGEQ: Neq,
		token.AMP: BAnd, token.PIPE: BOr, token.CARET: BXor,
		token.AMPAMP: LAnd, token.PIPEPIPE: LOr,
		token.EQ: Assign, token.PLUSEQ: AddAssign, token.MINUSEQ: SubAssign,
		token.STAREQ: MulAssign, token.SLASHEQ: DivAssign, token.PERCENTEQ: ModAssign,
		token.LTLTEQ: ShlAssign, token.GTGTEQ: ShrAssign,
		token.AMPEQ: AndAssign, token.CARETEQ: XorAssign, token.PIPEEQ: OrAssign,
	}
	for kind, want := range cases {
		if got := BinaryOpFor(kind); got != want {
			t.Errorf("BinaryOpFor(%s) = %v, want %v", kind, got, want)
		}
	}
}

func TestBinaryOpForPanicsOnNonOperator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a non-operator token kind")
		}
	}()
	BinaryOpFor(token.IDENT)
}

func TestIsBinaryOp(t *testing.T) {
	if !IsBinaryOp(token.PLUS) {
		t.Errorf("PLUS should be a binary operator")
	}
	if IsBinaryOp(token.LPAREN) {
		t.Errorf("LPAREN should not be a binary operator")
	}
}

func TestUnaryOpForDistinguishesPrefixAndPostfix(t *testing.T) {
	if got := UnaryOpFor(token.STAR, false); got != Deref {
		t.Errorf("prefix STAR = %v, want Deref", got)
	}
	if got := UnaryOpFor(token.PLUSPLUS, false); got != Inc {
		t.Errorf("prefix PLUSPLUS = %v, want Inc", got)
	}
	if got := UnaryOpFor(token.PLUSPLUS, true); got != Inc {
		t.Errorf("postfix PLUSPLUS = %v, want Inc", got)
	}
}

func TestUnaryOpForPanicsOnPostfixOnlyPrefixToken(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic: STAR is not a postfix operator")
		}
	}()
	UnaryOpFor(token.STAR, true)
}
