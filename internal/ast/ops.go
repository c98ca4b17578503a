// Package ast holds the syntax tree the parser builds: type expressions,
// expressions, statements and declarations. Each node kind is modeled as
// a small tagged-interface variant, the way the teacher's ast.go tags
// its nodes with is_Type()/is_Expression()/is_TopLevel() marker methods,
// generalized here to cover the language's full grammar (§9: variant
// dispatch replaces the source's runtime-type casting).
package ast

import "github.com/nomisfailla/arctic/internal/token"

// BinaryOp enumerates every binary operator the grammar recognizes,
// plain and compound assignment included.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Shl
	Shr
	Lt
	Le
	Gt
	Ge
	Eq
	Neq
	BAnd
	BOr
	BXor
	LAnd
	LOr
	Assign
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign
	ShlAssign
	ShrAssign
	AndAssign
	XorAssign
	OrAssign
)

var binaryOpNames = map[BinaryOp]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%",
	Shl: "<<", Shr: ">>",
	Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	Eq: "==", Neq: "!=",
	BAnd: "&", BOr: "|", BXor: "^",
	LAnd: "&&", LOr: "||",
	Assign: "=", AddAssign: "+=", SubAssign: "-=", MulAssign: "*=",
	DivAssign: "/=", ModAssign: "%=", ShlAssign: "<<=", ShrAssign: ">>=",
	AndAssign: "&=", XorAssign: "^=", OrAssign: "|=",
}

func (b BinaryOp) String() string {
	if s, ok := binaryOpNames[b]; ok {
		return s
	}
	return "?"
}

// binaryOpTable maps a token kind to its binary operator. A kind outside
// this table is an internal error: the parser must only consult it on
// sets it has just matched against.
var binaryOpTable = map[token.Kind]BinaryOp{
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

// BinaryOpFor resolves a token kind to a BinaryOp. It panics (an
// internal error per §7) if kind is not a binary operator token; callers
// must only invoke it on a set they have already matched.
func BinaryOpFor(kind token.Kind) BinaryOp {
	op, ok := binaryOpTable[kind]
	if !ok {
		panic("internal: invalid token type for binary operator: " + kind.String())
	}
	return op
}

// IsBinaryOp reports whether kind heads a binary operator, without
// panicking.
func IsBinaryOp(kind token.Kind) bool {
	_, ok := binaryOpTable[kind]
	return ok
}

// UnaryOp enumerates the prefix operators plus the two operators shared
// between a prefix and a postfix position (Inc/Dec), whose Postfix field
// records which position produced them.
type UnaryOp int

const (
	Pos UnaryOp = iota
	Neg
	Deref
	AddrOf
	BNot
	LNot
	Inc
	Dec
)

var unaryOpNames = map[UnaryOp]string{
	Pos: "+", Neg: "-", Deref: "*", AddrOf: "&", BNot: "~", LNot: "!",
	Inc: "++", Dec: "--",
}

func (u UnaryOp) String() string {
	if s, ok := unaryOpNames[u]; ok {
		return s
	}
	return "?"
}

var prefixUnaryOpTable = map[token.Kind]UnaryOp{
	token.PLUS: Pos, token.MINUS: Neg, token.STAR: Deref, token.AMP: AddrOf,
	token.TILDE: BNot, token.BANG: LNot, token.PLUSPLUS: Inc, token.MINUSMINUS: Dec,
}

var postfixUnaryOpTable = map[token.Kind]UnaryOp{
	token.PLUSPLUS: Inc, token.MINUSMINUS: Dec,
}

// UnaryOpFor resolves a token kind to a UnaryOp for either a prefix or a
// postfix position, following the parameterized-by-postfix-flag design
// of §4.5. It panics on a kind outside the relevant table.
func UnaryOpFor(kind token.Kind, postfix bool) UnaryOp {
	table := prefixUnaryOpTable
	if postfix {
		table = postfixUnaryOpTable
	}
	op, ok := table[kind]
	if !ok {
		panic("internal: invalid token type for unary operator: " + kind.String())
	}
	return op
}

func IsPrefixUnaryOp(kind token.Kind) bool {
	_, ok := prefixUnaryOpTable[kind]
	return ok
}

func IsPostfixUnaryOp(kind token.Kind) bool {
	_, ok := postfixUnaryOpTable[kind]
	return ok
}
