// Package parser is a recursive-descent, precedence-climbing parser,
// following the structure of the teacher's Parser (panic on the single
// abort path, LexExpecting/PeekIs-shaped combinators) but driven over a
// pre-scanned tokenstream.Stream instead of a byte-at-a-time lexer, and
// extended to the language's full declaration/statement/expression
// grammar (§4.4).
package parser

import (
	"github.com/nomisfailla/arctic/internal/ast"
	"github.com/nomisfailla/arctic/internal/diag"
	perrors "github.com/nomisfailla/arctic/internal/errors"
	"github.com/nomisfailla/arctic/internal/token"
	"github.com/nomisfailla/arctic/internal/tokenstream"
	"github.com/ztrue/tracerr"
)

type Parser struct {
	file string
	toks *tokenstream.Stream
}

func New(file string, toks []token.Token) *Parser {
	return &Parser{file: file, toks: tokenstream.New(toks)}
}

// ParseModule parses a full token stream into a Module. It implements
// §7's non-recovering parser contract: the first expectation failure
// aborts the parse and is reported as a single diagnostic.
func ParseModule(file string, toks []token.Token) (mod ast.Module, diags diag.List) {
	p := New(file, toks)
	defer func() {
		if r := recover(); r != nil {
			diags.Add(p.diagnosticFromRecover(r))
		}
	}()
	mod = p.parseModule()
	return
}

func (p *Parser) diagnosticFromRecover(r any) diag.Diagnostic {
	if pe, ok := r.(perrors.Positioned); ok {
		return diag.New(diag.Syntactic, p.file, pe.Position(), "%s", pe.Error())
	}
	if err, ok := r.(error); ok {
		wrapped := tracerr.Wrap(err)
		return diag.New(diag.Syntactic, p.file, p.toks.Position(), "%s", wrapped.Error())
	}
	panic(r) // an internal error (§7): not a value this parser is meant to raise.
}

func (p *Parser) fail(got token.Token, expected ...token.Kind) {
	if len(expected) == 1 {
		panic(perrors.UnexpectedToken{Expected: expected[0], Got: got})
	}
	panic(perrors.UnexpectedTokenOneOf{Expected: expected, Got: got})
}

func (p *Parser) expect(kind token.Kind) token.Token {
	return p.toks.Expect(kind, p.fail)
}

func (p *Parser) expectOneOf(kinds ...token.Kind) token.Token {
	return p.toks.ExpectOneOf(kinds, p.fail)
}

// parseModule implements §4.4's Module rule: zero or more declarations
// until eof.
func (p *Parser) parseModule() ast.Module {
	var mod ast.Module
	for !p.toks.NextIs(token.EOF) {
		mod.Declarations = append(mod.Declarations, p.parseDeclaration())
	}
	return mod
}

func (p *Parser) parseDeclaration() ast.Declaration {
	switch p.toks.PeekType() {
	case token.IMPORT:
		return p.parseImport()
	case token.NAMESPACE:
		return p.parseNamespace()
	case token.ALIAS:
		return p.parseAlias()
	case token.FUNC:
		return p.parseFunc()
	case token.STRUCT:
		return p.parseStruct()
	default:
		tok := p.toks.Peek()
		p.fail(tok, token.IMPORT, token.NAMESPACE, token.ALIAS, token.FUNC, token.STRUCT)
		panic("unreachable")
	}
}

func (p *Parser) parseImport() ast.Declaration {
	pos := p.toks.Position()
	p.expect(token.IMPORT)
	name := p.expect(token.IDENT)
	p.expect(token.SEMICOLON)
	return ast.ImportDecl{Path: name.Value.(string), Position: pos}
}

func (p *Parser) parseNamespace() ast.Declaration {
	pos := p.toks.Position()
	p.expect(token.NAMESPACE)
	name := p.expect(token.IDENT)
	p.expect(token.SEMICOLON)
	return ast.NamespaceDecl{Name: name.Value.(string), Position: pos}
}

func (p *Parser) parseAlias() ast.Declaration {
	pos := p.toks.Position()
	p.expect(token.ALIAS)
	name := p.expect(token.IDENT)
	p.expect(token.EQ)
	t := p.parseTypeExpr()
	p.expect(token.SEMICOLON)
	return ast.AliasDecl{Name: name.Value.(string), Type: t, Position: pos}
}

func (p *Parser) parseFunc() ast.FuncDecl {
	pos := p.toks.Position()
	p.expect(token.FUNC)
	name := p.expect(token.IDENT)
	p.expect(token.LPAREN)

	var args []ast.Arg
	if !p.toks.NextIs(token.RPAREN) {
		for {
			argName := p.expect(token.IDENT)
			p.expect(token.COLON)
			argType := p.parseTypeExpr()
			for _, a := range args {
				if a.Name == argName.Value.(string) {
					panic(perrors.NameAlreadyTaken{Name: a.Name, Pos: argName.Pos})
				}
			}
			args = append(args, ast.Arg{Name: argName.Value.(string), Type: argType})
			if !p.toks.NextIs(token.COMMA) {
				break
			}
			p.toks.Next()
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.COLON)
	ret := p.parseTypeExpr()
	p.expect(token.LBRACE)
	body := p.parseBlockBody()

	return ast.FuncDecl{
		Name:     name.Value.(string),
		Args:     args,
		Ret:      ret,
		Body:     body,
		Position: pos,
	}
}

func (p *Parser) parseStruct() ast.Declaration {
	pos := p.toks.Position()
	p.expect(token.STRUCT)
	name := p.expect(token.IDENT)
	p.expect(token.LBRACE)

	var fields []ast.Field
	var funcs []ast.FuncDecl
	for !p.toks.NextIs(token.RBRACE) {
		if p.toks.NextIs(token.FUNC) {
			funcs = append(funcs, p.parseFunc())
			continue
		}
		fieldName := p.expect(token.IDENT)
		p.expect(token.COLON)
		fieldType := p.parseTypeExpr()
		p.expect(token.SEMICOLON)
		for _, f := range fields {
			if f.Name == fieldName.Value.(string) {
				panic(perrors.NameAlreadyTaken{Name: f.Name, Pos: fieldName.Pos})
			}
		}
		fields = append(fields, ast.Field{Name: fieldName.Value.(string), Type: fieldType})
	}
	p.expect(token.RBRACE)

	return ast.StructDecl{Name: name.Value.(string), Fields: fields, Functions: funcs, Position: pos}
}

// parseTypeExpr implements §4.4's three-way type-expression grammar.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	pos := p.toks.Position()
	switch p.toks.PeekType() {
	case token.IDENT:
		name := p.toks.Next()
		return ast.NameType{Name: name.Value.(string), Position: pos}
	case token.STAR:
		p.toks.Next()
		return ast.PointerType{Base: p.parseTypeExpr(), Position: pos}
	case token.LPAREN:
		p.toks.Next()
		var args []ast.TypeExpr
		if !p.toks.NextIs(token.RPAREN) {
			for {
				args = append(args, p.parseTypeExpr())
				if !p.toks.NextIs(token.COMMA) {
					break
				}
				p.toks.Next()
			}
		}
		p.expect(token.RPAREN)
		p.expect(token.COLON)
		ret := p.parseTypeExpr()
		return ast.FuncType{Args: args, Ret: ret, Position: pos}
	default:
		tok := p.toks.Peek()
		p.fail(tok, token.IDENT, token.STAR, token.LPAREN)
		panic("unreachable")
	}
}

// parseBlockBody parses statements up to (and consuming) a closing
// brace; the caller has already consumed the opening brace.
func (p *Parser) parseBlockBody() ast.Block {
	var stmts ast.Block
	for !p.toks.NextIs(token.RBRACE) {
		stmts = append(stmts, p.parseStatement())
	}
	p.expect(token.RBRACE)
	return stmts
}

func (p *Parser) parseBlock() ast.Block {
	p.expect(token.LBRACE)
	return p.parseBlockBody()
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.toks.PeekType() {
	case token.LET:
		return p.parseLetOrConst(false)
	case token.CONST:
		return p.parseLetOrConst(true)
	case token.RETURN:
		return p.parseReturn()
	case token.IF:
		return p.parseIf()
	default:
		pos := p.toks.Position()
		expr := p.parseExpression()
		p.expect(token.SEMICOLON)
		return ast.ExprStmt{Expr: expr, Position: pos}
	}
}

func (p *Parser) parseLetOrConst(isConst bool) ast.Statement {
	pos := p.toks.Position()
	if isConst {
		p.expect(token.CONST)
	} else {
		p.expect(token.LET)
	}
	name := p.expect(token.IDENT)

	var typ ast.TypeExpr
	if p.toks.NextIs(token.COLON) {
		p.toks.Next()
		typ = p.parseTypeExpr()
	}

	var init ast.Expression
	if p.toks.NextIs(token.EQ) {
		p.toks.Next()
		init = p.parseExpression()
	}
	p.expect(token.SEMICOLON)

	if isConst {
		return ast.ConstStmt{Name: name.Value.(string), Type: typ, Init: init, Position: pos}
	}
	return ast.LetStmt{Name: name.Value.(string), Type: typ, Init: init, Position: pos}
}

func (p *Parser) parseReturn() ast.Statement {
	pos := p.toks.Position()
	p.expect(token.RETURN)
	var expr ast.Expression
	if !p.toks.NextIs(token.SEMICOLON) {
		expr = p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	return ast.ReturnStmt{Expr: expr, Position: pos}
}

func (p *Parser) parseIf() ast.Statement {
	pos := p.toks.Position()
	p.expect(token.IF)
	cond := p.parseExpression()
	body := p.parseBlock()
	branches := []ast.Branch{{Cond: cond, Body: body}}

	for p.toks.NextIs(token.ELIF) {
		p.toks.Next()
		elifCond := p.parseExpression()
		elifBody := p.parseBlock()
		branches = append(branches, ast.Branch{Cond: elifCond, Body: elifBody})
	}

	var elseBody ast.Block
	if p.toks.NextIs(token.ELSE) {
		p.toks.Next()
		elseBody = p.parseBlock()
	}

	return ast.IfStmt{Branches: branches, Else: elseBody, Position: pos}
}

// --- Expressions: §6's 15 precedence levels, lowest to highest. ---

func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// assignOps is the set of assignment operators consulted at level 14;
// each other level passes its own operator list to leftAssocBinary.
var assignOps = []token.Kind{
	token.EQ, token.PLUSEQ, token.MINUSEQ, token.STAREQ, token.SLASHEQ, token.PERCENTEQ,
	token.LTLTEQ, token.GTGTEQ, token.AMPEQ, token.CARETEQ, token.PIPEEQ,
}

func (p *Parser) parseAssignment() ast.Expression {
	lhs := p.parseLogicalOr()
	if !p.toks.NextIsOneOf(assignOps...) {
		return lhs
	}
	pos := p.toks.Position()
	opTok := p.toks.Next()
	rhs := p.parseAssignment() // right-associative
	return ast.BinaryExpr{Op: ast.BinaryOpFor(opTok.Kind), Lhs: lhs, Rhs: rhs, Position: pos}
}

func (p *Parser) leftAssocBinary(next func() ast.Expression, ops []token.Kind) ast.Expression {
	lhs := next()
	for p.toks.NextIsOneOf(ops...) {
		pos := p.toks.Position()
		opTok := p.toks.Next()
		rhs := next()
		lhs = ast.BinaryExpr{Op: ast.BinaryOpFor(opTok.Kind), Lhs: lhs, Rhs: rhs, Position: pos}
	}
	return lhs
}

func (p *Parser) parseLogicalOr() ast.Expression {
	return p.leftAssocBinary(p.parseLogicalAnd, []token.Kind{token.PIPEPIPE})
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	return p.leftAssocBinary(p.parseBitwiseOr, []token.Kind{token.AMPAMP})
}

func (p *Parser) parseBitwiseOr() ast.Expression {
	return p.leftAssocBinary(p.parseBitwiseXor, []token.Kind{token.PIPE})
}

func (p *Parser) parseBitwiseXor() ast.Expression {
	return p.leftAssocBinary(p.parseBitwiseAnd, []token.Kind{token.CARET})
}

func (p *Parser) parseBitwiseAnd() ast.Expression {
	return p.leftAssocBinary(p.parseEquality, []token.Kind{token.AMP})
}

func (p *Parser) parseEquality() ast.Expression {
	return p.leftAssocBinary(p.parseComparison, []token.Kind{token.EQEQ, token.BANGEQ})
}

func (p *Parser) parseComparison() ast.Expression {
	return p.leftAssocBinary(p.parseShift, []token.Kind{token.LT, token.LTEQ, token.GT, token.GTEQ})
}

func (p *Parser) parseShift() ast.Expression {
	return p.leftAssocBinary(p.parseAdditive, []token.Kind{token.LTLT, token.GTGT})
}

func (p *Parser) parseAdditive() ast.Expression {
	return p.leftAssocBinary(p.parseMultiplicative, []token.Kind{token.PLUS, token.MINUS})
}

func (p *Parser) parseMultiplicative() ast.Expression {
	return p.leftAssocBinary(p.parseCast, []token.Kind{token.STAR, token.SLASH, token.PERCENT})
}

// parseCast implements level 3: left-associative `as Type` over expr2
// (prefix), so that `x as u32 as u8` casts (x as u32) to u8.
func (p *Parser) parseCast() ast.Expression {
	lhs := p.parsePrefix()
	for p.toks.NextIs(token.AS) {
		pos := p.toks.Position()
		p.toks.Next()
		t := p.parseTypeExpr()
		lhs = ast.CastExpr{Lhs: lhs, Type: t, Position: pos}
	}
	return lhs
}

// parsePrefix implements level 2 (expr2): a prefix operator recurses
// into another expr2; otherwise defers to expr1.
func (p *Parser) parsePrefix() ast.Expression {
	if ast.IsPrefixUnaryOp(p.toks.PeekType()) {
		pos := p.toks.Position()
		opTok := p.toks.Next()
		operand := p.parsePrefix()
		return ast.UnaryExpr{Op: ast.UnaryOpFor(opTok.Kind, false), Operand: operand, Position: pos}
	}
	return p.parsePostfix()
}

// parsePostfix implements level 1 (expr1): repeatedly apply call,
// index, access or postfix ++/-- to a primary.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch p.toks.PeekType() {
		case token.LPAREN:
			pos := p.toks.Position()
			p.toks.Next()
			var args []ast.Expression
			if !p.toks.NextIs(token.RPAREN) {
				for {
					args = append(args, p.parseExpression())
					if !p.toks.NextIs(token.COMMA) {
						break
					}
					p.toks.Next()
				}
			}
			p.expect(token.RPAREN)
			expr = ast.CallExpr{Callee: expr, Args: args, Position: pos}
		case token.LBRACKET:
			pos := p.toks.Position()
			p.toks.Next()
			index := p.parseExpression()
			p.expect(token.RBRACKET)
			expr = ast.IndexExpr{Lhs: expr, Index: index, Position: pos}
		case token.DOT:
			pos := p.toks.Position()
			p.toks.Next()
			field := p.expect(token.IDENT)
			expr = ast.AccessExpr{Lhs: expr, Field: field.Value.(string), Position: pos}
		case token.PLUSPLUS, token.MINUSMINUS:
			pos := p.toks.Position()
			opTok := p.toks.Next()
			expr = ast.UnaryExpr{Op: ast.UnaryOpFor(opTok.Kind, true), Postfix: true, Operand: expr, Position: pos}
		default:
			return expr
		}
	}
}

// parsePrimary implements level 0 (expr0): a literal, identifier, or a
// parenthesized expression.
func (p *Parser) parsePrimary() ast.Expression {
	pos := p.toks.Position()
	switch p.toks.PeekType() {
	case token.INTEGER:
		tok := p.toks.Next()
		return ast.IntegerLit{Value: tok.Value.(uint64), Position: pos}
	case token.FLOAT:
		tok := p.toks.Next()
		return ast.FloatLit{Value: tok.Value.(float64), Position: pos}
	case token.BOOLEAN:
		tok := p.toks.Next()
		return ast.BooleanLit{Value: tok.Value.(bool), Position: pos}
	case token.IDENT:
		tok := p.toks.Next()
		return ast.NameExpr{Name: tok.Value.(string), Position: pos}
	case token.LPAREN:
		p.toks.Next()
		expr := p.parseExpression()
		p.expect(token.RPAREN)
		return expr
	default:
		tok := p.toks.Peek()
		p.fail(tok, token.INTEGER, token.FLOAT, token.BOOLEAN, token.IDENT, token.LPAREN)
		panic("unreachable")
	}
}
