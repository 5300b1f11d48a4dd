// Package parser implements a hand-written recursive-descent parser with
// Pratt-style precedence climbing for expressions (spec §4.B).
package parser

import (
	"fmt"

	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/parser/ast"
)

// ErrorSink receives one formatted diagnostic per syntax error. When nil,
// the parser panics on the first error (spec §7).
type ErrorSink func(msg string)

// Parser consumes a fixed token list (produced by the lexer up front) and
// builds a Program AST.
type Parser struct {
	tokens  []lexer.Token
	pos     int
	sink    ErrorSink
	errored bool
}

// New creates a Parser over tokens. sink may be nil.
func New(tokens []lexer.Token, sink ErrorSink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// ParseProgram consumes every token and returns the root AST node (spec
// §8 P2: "the parser consumes every token; no token is left unread").
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.isAtEnd() {
		p.skipTerminators()
		if p.isAtEnd() {
			break
		}
		decl := p.parseDecl()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
	}
	return prog
}

// --- declarations ---

func (p *Parser) parseDecl() ast.Decl {
	switch p.peek().Type {
	case lexer.TokenFn:
		return p.parseFuncDecl()
	case lexer.TokenStruct:
		return p.parseStructDecl()
	case lexer.TokenInterface:
		return p.parseInterfaceDecl()
	case lexer.TokenImpl:
		return p.parseImplDecl()
	case lexer.TokenVar:
		return p.parseVarDecl()
	case lexer.TokenConst:
		return p.parseConstDecl()
	default:
		p.error(fmt.Sprintf("expected declaration, got %s", p.peek().Type))
		p.synchronize()
		return nil
	}
}

func (p *Parser) parseSignature() ast.Signature {
	start := p.peek().Position
	name := p.consumeIdentifierName()
	p.consume(lexer.TokenLeftParen, "expected '(' after function name")
	var params []ast.Param
	if p.peek().Type != lexer.TokenRightParen {
		for {
			pname := p.consumeIdentifierName()
			var ptype ast.TypeExpr
			if p.startsType() {
				ptype = p.parseType()
			}
			params = append(params, ast.Param{Name: pname, Type: ptype})
			if !p.match(lexer.TokenComma) {
				break
			}
		}
	}
	p.consume(lexer.TokenRightParen, "expected ')' after parameters")
	var result ast.TypeExpr
	if p.startsType() {
		result = p.parseType()
	}
	return ast.Signature{BaseNode: ast.BaseNode{StartPos: start}, Name: name, Params: params, Result: result}
}

func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	start := p.peek().Position
	p.advance() // 'fn'
	sig := p.parseSignature()
	body := p.parseBlockStmt()
	return &ast.FuncDecl{BaseNode: ast.BaseNode{StartPos: start}, Sig: sig, Body: body}
}

func (p *Parser) parseStructDecl() *ast.StructDecl {
	start := p.peek().Position
	p.advance() // 'struct'
	name := p.consumeIdentifierName()
	p.consume(lexer.TokenLeftBrace, "expected '{' after struct name")
	var fields []ast.FieldDecl
	for p.peek().Type != lexer.TokenRightBrace && !p.isAtEnd() {
		fname := p.consumeIdentifierName()
		ftype := p.parseType()
		fields = append(fields, ast.FieldDecl{Name: fname, Type: ftype})
		p.skipTerminators()
	}
	p.consume(lexer.TokenRightBrace, "expected '}' after struct fields")
	return &ast.StructDecl{BaseNode: ast.BaseNode{StartPos: start}, Name: name, Fields: fields}
}

func (p *Parser) parseInterfaceDecl() *ast.InterfaceDecl {
	start := p.peek().Position
	p.advance() // 'interface'
	name := p.consumeIdentifierName()
	p.consume(lexer.TokenLeftBrace, "expected '{' after interface name")
	var methods []ast.Signature
	for p.peek().Type != lexer.TokenRightBrace && !p.isAtEnd() {
		methods = append(methods, p.parseSignature())
		p.skipTerminators()
	}
	p.consume(lexer.TokenRightBrace, "expected '}' after interface methods")
	return &ast.InterfaceDecl{BaseNode: ast.BaseNode{StartPos: start}, Name: name, Methods: methods}
}

// parseImplDecl parses `impl Target { fn* }` or `impl Interface for Target { fn* }`.
func (p *Parser) parseImplDecl() *ast.ImplDecl {
	start := p.peek().Position
	p.advance() // 'impl'
	first := p.consumeIdentifierName()

	var target, iface string
	if p.peek().Type == lexer.TokenIdentifier && p.peek().Lexeme == "for" {
		p.advance() // 'for'
		iface = first
		target = p.consumeIdentifierName()
	} else {
		target = first
	}

	p.consume(lexer.TokenLeftBrace, "expected '{' after impl target")
	var methods []*ast.FuncDecl
	for p.peek().Type != lexer.TokenRightBrace && !p.isAtEnd() {
		p.skipTerminators()
		if p.peek().Type == lexer.TokenRightBrace {
			break
		}
		methods = append(methods, p.parseFuncDecl())
		p.skipTerminators()
	}
	p.consume(lexer.TokenRightBrace, "expected '}' after impl methods")
	return &ast.ImplDecl{BaseNode: ast.BaseNode{StartPos: start}, Target: target, Interface: iface, Methods: methods}
}

func (p *Parser) parseVarDecl() *ast.VarDecl {
	start := p.peek().Position
	p.advance() // 'var'
	name := p.consumeIdentifierName()
	var typ ast.TypeExpr
	if p.startsType() {
		typ = p.parseType()
	}
	var value ast.Expr
	if p.match(lexer.TokenAssign) {
		value = p.parseExpr()
	}
	p.consumeTerminator()
	return &ast.VarDecl{BaseNode: ast.BaseNode{StartPos: start}, Name: name, Type: typ, Value: value}
}

func (p *Parser) parseConstDecl() *ast.ConstDecl {
	start := p.peek().Position
	p.advance() // 'const'
	name := p.consumeIdentifierName()
	var typ ast.TypeExpr
	if p.startsType() {
		typ = p.parseType()
	}
	p.consume(lexer.TokenAssign, "const declaration requires an initializer")
	value := p.parseExpr()
	p.consumeTerminator()
	return &ast.ConstDecl{BaseNode: ast.BaseNode{StartPos: start}, Name: name, Type: typ, Value: value}
}

// --- types ---

func (p *Parser) startsType() bool {
	switch p.peek().Type {
	case lexer.TokenIdentifier, lexer.TokenArr, lexer.TokenVec, lexer.TokenFn:
		return true
	default:
		return false
	}
}

func (p *Parser) parseType() ast.TypeExpr {
	start := p.peek().Position
	switch p.peek().Type {
	case lexer.TokenArr:
		p.advance()
		p.consume(lexer.TokenLeftBracket, "expected '[' after 'arr'")
		elem := p.parseType()
		p.consume(lexer.TokenComma, "expected ',' in array type")
		length := p.parseExpr()
		p.consume(lexer.TokenRightBracket, "expected ']' after array type")
		return &ast.ArrayType{BaseNode: ast.BaseNode{StartPos: start}, Elem: elem, Length: length}
	case lexer.TokenVec:
		p.advance()
		p.consume(lexer.TokenLeftBracket, "expected '[' after 'vec'")
		elem := p.parseType()
		p.consume(lexer.TokenRightBracket, "expected ']' after vector type")
		return &ast.VectorType{BaseNode: ast.BaseNode{StartPos: start}, Elem: elem}
	case lexer.TokenFn:
		p.advance()
		p.consume(lexer.TokenLeftParen, "expected '(' in function type")
		var params []ast.TypeExpr
		if p.peek().Type != lexer.TokenRightParen {
			for {
				params = append(params, p.parseType())
				if !p.match(lexer.TokenComma) {
					break
				}
			}
		}
		p.consume(lexer.TokenRightParen, "expected ')' in function type")
		var result ast.TypeExpr
		if p.startsType() {
			result = p.parseType()
		}
		return &ast.FuncType{BaseNode: ast.BaseNode{StartPos: start}, Params: params, Result: result}
	default:
		name := p.consumeIdentifierName()
		return &ast.NamedType{BaseNode: ast.BaseNode{StartPos: start}, Name: name}
	}
}

// --- statements ---

func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	start := p.peek().Position
	p.consume(lexer.TokenLeftBrace, "expected '{'")
	var stmts []ast.Stmt
	for p.peek().Type != lexer.TokenRightBrace && !p.isAtEnd() {
		p.skipTerminators()
		if p.peek().Type == lexer.TokenRightBrace {
			break
		}
		stmts = append(stmts, p.parseStmt())
		p.skipTerminators()
	}
	p.consume(lexer.TokenRightBrace, "expected '}'")
	return &ast.BlockStmt{BaseNode: ast.BaseNode{StartPos: start}, Stmts: stmts}
}

func (p *Parser) parseStmtOrBlock() ast.Stmt {
	if p.peek().Type == lexer.TokenLeftBrace {
		return p.parseBlockStmt()
	}
	return p.parseStmt()
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.peek().Type {
	case lexer.TokenLeftBrace:
		return p.parseBlockStmt()
	case lexer.TokenVar, lexer.TokenConst:
		return p.parseDeclStmt()
	case lexer.TokenIf:
		return p.parseIfStmt()
	case lexer.TokenWhile:
		return p.parseWhileStmt()
	case lexer.TokenReturn:
		return p.parseReturnStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}

func (p *Parser) parseDeclStmt() *ast.DeclStmt {
	start := p.peek().Position
	var d ast.Decl
	if p.peek().Type == lexer.TokenVar {
		d = p.parseVarDecl()
	} else {
		d = p.parseConstDecl()
	}
	return &ast.DeclStmt{BaseNode: ast.BaseNode{StartPos: start}, Decl: d}
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.peek().Position
	p.advance() // 'if'
	cond := p.parseExpr()
	then := p.parseStmtOrBlock()
	var els ast.Stmt
	if p.match(lexer.TokenElse) {
		els = p.parseStmtOrBlock()
	}
	return &ast.IfStmt{BaseNode: ast.BaseNode{StartPos: start}, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.peek().Position
	p.advance() // 'while'
	cond := p.parseExpr()
	body := p.parseBlockStmt()
	return &ast.WhileStmt{BaseNode: ast.BaseNode{StartPos: start}, Cond: cond, Body: body}
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	tok := p.peek()
	p.advance() // 'return'
	var value ast.Expr
	if p.peek().Type != lexer.TokenTerminator && p.peek().Type != lexer.TokenRightBrace && !p.isAtEnd() {
		value = p.parseExpr()
	}
	p.consumeTerminator()
	return &ast.ReturnStmt{BaseNode: ast.BaseNode{StartPos: tok.Position}, ReturnTok: tok, Value: value}
}

func (p *Parser) parseExprOrAssignStmt() ast.Stmt {
	start := p.peek().Position
	expr := p.parseExpr()
	if p.match(lexer.TokenAssign) {
		value := p.parseExpr()
		p.consumeTerminator()
		return &ast.AssignStmt{BaseNode: ast.BaseNode{StartPos: start}, Target: expr, Value: value}
	}
	p.consumeTerminator()
	return &ast.ExprStmt{BaseNode: ast.BaseNode{StartPos: start}, X: expr}
}

// --- expressions (Pratt precedence climbing) ---

func (p *Parser) parseExpr() ast.Expr {
	return p.parsePrecedence(PrecNone)
}

func (p *Parser) parsePrecedence(min Precedence) ast.Expr {
	left := p.parseUnary()
	for {
		prec := precedenceOf(p.peek().Type)
		if prec <= min {
			return left
		}
		op := p.advance()
		right := p.parsePrecedence(prec)
		left = &ast.BinaryExpr{BaseNode: ast.BaseNode{StartPos: left.Pos()}, Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	switch p.peek().Type {
	case lexer.TokenMinus, lexer.TokenNot:
		op := p.advance()
		operand := p.parseUnary() // right-associative
		return &ast.UnaryExpr{BaseNode: ast.BaseNode{StartPos: op.Position}, Op: op, Operand: operand}
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

// parsePostfix chains left-associative `.`, `[]`, `()` onto a primary
// expression (spec §4.B).
func (p *Parser) parsePostfix(expr ast.Expr) ast.Expr {
	for {
		switch p.peek().Type {
		case lexer.TokenDot:
			p.advance()
			name := p.consumeIdentifierName()
			expr = &ast.SelectorExpr{BaseNode: ast.BaseNode{StartPos: expr.Pos()}, Target: expr, Name: name}
		case lexer.TokenLeftBracket:
			p.advance()
			index := p.parseExpr()
			p.consume(lexer.TokenRightBracket, "expected ']' after index")
			expr = &ast.IndexExpr{BaseNode: ast.BaseNode{StartPos: expr.Pos()}, Target: expr, Index: index}
		case lexer.TokenLeftParen:
			p.advance()
			var args []ast.Expr
			if p.peek().Type != lexer.TokenRightParen {
				for {
					args = append(args, p.parseExpr())
					if !p.match(lexer.TokenComma) {
						break
					}
				}
			}
			p.consume(lexer.TokenRightParen, "expected ')' after arguments")
			expr = &ast.CallExpr{BaseNode: ast.BaseNode{StartPos: expr.Pos()}, Callee: expr, Args: args}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch tok.Type {
	case lexer.TokenInteger, lexer.TokenFloat, lexer.TokenRational,
		lexer.TokenString, lexer.TokenChar, lexer.TokenTrue, lexer.TokenFalse:
		p.advance()
		return &ast.LiteralExpr{BaseNode: ast.BaseNode{StartPos: tok.Position}, Token: tok}
	case lexer.TokenIdentifier:
		p.advance()
		return &ast.IdentifierExpr{BaseNode: ast.BaseNode{StartPos: tok.Position}, Name: tok.Lexeme}
	case lexer.TokenLeftParen:
		p.advance()
		inner := p.parseExpr()
		p.consume(lexer.TokenRightParen, "expected ')' after expression")
		return &ast.GroupExpr{BaseNode: ast.BaseNode{StartPos: tok.Position}, Inner: inner}
	case lexer.TokenLeftBracket:
		return p.parseBracketExpr()
	case lexer.TokenArr, lexer.TokenVec:
		return p.parseTypedSequenceExpr()
	default:
		p.error(fmt.Sprintf("unexpected token %s in expression", tok.Type))
		p.advance()
		return &ast.IdentifierExpr{BaseNode: ast.BaseNode{StartPos: tok.Position}, Name: "<error>"}
	}
}

// parseBracketExpr disambiguates `[a:b]` (range) from `[a,b,c]` (untyped
// sequence literal) — spec §4.B "Sequence disambiguation".
func (p *Parser) parseBracketExpr() ast.Expr {
	start := p.peek().Position
	p.advance() // '['
	first := p.parseExpr()
	if p.match(lexer.TokenColon) {
		end := p.parseExpr()
		p.consume(lexer.TokenRightBracket, "expected ']' after range")
		return &ast.RangeExpr{BaseNode: ast.BaseNode{StartPos: start}, Start: first, End: end}
	}
	elements := []ast.Expr{first}
	for p.match(lexer.TokenComma) {
		elements = append(elements, p.parseExpr())
	}
	p.consume(lexer.TokenRightBracket, "expected ']' after sequence literal")
	return &ast.SequenceExpr{BaseNode: ast.BaseNode{StartPos: start}, Kind: ast.SequenceUntyped, Elements: elements}
}

// parseTypedSequenceExpr parses `arr[T,N]{...}` or `vec[T]{...}`.
func (p *Parser) parseTypedSequenceExpr() ast.Expr {
	start := p.peek().Position
	typ := p.parseType()

	var kind ast.SequenceKind
	var elem ast.TypeExpr
	var length ast.Expr
	switch t := typ.(type) {
	case *ast.ArrayType:
		kind, elem, length = ast.SequenceArray, t.Elem, t.Length
	case *ast.VectorType:
		kind, elem = ast.SequenceVector, t.Elem
	}

	p.consume(lexer.TokenLeftBrace, "expected '{' after sequence type")
	var elements []ast.Expr
	if p.peek().Type != lexer.TokenRightBrace {
		for {
			elements = append(elements, p.parseExpr())
			if !p.match(lexer.TokenComma) {
				break
			}
		}
	}
	p.consume(lexer.TokenRightBrace, "expected '}' after sequence elements")
	return &ast.SequenceExpr{
		BaseNode: ast.BaseNode{StartPos: start}, Kind: kind,
		ElemType: elem, Length: length, Elements: elements,
	}
}

// --- token-stream helpers ---

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.TokenEOF
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) match(tt lexer.TokenType) bool {
	if p.peek().Type != tt {
		return false
	}
	p.advance()
	return true
}

func (p *Parser) consume(tt lexer.TokenType, msg string) lexer.Token {
	if p.peek().Type == tt {
		return p.advance()
	}
	p.error(msg)
	return p.peek()
}

func (p *Parser) consumeIdentifierName() string {
	tok := p.consume(lexer.TokenIdentifier, "expected identifier")
	return tok.Lexeme
}

func (p *Parser) consumeTerminator() {
	p.consume(lexer.TokenTerminator, "expected statement terminator")
}

func (p *Parser) skipTerminators() {
	for p.peek().Type == lexer.TokenTerminator {
		p.advance()
	}
}

func (p *Parser) error(msg string) {
	formatted := fmt.Sprintf("%s: %s", p.peek().Position.String(), msg)
	p.errored = true
	if p.sink == nil {
		panic(formatted)
	}
	p.sink(formatted)
}

// synchronize discards tokens until the next top-level keyword, letting the
// parser continue after a syntax error (spec §4.B error model).
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().Type {
		case lexer.TokenFn, lexer.TokenStruct, lexer.TokenVar,
			lexer.TokenConst, lexer.TokenImpl, lexer.TokenInterface:
			return
		}
		p.advance()
	}
}
