// Package ast defines the surface syntax tree produced by the parser and
// consumed only by the IR lowerer (spec §3.2): nodes are never mutated
// after parsing.
package ast

import "github.com/hassan/langcore/internal/lexer"

// Node is the base interface implemented by every AST node.
type Node interface {
	Pos() lexer.Position
}

// Expr is a node that produces a value: literal, identifier, range, group,
// call, index, selector, unary, binary, sequence literal.
type Expr interface {
	Node
	Accept(v Visitor) (interface{}, error)
	exprNode()
}

// TypeExpr is a syntactic type annotation: named type, array, vector, or
// function signature.
type TypeExpr interface {
	Node
	Accept(v Visitor) (interface{}, error)
	typeNode()
}

// Stmt is a node that performs an action: block, declaration-stmt,
// expression-stmt, if, while, return, assignment.
type Stmt interface {
	Node
	Accept(v Visitor) error
	stmtNode()
}

// Decl introduces a name: function, struct, interface, impl, variable,
// constant. Every Decl is also a Stmt so top-level declarations and
// declaration-statements share one AST shape.
type Decl interface {
	Stmt
	declNode()
}

// Visitor is the AST traversal interface, implemented once per operation
// (the lowerer) rather than via type switches scattered through callers.
type Visitor interface {
	VisitLiteralExpr(e *LiteralExpr) (interface{}, error)
	VisitIdentifierExpr(e *IdentifierExpr) (interface{}, error)
	VisitRangeExpr(e *RangeExpr) (interface{}, error)
	VisitGroupExpr(e *GroupExpr) (interface{}, error)
	VisitCallExpr(e *CallExpr) (interface{}, error)
	VisitIndexExpr(e *IndexExpr) (interface{}, error)
	VisitSelectorExpr(e *SelectorExpr) (interface{}, error)
	VisitUnaryExpr(e *UnaryExpr) (interface{}, error)
	VisitBinaryExpr(e *BinaryExpr) (interface{}, error)
	VisitSequenceExpr(e *SequenceExpr) (interface{}, error)

	VisitNamedType(t *NamedType) (interface{}, error)
	VisitArrayType(t *ArrayType) (interface{}, error)
	VisitVectorType(t *VectorType) (interface{}, error)
	VisitFuncType(t *FuncType) (interface{}, error)

	VisitBlockStmt(s *BlockStmt) error
	VisitDeclStmt(s *DeclStmt) error
	VisitExprStmt(s *ExprStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitReturnStmt(s *ReturnStmt) error
	VisitAssignStmt(s *AssignStmt) error

	VisitFuncDecl(d *FuncDecl) error
	VisitStructDecl(d *StructDecl) error
	VisitInterfaceDecl(d *InterfaceDecl) error
	VisitImplDecl(d *ImplDecl) error
	VisitVarDecl(d *VarDecl) error
	VisitConstDecl(d *ConstDecl) error
}

// Program is the root of the AST: a flat list of top-level declarations
// (spec §3.2 has no package/import concept to nest them under).
type Program struct {
	Decls []Decl
}

func (p *Program) Pos() lexer.Position {
	if len(p.Decls) == 0 {
		return lexer.Position{}
	}
	return p.Decls[0].Pos()
}

// BaseNode supplies Pos() to every concrete node via embedding.
type BaseNode struct {
	StartPos lexer.Position
}

func (b *BaseNode) Pos() lexer.Position { return b.StartPos }
