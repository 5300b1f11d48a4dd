package ast

import "github.com/hassan/langcore/internal/lexer"

// LiteralExpr is an integer, float, rational, string, char, or bool literal.
type LiteralExpr struct {
	BaseNode
	Token lexer.Token
}

func (e *LiteralExpr) exprNode() {}
func (e *LiteralExpr) Accept(v Visitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// IdentifierExpr names a variable, function, type, or field.
type IdentifierExpr struct {
	BaseNode
	Name string
}

func (e *IdentifierExpr) exprNode() {}
func (e *IdentifierExpr) Accept(v Visitor) (interface{}, error) { return v.VisitIdentifierExpr(e) }

// RangeExpr is `[start:end]`, lowered to a call of the builtin range
// constructor (spec §4.D).
type RangeExpr struct {
	BaseNode
	Start, End Expr
}

func (e *RangeExpr) exprNode() {}
func (e *RangeExpr) Accept(v Visitor) (interface{}, error) { return v.VisitRangeExpr(e) }

// GroupExpr is a parenthesized expression; it has no effect on typing or
// lowering beyond passing its inner expression through.
type GroupExpr struct {
	BaseNode
	Inner Expr
}

func (e *GroupExpr) exprNode() {}
func (e *GroupExpr) Accept(v Visitor) (interface{}, error) { return v.VisitGroupExpr(e) }

// CallExpr is `callee(args...)`. The callee may resolve to a function, a
// method (selector with a struct-instance parent), or a struct type
// (construction) — disambiguated during lowering (spec §4.D).
type CallExpr struct {
	BaseNode
	Callee Expr
	Args   []Expr
}

func (e *CallExpr) exprNode() {}
func (e *CallExpr) Accept(v Visitor) (interface{}, error) { return v.VisitCallExpr(e) }

// IndexExpr is `target[index]`.
type IndexExpr struct {
	BaseNode
	Target Expr
	Index  Expr
}

func (e *IndexExpr) exprNode() {}
func (e *IndexExpr) Accept(v Visitor) (interface{}, error) { return v.VisitIndexExpr(e) }

// SelectorExpr is `target.Name`: a struct field or a method reference,
// disambiguated during type checking (invariant I6).
type SelectorExpr struct {
	BaseNode
	Target Expr
	Name   string
}

func (e *SelectorExpr) exprNode() {}
func (e *SelectorExpr) Accept(v Visitor) (interface{}, error) { return v.VisitSelectorExpr(e) }

// UnaryExpr is a prefix `-` or `!`.
type UnaryExpr struct {
	BaseNode
	Op      lexer.Token
	Operand Expr
}

func (e *UnaryExpr) exprNode() {}
func (e *UnaryExpr) Accept(v Visitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// BinaryExpr is an infix arithmetic or comparison expression.
type BinaryExpr struct {
	BaseNode
	Op          lexer.Token
	Left, Right Expr
}

func (e *BinaryExpr) exprNode() {}
func (e *BinaryExpr) Accept(v Visitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// SequenceKind distinguishes the three sequence literal forms (spec §4.B
// "Sequence disambiguation").
type SequenceKind int

const (
	SequenceUntyped SequenceKind = iota // [a, b, c]
	SequenceArray                       // arr[T,N]{...}
	SequenceVector                      // vec[T]{...}
)

// SequenceExpr is an array/vector/untyped sequence literal.
type SequenceExpr struct {
	BaseNode
	Kind     SequenceKind
	ElemType TypeExpr // nil for SequenceUntyped
	Length   Expr     // non-nil only for SequenceArray
	Elements []Expr
}

func (e *SequenceExpr) exprNode() {}
func (e *SequenceExpr) Accept(v Visitor) (interface{}, error) { return v.VisitSequenceExpr(e) }
