package lower

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hassan/langcore/internal/builtin"
	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/parser/ast"
	"github.com/hassan/langcore/internal/types"
)

// lowerExpr lowers e in rvalue position, regardless of ambient wantRef
// state (save/restore keeps the flag from leaking into sibling calls).
func (l *Lowerer) lowerExpr(e ast.Expr) (ir.Value, error) {
	prev := l.wantRef
	l.wantRef = false
	v, err := e.Accept(l)
	l.wantRef = prev
	if err != nil {
		return nil, err
	}
	val, _ := v.(ir.Value)
	return val, nil
}

// lowerRef lowers e in lvalue position: only identifiers, selectors, and
// index expressions can produce a Ref.
func (l *Lowerer) lowerRef(e ast.Expr) (ir.Ref, error) {
	prev := l.wantRef
	l.wantRef = true
	v, err := e.Accept(l)
	l.wantRef = prev
	if err != nil {
		return nil, err
	}
	ref, ok := v.(ir.Ref)
	if !ok {
		l.error(e.Pos(), "expression is not assignable")
		return nil, fmt.Errorf("not assignable")
	}
	return ref, nil
}

func (l *Lowerer) lowerArgs(exprs []ast.Expr) ([]ir.Value, error) {
	args := make([]ir.Value, len(exprs))
	for i, a := range exprs {
		v, err := l.lowerExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (l *Lowerer) VisitLiteralExpr(e *ast.LiteralExpr) (interface{}, error) {
	val, typ := literalValue(e.Token)
	return &ir.Constant{Val: val, Typ: typ}, nil
}

// literalValue converts a literal token's lexeme into its Go runtime
// representation and a known primitive type (§3.5 predefined types).
func literalValue(tok lexer.Token) (interface{}, types.Type) {
	switch tok.Type {
	case lexer.TokenInteger:
		n, _ := strconv.Atoi(tok.Lexeme)
		return n, types.IntType
	case lexer.TokenFloat:
		f, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return f, types.FloatType
	case lexer.TokenRational:
		return tok.Lexeme, types.RationalType
	case lexer.TokenString:
		return strings.Trim(tok.Lexeme, `"`), types.StrType
	case lexer.TokenChar:
		runes := []rune(strings.Trim(tok.Lexeme, "'"))
		var r rune
		if len(runes) > 0 {
			r = runes[0]
		}
		return r, types.CharType
	case lexer.TokenTrue:
		return true, types.BoolType
	case lexer.TokenFalse:
		return false, types.BoolType
	default:
		return nil, types.New()
	}
}

func (l *Lowerer) VisitIdentifierExpr(e *ast.IdentifierExpr) (interface{}, error) {
	ref, ok := l.scope.Lookup(e.Name)
	if !ok {
		l.error(e.Pos(), "undeclared name "+e.Name)
		return nil, fmt.Errorf("undeclared name %s", e.Name)
	}
	if l.wantRef {
		return ref, nil
	}
	return &ir.Load{Ref: ref, Typ: types.New()}, nil
}

func (l *Lowerer) VisitRangeExpr(e *ast.RangeExpr) (interface{}, error) {
	start, err := l.lowerExpr(e.Start)
	if err != nil {
		return nil, err
	}
	end, err := l.lowerExpr(e.End)
	if err != nil {
		return nil, err
	}
	rangeRef, _ := l.builtinScope.Lookup(builtin.RangeName)
	fn := rangeRef.(*ir.FunctionRef)
	args := []ir.Value{start, end}
	fn.RecordCall(args)
	return &ir.Call{Target: fn, Args: args, Typ: types.New(), At: e.Pos()}, nil
}

func (l *Lowerer) VisitGroupExpr(e *ast.GroupExpr) (interface{}, error) {
	return e.Inner.Accept(l)
}

func (l *Lowerer) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	switch callee := e.Callee.(type) {
	case *ast.IdentifierExpr:
		if st, ok := l.structTypes[callee.Name]; ok {
			args, err := l.lowerArgs(e.Args)
			if err != nil {
				return nil, err
			}
			return &ir.StructLiteral{StructType: st, Fields: args}, nil
		}
		ref, ok := l.scope.Lookup(callee.Name)
		if !ok {
			l.error(callee.Pos(), "undeclared name "+callee.Name)
			return nil, fmt.Errorf("undeclared name %s", callee.Name)
		}
		args, err := l.lowerArgs(e.Args)
		if err != nil {
			return nil, err
		}
		if fn, ok := ref.(*ir.FunctionRef); ok {
			fn.RecordCall(args)
		}
		return &ir.Call{Target: ref, Args: args, Typ: types.New(), At: e.Pos()}, nil

	case *ast.SelectorExpr:
		parent, err := l.lowerRef(callee.Target)
		if err != nil {
			return nil, err
		}
		field := l.fieldRefFor(parent, callee.Name, callee.Pos())
		args, err := l.lowerArgs(e.Args)
		if err != nil {
			return nil, err
		}
		self := &ir.Load{Ref: parent, Typ: parent.Type()}
		args = append([]ir.Value{self}, args...)
		for _, a := range args {
			field.AddValue(a)
		}
		return &ir.Call{Target: field, Args: args, Typ: types.New(), At: e.Pos()}, nil

	default:
		target, err := l.lowerExpr(e.Callee)
		if err != nil {
			return nil, err
		}
		args, err := l.lowerArgs(e.Args)
		if err != nil {
			return nil, err
		}
		return &ir.Call{Target: target, Args: args, Typ: types.New(), At: e.Pos()}, nil
	}
}

func (l *Lowerer) VisitIndexExpr(e *ast.IndexExpr) (interface{}, error) {
	parent, err := l.lowerRef(e.Target)
	if err != nil {
		return nil, err
	}
	idx, err := l.lowerExpr(e.Index)
	if err != nil {
		return nil, err
	}
	ref := ir.NewIndexRef(parent, idx, e.Pos())
	if l.wantRef {
		return ref, nil
	}
	return &ir.Load{Ref: ref, Typ: types.New()}, nil
}

func (l *Lowerer) VisitSelectorExpr(e *ast.SelectorExpr) (interface{}, error) {
	parent, err := l.lowerRef(e.Target)
	if err != nil {
		return nil, err
	}
	field := l.fieldRefFor(parent, e.Name, e.Pos())
	if l.wantRef {
		return field, nil
	}
	return &ir.Load{Ref: field, Typ: types.New()}, nil
}

func (l *Lowerer) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	operand, err := l.lowerExpr(e.Operand)
	if err != nil {
		return nil, err
	}
	return &ir.Unary{Op: e.Op.Lexeme, Operand: operand, Typ: types.New(), At: e.Pos()}, nil
}

func (l *Lowerer) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	left, err := l.lowerExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := l.lowerExpr(e.Right)
	if err != nil {
		return nil, err
	}
	return &ir.Binary{Op: e.Op.Lexeme, Left: left, Right: right, Typ: types.New(), At: e.Pos()}, nil
}

func (l *Lowerer) VisitSequenceExpr(e *ast.SequenceExpr) (interface{}, error) {
	elements, err := l.lowerArgs(e.Elements)
	if err != nil {
		return nil, err
	}
	var kind types.SequenceKind
	var elem types.Type = types.New()
	length := -1
	switch e.Kind {
	case ast.SequenceArray:
		kind = types.Array
		if e.ElemType != nil {
			elem = l.typeExprToType(e.ElemType)
		}
		if n, ok := l.constIntOf(e.Length); ok {
			length = n
		}
	case ast.SequenceVector:
		kind = types.Vector
		if e.ElemType != nil {
			elem = l.typeExprToType(e.ElemType)
		}
	default: // SequenceUntyped
		kind = types.Array
		if len(elements) > 0 {
			elem = elements[0].Type()
		}
		length = len(elements)
	}
	return &ir.Sequence{Kind: kind, Elements: elements, Typ: &types.Sequence{SeqKind: kind, Elem: elem, Length: length}}, nil
}

// constIntOf extracts the literal integer value out of an array length
// expression, used only to seed the Sequence type hint (§3.5).
func (l *Lowerer) constIntOf(e ast.Expr) (int, bool) {
	lit, ok := e.(*ast.LiteralExpr)
	if !ok || lit.Token.Type != lexer.TokenInteger {
		return 0, false
	}
	n, err := strconv.Atoi(lit.Token.Lexeme)
	return n, err == nil
}
