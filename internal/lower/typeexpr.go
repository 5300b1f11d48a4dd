package lower

import (
	"github.com/hassan/langcore/internal/parser/ast"
	"github.com/hassan/langcore/internal/types"
)

// typeExprToType resolves a syntactic type annotation into a semantic type
// hint (§3.5). A nil te (unannotated) is an explicit Unknown, never a Go
// nil, matching §3.5 "never by absence of a node".
func (l *Lowerer) typeExprToType(te ast.TypeExpr) types.Type {
	if te == nil {
		return types.New()
	}
	v, err := te.Accept(l)
	if err != nil {
		return types.New()
	}
	t, ok := v.(types.Type)
	if !ok {
		return types.New()
	}
	return t
}

func (l *Lowerer) VisitNamedType(t *ast.NamedType) (interface{}, error) {
	if prim, ok := types.PrimitiveByName(t.Name); ok {
		return prim, nil
	}
	if st, ok := l.structTypes[t.Name]; ok {
		return st, nil
	}
	if it, ok := l.ifaceTypes[t.Name]; ok {
		return it, nil
	}
	l.error(t.Pos(), "undeclared type "+t.Name)
	return types.New(), nil
}

func (l *Lowerer) VisitArrayType(t *ast.ArrayType) (interface{}, error) {
	elem := l.typeExprToType(t.Elem)
	length := -1
	if n, ok := l.constIntOf(t.Length); ok {
		length = n
	}
	return &types.Sequence{SeqKind: types.Array, Elem: elem, Length: length}, nil
}

func (l *Lowerer) VisitVectorType(t *ast.VectorType) (interface{}, error) {
	return &types.Sequence{SeqKind: types.Vector, Elem: l.typeExprToType(t.Elem)}, nil
}

func (l *Lowerer) VisitFuncType(t *ast.FuncType) (interface{}, error) {
	params := make([]types.Type, len(t.Params))
	for i, p := range t.Params {
		params[i] = l.typeExprToType(p)
	}
	ret := types.Type(types.NoReturn)
	if t.Result != nil {
		ret = l.typeExprToType(t.Result)
	}
	return &types.Function{Params: params, Return: ret}, nil
}
