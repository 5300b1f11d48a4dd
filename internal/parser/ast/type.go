package ast

// NamedType is a bare type identifier (int, float, bool, str, char, rational,
// or a struct/interface name).
type NamedType struct {
	BaseNode
	Name string
}

func (t *NamedType) typeNode() {}
func (t *NamedType) Accept(v Visitor) (interface{}, error) { return v.VisitNamedType(t) }

// ArrayType is `arr[T,N]`, a fixed-length sequence.
type ArrayType struct {
	BaseNode
	Elem   TypeExpr
	Length Expr
}

func (t *ArrayType) typeNode() {}
func (t *ArrayType) Accept(v Visitor) (interface{}, error) { return v.VisitArrayType(t) }

// VectorType is `vec[T]`, a dynamic sequence.
type VectorType struct {
	BaseNode
	Elem TypeExpr
}

func (t *VectorType) typeNode() {}
func (t *VectorType) Accept(v Visitor) (interface{}, error) { return v.VisitVectorType(t) }

// FuncType is a function signature used as a type (parameter/field
// annotations referring to a function value).
type FuncType struct {
	BaseNode
	Params []TypeExpr
	Result TypeExpr // nil ≡ no return value
}

func (t *FuncType) typeNode() {}
func (t *FuncType) Accept(v Visitor) (interface{}, error) { return v.VisitFuncType(t) }
