package ast

// Param is one entry in a function signature's parameter list. Type may be
// nil when unannotated — its type is then inferred from the first call site
// (spec §4.G, grounded on the deferred-parameter-inference seed in the
// original source's CallExpr handling).
type Param struct {
	Name string
	Type TypeExpr
}

// Signature is a function's name, parameter list, and optional result type.
type Signature struct {
	BaseNode
	Name   string
	Params []Param
	Result TypeExpr // nil ≡ no declared return type
}

// FuncDecl is `fn signature block`.
type FuncDecl struct {
	BaseNode
	Sig  Signature
	Body *BlockStmt
}

func (d *FuncDecl) stmtNode() {}
func (d *FuncDecl) declNode() {}
func (d *FuncDecl) Accept(v Visitor) error { return v.VisitFuncDecl(d) }

// FieldDecl is one field of a struct declaration.
type FieldDecl struct {
	Name string
	Type TypeExpr
}

// StructDecl is `struct Name { field* }`.
type StructDecl struct {
	BaseNode
	Name   string
	Fields []FieldDecl
}

func (d *StructDecl) stmtNode() {}
func (d *StructDecl) declNode() {}
func (d *StructDecl) Accept(v Visitor) error { return v.VisitStructDecl(d) }

// InterfaceDecl is `interface Name { signature* }` — a named set of method
// signatures an `impl` block can be checked against (spec §4.G, Open
// Question (c): conformance requires exact method-name-set equality).
type InterfaceDecl struct {
	BaseNode
	Name    string
	Methods []Signature
}

func (d *InterfaceDecl) stmtNode() {}
func (d *InterfaceDecl) declNode() {}
func (d *InterfaceDecl) Accept(v Visitor) error { return v.VisitInterfaceDecl(d) }

// ImplDecl is `impl [Interface for] Target { fn* }`: attaches every method
// declared in the block to Target (spec §4.G "Impl blocks",
// `DeclareMethods`). Interface is "" when the impl does not assert
// conformance to a named interface.
type ImplDecl struct {
	BaseNode
	Target    string
	Interface string
	Methods   []*FuncDecl
}

func (d *ImplDecl) stmtNode() {}
func (d *ImplDecl) declNode() {}
func (d *ImplDecl) Accept(v Visitor) error { return v.VisitImplDecl(d) }

// VarDecl is `var name type? (= expr)? ;`.
type VarDecl struct {
	BaseNode
	Name  string
	Type  TypeExpr // nil if the type must be inferred from Value
	Value Expr     // nil if there is no initializer
}

func (d *VarDecl) stmtNode() {}
func (d *VarDecl) declNode() {}
func (d *VarDecl) Accept(v Visitor) error { return v.VisitVarDecl(d) }

// ConstDecl is `const name type? = expr ;` — a constant always has an
// initializer (spec §4.B grammar).
type ConstDecl struct {
	BaseNode
	Name  string
	Type  TypeExpr
	Value Expr
}

func (d *ConstDecl) stmtNode() {}
func (d *ConstDecl) declNode() {}
func (d *ConstDecl) Accept(v Visitor) error { return v.VisitConstDecl(d) }
