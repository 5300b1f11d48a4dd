// Package ir defines the shared CFG-IR data model (spec §3.3): refs,
// instructions, objects, and the blocks/program that own them. Refs are
// created once by the lowerer and mutated in place by the type checker
// (spec §3.3 "Lifecycle"); nothing else in this package performs either
// job — see internal/lower and internal/check.
package ir

import (
	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/types"
)

// Value is anything usable as an instruction operand: a Ref (read as an
// lvalue/rvalue), a literal Constant, a Sequence/StructLiteral object, or
// an expression-instruction (Load, Call, Unary, Binary). Go's structural
// typing lets every one of those satisfy Value just by having a Type
// method — no wrapper type is needed (spec §3.3 "An instruction may be an
// expression-instruction (has a type)").
type Value interface {
	Type() types.Type
}

// Ref is a named addressable entity: a variable, parameter, constant,
// field, indexed position, function, or method (spec §3.3). Every ref
// carries a (possibly unresolved) type and the two back-reference lists
// the checker's inference depends on: Values (expressions assigned/bound
// here) and Members (named child refs — fields, methods).
type Ref interface {
	Value
	Name() string
	SetType(types.Type)
	Pos() lexer.Position
	AddValue(v Value)
	AllValues() []Value
	Members() map[string]Ref
}

// baseRef is embedded by every concrete Ref kind to supply the common
// bookkeeping (spec §3.3 invariant I3: name resolution must hand back the
// very same *baseRef-embedding struct for every use-site of a binding, so
// refs are always created once by the lowerer and shared by pointer).
type baseRef struct {
	name    string
	typ     types.Type
	pos     lexer.Position
	values  []Value
	members map[string]Ref
}

func newBaseRef(name string, pos lexer.Position) baseRef {
	return baseRef{name: name, typ: types.New(), pos: pos}
}

func (b *baseRef) Name() string         { return b.name }
func (b *baseRef) Type() types.Type     { return b.typ }
func (b *baseRef) SetType(t types.Type) { b.typ = t }
func (b *baseRef) Pos() lexer.Position  { return b.pos }
func (b *baseRef) AddValue(v Value)     { b.values = append(b.values, v) }
func (b *baseRef) AllValues() []Value   { return b.values }
func (b *baseRef) Members() map[string]Ref {
	if b.members == nil {
		b.members = make(map[string]Ref)
	}
	return b.members
}

// VariableRef is a `var` binding.
type VariableRef struct {
	baseRef
	Constant bool // true for refs created by a `const` declaration
}

func NewVariableRef(name string, pos lexer.Position) *VariableRef {
	return &VariableRef{baseRef: newBaseRef(name, pos)}
}

// ParameterRef is one parameter of a function signature (invariant I4).
type ParameterRef struct {
	baseRef
}

func NewParameterRef(name string, pos lexer.Position) *ParameterRef {
	return &ParameterRef{baseRef: newBaseRef(name, pos)}
}

// FieldRef is `target.name`: either a data-field access or a method
// reference, never both (invariant I6) — the lowerer cannot tell which
// until the type checker resolves Parent's type, so both possibilities
// stay open until then.
type FieldRef struct {
	baseRef
	Parent Ref
}

func NewFieldRef(parent Ref, name string, pos lexer.Position) *FieldRef {
	return &FieldRef{baseRef: newBaseRef(name, pos), Parent: parent}
}

// IndexRef is `target[index]`.
type IndexRef struct {
	baseRef
	Parent Ref
	Index  Value
}

func NewIndexRef(parent Ref, index Value, pos lexer.Position) *IndexRef {
	return &IndexRef{baseRef: newBaseRef("", pos), Parent: parent, Index: index}
}

// FunctionRef names a function or a method. ParamValues[i] accumulates
// every argument expression passed to parameter i across every call site
// (spec invariant I4); ReturnValues accumulates every value passed to a
// Return inside the function body. Entry is the block the function's body
// was lowered into.
type FunctionRef struct {
	baseRef
	Params         []*ParameterRef
	ParamValues    [][]Value
	ReturnValues   []Value
	Entry          *Block
	DeclaredReturn bool // true when the source signature named a result type
}

func NewFunctionRef(name string, params []*ParameterRef, pos lexer.Position) *FunctionRef {
	return &FunctionRef{
		baseRef:     newBaseRef(name, pos),
		Params:      params,
		ParamValues: make([][]Value, len(params)),
	}
}

// RecordCall appends one call site's arguments against this function's
// parameters (spec §4.D "Call lowering").
func (f *FunctionRef) RecordCall(args []Value) {
	for i, a := range args {
		if i >= len(f.ParamValues) {
			break
		}
		f.ParamValues[i] = append(f.ParamValues[i], a)
		if i < len(f.Params) {
			f.Params[i].AddValue(a)
		}
	}
}

// Instruction is any of Declare, Assign, Load, Call, Return, Branch,
// CBranch, DeclareMethods, Unary, Binary (spec §3.3).
type Instruction interface {
	instrNode()
}

// ExprInstr is an instruction that also produces a value: Load, Call,
// Unary, Binary (spec §3.3 "An instruction may be an expression-
// instruction").
type ExprInstr interface {
	Instruction
	Value
	SetType(types.Type)
}

// Declare introduces a ref into the current block (a local or top-level
// var/const, a function, or an impl-block method). Struct and interface
// declarations emit no Declare.
type Declare struct {
	Ref Ref
	At  lexer.Position
}

func (*Declare) instrNode() {}

// Assign stores Value into Target (invariant: requires Update(Target.typ,
// Value.typ) to succeed — enforced by the checker, not here).
type Assign struct {
	Target Ref
	Val    Value
	At     lexer.Position
}

func (*Assign) instrNode() {}

// Load reads Ref as an rvalue.
type Load struct {
	Ref Ref
	Typ types.Type
	At  lexer.Position
}

func (*Load) instrNode()          {}
func (l *Load) Type() types.Type  { return l.Typ }
func (l *Load) SetType(t types.Type) { l.Typ = t }

// Call invokes Target (a function, a method, or a function-typed value)
// with Args; struct construction lowers to a StructLiteral, not a Call
// (invariant I5: len(Args) == len(Target.typ.params)).
type Call struct {
	Target Value
	Args   []Value
	Typ    types.Type
	At     lexer.Position
}

func (*Call) instrNode()          {}
func (c *Call) Type() types.Type  { return c.Typ }
func (c *Call) SetType(t types.Type) { c.Typ = t }

// Return ends the current function with Val (nil for a valueless return).
type Return struct {
	Val Value
	At  lexer.Position
}

func (*Return) instrNode() {}

// Branch is an unconditional jump; it is always the last instruction of
// the block that contains it (invariant I2).
type Branch struct {
	Target *Block
	At     lexer.Position
}

func (*Branch) instrNode() {}

// CBranch is a conditional jump.
type CBranch struct {
	Cond  Value
	True  *Block
	False *Block
	At    lexer.Position
}

func (*CBranch) instrNode() {}

// DeclareMethods attaches every function declared in Block to Target as a
// method. Interface is non-nil when the impl block asserted conformance
// to a named interface, left for the checker to verify (invariant:
// method-name-set equality, each signature unified by Update).
type DeclareMethods struct {
	Target    types.Type
	Interface *types.Interface
	Block     *Block
	At        lexer.Position
}

func (*DeclareMethods) instrNode() {}

// Unary is a prefix `-` or `!` expression.
type Unary struct {
	Op      string
	Operand Value
	Typ     types.Type
	At      lexer.Position
}

func (*Unary) instrNode()          {}
func (u *Unary) Type() types.Type  { return u.Typ }
func (u *Unary) SetType(t types.Type) { u.Typ = t }

// Binary is an infix arithmetic or comparison expression.
type Binary struct {
	Op    string
	Left  Value
	Right Value
	Typ   types.Type
	At    lexer.Position
}

func (*Binary) instrNode()          {}
func (b *Binary) Type() types.Type  { return b.Typ }
func (b *Binary) SetType(t types.Type) { b.Typ = t }

// Constant is a literal value object (spec §3.3 Objects).
type Constant struct {
	Val interface{}
	Typ types.Type
}

func (c *Constant) Type() types.Type { return c.Typ }

// Sequence is an array or vector literal object whose elements are
// already-lowered expressions (spec §4.D "Sequence / range").
type Sequence struct {
	Kind     types.SequenceKind
	Elements []Value
	Typ      types.Type
}

func (s *Sequence) Type() types.Type { return s.Typ }

// StructLiteral is a struct construction object.
type StructLiteral struct {
	StructType types.Type
	Fields     []Value
}

func (s *StructLiteral) Type() types.Type { return s.StructType }
