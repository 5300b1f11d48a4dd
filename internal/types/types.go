// Package types implements the semantic type system the checker refines
// values into (spec §3.5). Unlike the surface ast.TypeExpr (a syntactic
// annotation), a types.Type is compared structurally and may be partially
// unknown — an unresolved component is always an explicit Unknown value,
// never a nil/absent field (spec §3.5 "never by absence of a node").
package types

import (
	"fmt"
	"strings"
)

// Type is the interface every semantic type implements.
//
// DESIGN CHOICE: a sealed interface (unexported kind method) rather than a
// struct with a "Kind" tag, matching the teacher's semantic/types package —
// each concrete type gets its own struct, and type switches in the checker
// are the implementer's first line of defense against a missed case (spec
// §9 "Polymorphism over IR kinds").
type Type interface {
	fmt.Stringer

	// Known reports whether this type (and, recursively, every required
	// subcomponent) is fully resolved.
	Known() bool

	// Methods returns the method set attached to this type by impl blocks
	// (spec §4.G "Impl blocks"; grounded on original_source's Type.methods
	// dict, which every semantic type carries, not only structs).
	Methods() map[string]*Function

	kind() typeKind
}

type typeKind int

const (
	kindUnknown typeKind = iota
	kindPrimitive
	kindSequence
	kindFunction
	kindStruct
	kindInterface
)

// methodSet is embedded by every concrete type to supply Methods().
type methodSet struct {
	methods map[string]*Function
}

func (m *methodSet) Methods() map[string]*Function {
	if m.methods == nil {
		m.methods = make(map[string]*Function)
	}
	return m.methods
}

// AddMethod attaches a method to a type's method set (used by DeclareMethods
// lowering / checking — spec §4.G).
func AddMethod(t Type, name string, fn *Function) {
	t.Methods()[name] = fn
}

// Unknown is the explicit "not yet resolved" marker (spec §3.5). It is a
// valid Type value everywhere a Type is expected; Known() reports false.
type Unknown struct{ methodSet }

func (u *Unknown) String() string  { return "<unknown>" }
func (u *Unknown) Known() bool     { return false }
func (u *Unknown) kind() typeKind  { return kindUnknown }

// IsUnknown reports whether t is the Unknown marker.
func IsUnknown(t Type) bool {
	_, ok := t.(*Unknown)
	return ok || t == nil
}

// New returns a fresh Unknown marker. Every ref without a type hint starts
// life pointing at one of these (spec §3.3 "Types may be partially known").
func New() Type { return &Unknown{} }

// PrimitiveKind enumerates the primitive base types (spec §3.5).
type PrimitiveKind int

const (
	Int PrimitiveKind = iota
	Float
	Rational
	Char
	Bool
	Str
)

func (k PrimitiveKind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Rational:
		return "rational"
	case Char:
		return "char"
	case Bool:
		return "bool"
	case Str:
		return "str"
	default:
		return "<invalid primitive>"
	}
}

// Primitive is a base numeric/char/bool/string type. Primitives are
// singletons (spec §9 "Predefined type instances"-style pattern, grounded
// on teacher's types.Int/types.Float package vars).
type Primitive struct {
	methodSet
	Kind PrimitiveKind
}

func (p *Primitive) String() string { return p.Kind.String() }
func (p *Primitive) Known() bool    { return true }
func (p *Primitive) kind() typeKind { return kindPrimitive }

var (
	IntType      = &Primitive{Kind: Int}
	FloatType    = &Primitive{Kind: Float}
	RationalType = &Primitive{Kind: Rational}
	CharType     = &Primitive{Kind: Char}
	BoolType     = &Primitive{Kind: Bool}
	StrType      = &Primitive{Kind: Str}
)

// PrimitiveByName resolves a builtin primitive type name, used by the
// builtin environment (spec §4.C) when populating the root scope.
func PrimitiveByName(name string) (Type, bool) {
	switch name {
	case "int":
		return IntType, true
	case "float":
		return FloatType, true
	case "rational":
		return RationalType, true
	case "char":
		return CharType, true
	case "bool":
		return BoolType, true
	case "str":
		return StrType, true
	default:
		return nil, false
	}
}

// SequenceKind distinguishes array from vector specializations (spec §3.5;
// string is a specialization of sequence but is kept as its own Primitive
// for simplicity, matching how the original source treats str as basic).
type SequenceKind int

const (
	Array SequenceKind = iota
	Vector
)

func (k SequenceKind) String() string {
	if k == Array {
		return "array"
	}
	return "vector"
}

// Sequence is a fixed-length array or a dynamic vector over an element
// type. Length is only meaningful for Array; -1 means "not yet known".
type Sequence struct {
	methodSet
	SeqKind SequenceKind
	Elem    Type
	Length  int
}

func (s *Sequence) String() string {
	if s.SeqKind == Array {
		if s.Length < 0 {
			return fmt.Sprintf("arr[%s,?]", s.Elem)
		}
		return fmt.Sprintf("arr[%s,%d]", s.Elem, s.Length)
	}
	return fmt.Sprintf("vec[%s]", s.Elem)
}

func (s *Sequence) Known() bool {
	return s.Elem != nil && s.Elem.Known() && (s.SeqKind == Vector || s.Length >= 0)
}

func (s *Sequence) kind() typeKind { return kindSequence }

// Function is a parameter-type list plus a return type. A nil Params
// entry or Return value is represented by an Unknown, never by a shorter
// slice (invariant I4: params keep the signature's length and order).
type Function struct {
	methodSet
	Params []Type
	Return Type // Unknown until lowered/checked; resolves to NoReturn for a function with no Return statement and no declared result type, or to a concrete type otherwise.
}

// NoReturn is the sentinel meaning "this function returns nothing" (spec
// §3.5 "nil ≡ no return"). It is always Known().
type noReturn struct{ methodSet }

func (n *noReturn) String() string  { return "nil" }
func (n *noReturn) Known() bool     { return true }
func (n *noReturn) kind() typeKind  { return kindUnknown }

// NoReturn is the shared instance used as Function.Return for functions
// with no declared/inferred return value.
var NoReturn Type = &noReturn{}

func IsNoReturn(t Type) bool {
	_, ok := t.(*noReturn)
	return ok
}

func (f *Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("fn (%s) -> %s", strings.Join(parts, ", "), f.Return)
}

func (f *Function) Known() bool {
	if f.Return == nil || !f.Return.Known() {
		return false
	}
	for _, p := range f.Params {
		if p == nil || !p.Known() {
			return false
		}
	}
	return true
}

func (f *Function) kind() typeKind { return kindFunction }

// Field is one ordered, named member of a Struct.
type Field struct {
	Name string
	Type Type
}

// Struct is an ordered set of named fields. This package has no separate
// equality operation for structs: Update compares two Structs field for
// field (same names in the same order, each field type unified) and does
// not compare their Name.
type Struct struct {
	methodSet
	Name   string
	Fields []Field
}

func (s *Struct) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.Name + " " + f.Type.String()
	}
	return fmt.Sprintf("struct %s {%s}", s.Name, strings.Join(parts, ", "))
}

func (s *Struct) Known() bool {
	for _, f := range s.Fields {
		if f.Type == nil || !f.Type.Known() {
			return false
		}
	}
	return true
}

func (s *Struct) kind() typeKind { return kindStruct }

func (s *Struct) FieldType(name string) (Type, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// Interface is a named set of method signatures (spec §3.2/§4.G).
type Interface struct {
	methodSet
	Name    string
	Methods_ map[string]*Function
}

func (i *Interface) String() string {
	names := make([]string, 0, len(i.Methods_))
	for name := range i.Methods_ {
		names = append(names, name)
	}
	return fmt.Sprintf("interface %s {%s}", i.Name, strings.Join(names, ", "))
}

func (i *Interface) Known() bool    { return true }
func (i *Interface) kind() typeKind { return kindInterface }

// Predicates (spec §4.G operator rules), grounded on original_source's
// is_numeric/is_string/is_bool/is_iterable.

func IsNumeric(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && (p.Kind == Int || p.Kind == Float || p.Kind == Rational)
}

func IsString(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.Kind == Str
}

func IsBool(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.Kind == Bool
}

func IsInt(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && p.Kind == Int
}

func IsIterable(t Type) bool {
	_, ok := t.(*Sequence)
	return ok || IsString(t)
}

// numericRank orders the widening promotion int < rational < float (spec
// §4.G "Tie-break for mixed numeric literals").
func numericRank(t Type) int {
	p, ok := t.(*Primitive)
	if !ok {
		return -1
	}
	switch p.Kind {
	case Int:
		return 0
	case Rational:
		return 1
	case Float:
		return 2
	default:
		return -1
	}
}

// Widen returns the wider of two numeric types under int < rational <
// float. Both arguments must already satisfy IsNumeric.
func Widen(a, b Type) Type {
	if numericRank(b) > numericRank(a) {
		return b
	}
	return a
}
