// Package builtin populates the root scope with the primitive type
// refs and intrinsic function refs every pipeline run starts from
// (§4.C, §5.A "Global builtins" — construct once, pass explicitly rather
// than reaching for global mutable state, grounded on the teacher's
// practice of threading a *symtab.Scope through the checker rather than
// keeping one as a package var).
package builtin

import (
	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/scope"
	"github.com/hassan/langcore/internal/types"
)

// RangeName is the intrinsic constructor `[a:b]` lowers a call to
// (§4.D "Sequence / range").
const RangeName = "range"

// Root builds a fresh root scope: one ref per primitive type name, plus
// the range constructor. Each pipeline run gets its own instance so
// refs from unrelated compilations never alias (invariant I3 would
// otherwise be violated across runs sharing one builtin environment).
func Root() *scope.Scope {
	root := scope.New()
	for _, name := range []string{"int", "float", "rational", "char", "bool", "str"} {
		typ, _ := types.PrimitiveByName(name)
		ref := ir.NewVariableRef(name, lexer.Position{})
		ref.Constant = true
		ref.SetType(typ)
		root.Declare(name, ref)
	}
	root.Declare(RangeName, rangeRef())
	return root
}

// rangeRef models `[a:b]` as a call to a two-parameter intrinsic
// returning arr[int, None] (§4.D, SPEC_FULL.md's range expression
// supplement). Both parameters and the return type are fully known up
// front; the checker's Update calls on them are therefore always
// no-ops, matching how a true intrinsic's signature is never inferred
// from a call site.
func rangeRef() *ir.FunctionRef {
	a := ir.NewParameterRef("start", lexer.Position{})
	a.SetType(types.IntType)
	b := ir.NewParameterRef("end", lexer.Position{})
	b.SetType(types.IntType)
	fn := ir.NewFunctionRef(RangeName, []*ir.ParameterRef{a, b}, lexer.Position{})
	fn.SetType(&types.Function{
		Params: []types.Type{types.IntType, types.IntType},
		Return: &types.Sequence{SeqKind: types.Array, Elem: types.IntType, Length: -1},
	})
	return fn
}
