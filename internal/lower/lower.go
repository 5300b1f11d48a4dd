// Package lower translates the surface syntax tree into the CFG-IR while
// resolving names (§4.D "IR lowerer"). It performs no type checking: it
// only records syntactic type annotations as hints on refs and populates
// the value-accumulation lists (values, param_values, return_values) the
// checker later drains — grounded on the teacher's internal/ir.Builder,
// generalized from its single-pass SSA construction to the simpler
// Ref/Instruction/Object graph this pipeline lowers into.
package lower

import (
	"fmt"

	"github.com/hassan/langcore/internal/builtin"
	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/parser/ast"
	"github.com/hassan/langcore/internal/scope"
	"github.com/hassan/langcore/internal/types"
)

// ErrorSink receives one formatted diagnostic per lowering error (NameError
// per §7). When nil, the first error is fatal, matching the parser's and
// lexer's sink convention.
type ErrorSink func(msg string)

// Lowerer implements ast.Visitor, walking the AST once and emitting IR as
// it goes. wantRef controls whether an identifier/selector/index use-site
// lowers to its raw Ref (lvalue position) or a Load of it (rvalue
// position) — threaded as a field rather than a Visitor parameter since
// Accept's signature is fixed (§4.D "Name resolution").
type Lowerer struct {
	sink ErrorSink

	builtinScope *scope.Scope
	scope        *scope.Scope
	block        *ir.Block
	fn           *ir.FunctionRef

	structTypes map[string]*types.Struct
	ifaceTypes  map[string]*types.Interface

	wantRef bool
	errored bool
}

// New creates a Lowerer. sink may be nil.
func New(sink ErrorSink) *Lowerer {
	return &Lowerer{
		sink:        sink,
		structTypes: make(map[string]*types.Struct),
		ifaceTypes:  make(map[string]*types.Interface),
	}
}

// Errored reports whether any NameError was raised during Lower.
func (l *Lowerer) Errored() bool { return l.errored }

// Lower builds the IR program for prog, declaring every top-level name
// into a scope that is the builtin environment's child (§3.4).
func (l *Lowerer) Lower(prog *ast.Program) *ir.Program {
	root := builtin.Root()
	l.builtinScope = root
	l.scope = root.Child()

	program := ir.NewProgram()
	l.block = program.Block

	for _, d := range prog.Decls {
		l.lowerTopDecl(d)
	}
	return program
}

func (l *Lowerer) lowerTopDecl(d ast.Decl) {
	if err := d.Accept(l); err != nil {
		l.errored = true
	}
}

func (l *Lowerer) error(pos lexer.Position, msg string) {
	formatted := fmt.Sprintf("%s: %s", pos.String(), msg)
	l.errored = true
	if l.sink == nil {
		panic(formatted)
	}
	l.sink(formatted)
}

// emit appends instr to the current block.
func (l *Lowerer) emit(instr ir.Instruction) {
	l.block.Emit(instr)
}

// fieldRefFor returns the FieldRef cached on parent.Members()[name],
// creating it on first access (§4.D "Selectors and indexing" — cached so
// repeated uses of the same selector share one ref, invariant I3).
func (l *Lowerer) fieldRefFor(parent ir.Ref, name string, pos lexer.Position) *ir.FieldRef {
	if existing, ok := parent.Members()[name]; ok {
		if fr, ok := existing.(*ir.FieldRef); ok {
			return fr
		}
	}
	fr := ir.NewFieldRef(parent, name, pos)
	parent.Members()[name] = fr
	return fr
}
