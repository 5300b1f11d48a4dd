// Package check implements the deferred/bidirectional type checker:
// mutates every reachable IR node until its type is fully resolved, or
// reports a diagnostic (§4.G "Type checker"). Grounded on
// original_source/src/python/type_checker.py's TypeChecker (operator
// predicate tables, match/widen rules, selector field-vs-method
// disambiguation, impl-block self binding) — generalized from that
// file's single-pass AST walk to a repeated-sweep fixed point over the
// IR graph, since (unlike the original) function declarations and call
// sites here may appear in either order and refs may need several passes
// before every component type is known.
package check

import (
	"fmt"

	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/types"
)

// ErrorSink receives one formatted diagnostic per type error, matching
// the lexer/parser/lowerer sink convention.
type ErrorSink func(msg string)

// progress tracks whether a ref is currently being resolved, to break
// cycles within a single sweep (field ref → parent ref → members → ...).
type progress int

const (
	progressEmpty progress = iota
	progressUpdating
	progressCompleted
)

// Checker holds the sweep-local progress map and the error sink.
type Checker struct {
	sink     ErrorSink
	progress map[ir.Ref]progress
	errored  bool
}

func New(sink ErrorSink) *Checker {
	return &Checker{sink: sink}
}

// Errored reports whether any TypeError/ResolutionError was raised.
func (c *Checker) Errored() bool { return c.errored }

func (c *Checker) error(pos lexer.Position, msg string) {
	formatted := fmt.Sprintf("%s: %s", pos.String(), msg)
	c.errored = true
	if c.sink == nil {
		panic(formatted)
	}
	c.sink(formatted)
}

// Check sweeps prog repeatedly, refining every node's type via Update,
// until a sweep makes no further progress (§4.G "Deferred queue" — the
// finite-height argument of invariant I7 bounds the number of sweeps).
// Anything still unresolved after the fixed point is reported as a
// ResolutionError.
func (c *Checker) Check(prog *ir.Program) {
	blocks := prog.Reachable()
	maxPasses := len(blocks) + len(c.collectNodes(blocks)) + 2
	for pass := 0; pass < maxPasses; pass++ {
		c.progress = make(map[ir.Ref]progress)
		before := c.unresolvedCount(blocks)
		for _, b := range blocks {
			for _, instr := range b.Instrs {
				c.checkInstr(instr)
			}
		}
		after := c.unresolvedCount(blocks)
		if after == 0 {
			return
		}
		if after == before {
			c.reportUnresolved(blocks)
			return
		}
	}
	c.reportUnresolved(blocks)
}

func (c *Checker) checkInstr(instr ir.Instruction) {
	switch n := instr.(type) {
	case *ir.Declare:
		c.checkRef(n.Ref)
		if fn, ok := n.Ref.(*ir.FunctionRef); ok {
			c.refineFunction(fn)
		}
	case *ir.Assign:
		c.checkRef(n.Target)
		vt := c.checkValue(n.Val)
		updated, err := types.Update(n.Target.Type(), vt)
		if err != nil {
			c.error(n.At, err.Error())
			return
		}
		n.Target.SetType(updated)
	case *ir.Return:
		if n.Val != nil {
			c.checkValue(n.Val)
		}
	case *ir.Branch:
		// no type obligation
	case *ir.CBranch:
		ct := c.checkValue(n.Cond)
		if !types.IsUnknown(ct) && !types.IsBool(ct) {
			c.error(n.At, "branch condition must be bool")
		}
	case *ir.DeclareMethods:
		if n.Interface != nil {
			c.checkConformance(n)
		}
	case ir.ExprInstr:
		c.checkValue(n)
	}
}

// refineFunction synchronizes a function's signature with every observed
// call-site argument and every observed return value (§4.G "Calls",
// "Returns").
func (c *Checker) refineFunction(fn *ir.FunctionRef) {
	sig, ok := fn.Type().(*types.Function)
	if !ok {
		return
	}
	for i, p := range fn.Params {
		if i >= len(sig.Params) {
			continue
		}
		for _, v := range fn.ParamValues[i] {
			vt := c.checkValue(v)
			updated, err := types.Update(sig.Params[i], vt)
			if err != nil {
				c.error(p.Pos(), err.Error())
				continue
			}
			sig.Params[i] = updated
			p.SetType(updated)
		}
	}
	if len(fn.ReturnValues) == 0 && !fn.DeclaredReturn {
		sig.Return = types.NoReturn
	}
	for _, v := range fn.ReturnValues {
		vt := c.checkValue(v)
		updated, err := types.Update(sig.Return, vt)
		if err != nil {
			c.error(fn.Pos(), err.Error())
			continue
		}
		sig.Return = updated
	}
}
