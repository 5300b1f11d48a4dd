package check

import (
	"fmt"

	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/types"
)

// typed is satisfied by every ir.Ref and ir.ExprInstr; it is the minimal
// surface collectNodes needs to measure sweep progress.
type typed interface {
	Type() types.Type
}

// collectNodes gathers every typed node reachable from blocks: declared
// refs (plus a function's parameters), assignment targets and values,
// return values, and branch conditions. It is a coarse proxy used only to
// detect whether a sweep made progress, not a correctness-relevant walk —
// nested sub-expressions are still visited (and thus resolved) via the
// recursive checkValue calls each pass performs.
func (c *Checker) collectNodes(blocks []*ir.Block) []typed {
	var nodes []typed
	seen := make(map[typed]bool)
	add := func(n typed) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		nodes = append(nodes, n)
	}
	for _, b := range blocks {
		for _, instr := range b.Instrs {
			switch n := instr.(type) {
			case *ir.Declare:
				add(n.Ref)
				if fn, ok := n.Ref.(*ir.FunctionRef); ok {
					for _, p := range fn.Params {
						add(p)
					}
				}
			case *ir.Assign:
				add(n.Target)
				if ei, ok := n.Val.(ir.ExprInstr); ok {
					add(ei)
				}
			case *ir.Return:
				if ei, ok := n.Val.(ir.ExprInstr); ok {
					add(ei)
				}
			case *ir.CBranch:
				if ei, ok := n.Cond.(ir.ExprInstr); ok {
					add(ei)
				}
			}
		}
	}
	return nodes
}

func (c *Checker) unresolvedCount(blocks []*ir.Block) int {
	n := 0
	for _, node := range c.collectNodes(blocks) {
		if !node.Type().Known() {
			n++
		}
	}
	return n
}

func (c *Checker) reportUnresolved(blocks []*ir.Block) {
	for _, node := range c.collectNodes(blocks) {
		if node.Type().Known() {
			continue
		}
		c.error(posOf(node), fmt.Sprintf("cannot resolve type of %s", describe(node)))
	}
}

func posOf(node typed) lexer.Position {
	switch n := node.(type) {
	case ir.Ref:
		return n.Pos()
	case interface{ Pos() lexer.Position }:
		return n.Pos()
	}
	return lexer.Position{}
}

func describe(node typed) string {
	if r, ok := node.(ir.Ref); ok {
		return r.Name()
	}
	return "<expression>"
}
