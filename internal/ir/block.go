package ir

import "fmt"

// Block is a straight-line sequence of instructions plus its successor
// blocks (spec §3.3). Deps is kept in sync with whatever Branch/CBranch
// terminates the block so CFG connectivity (spec §8 P4) can be checked by
// walking Deps alone, without re-inspecting instructions.
type Block struct {
	Instrs []Instruction
	Deps   []*Block
}

// NewBlock creates an empty block (spec §4.D "A fresh empty block is
// created lazily at each structural boundary").
func NewBlock() *Block {
	return &Block{}
}

// Emit appends an instruction to the block.
func (b *Block) Emit(instr Instruction) {
	b.Instrs = append(b.Instrs, instr)
}

// AddDep records a successor block, avoiding duplicates.
func (b *Block) AddDep(succ *Block) {
	for _, d := range b.Deps {
		if d == succ {
			return
		}
	}
	b.Deps = append(b.Deps, succ)
}

// Terminated reports whether the block's last instruction is a terminator
// (Return, Branch, CBranch) — invariant I2.
func (b *Block) Terminated() bool {
	if len(b.Instrs) == 0 {
		return false
	}
	return isTerminator(b.Instrs[len(b.Instrs)-1])
}

func isTerminator(instr Instruction) bool {
	switch instr.(type) {
	case *Return, *Branch, *CBranch:
		return true
	default:
		return false
	}
}

// Program is the root of the IR: a single owned block holding top-level
// declarations (spec §3.3).
type Program struct {
	Block *Block
}

func NewProgram() *Program {
	return &Program{Block: NewBlock()}
}

// Reachable returns every block reachable from the program's root block,
// additionally following Declare instructions into each declared
// function's entry block (each FunctionRef.Entry is itself a root, per
// spec invariant I1 "every non-entry block is reachable via deps from
// Program.block" — entries are the graph's designated starting points,
// not destinations reached through someone else's deps).
func (p *Program) Reachable() []*Block {
	seen := map[*Block]bool{}
	var order []*Block
	var visit func(b *Block)
	visit = func(b *Block) {
		if b == nil || seen[b] {
			return
		}
		seen[b] = true
		order = append(order, b)
		for _, dep := range b.Deps {
			visit(dep)
		}
		for _, instr := range b.Instrs {
			if decl, ok := instr.(*Declare); ok {
				if fn, ok := decl.Ref.(*FunctionRef); ok && fn.Entry != nil {
					visit(fn.Entry)
				}
			}
			if dm, ok := instr.(*DeclareMethods); ok {
				visit(dm.Block)
			}
		}
	}
	visit(p.Block)
	return order
}

// Verify checks the structural invariants spec §8 calls out as testable
// properties (P3 block termination, P4 CFG connectivity) and returns one
// error per violation found.
func (p *Program) Verify() []error {
	var errs []error
	reachable := p.Reachable()
	reachableSet := map[*Block]bool{}
	for _, b := range reachable {
		reachableSet[b] = true
	}
	for _, b := range reachable {
		if b != p.Block && len(b.Instrs) > 0 && !b.Terminated() {
			errs = append(errs, fmt.Errorf("block has instructions but no terminator"))
		}
		for _, dep := range b.Deps {
			if !reachableSet[dep] {
				errs = append(errs, fmt.Errorf("block successor is not reachable from the program root"))
			}
		}
	}
	return errs
}
