package ir

import (
	"crypto/sha1"
	"fmt"
	"strconv"
	"strings"

	"github.com/hassan/langcore/internal/types"
)

// Printer renders a Program as the line-oriented textual IR of spec §6.2.
//
// Block identifiers are either hex hashes derived from the block's
// identity (production) or monotonically assigned integers (Test mode) —
// grounded on original_source/ir_nodes.py's IRPrinter, whose id_hash
// memoizes a block the first time it is printed and prints only the id on
// every later reference. Test mode is the deterministic external contract
// golden tests rely on (spec §6.2, §8 P8).
type Printer struct {
	Test bool

	ids     map[*Block]string
	queue   []*Block
	counter int
}

// NewPrinter creates a Printer. In test mode block identifiers are
// sequential integers assigned in first-seen order.
func NewPrinter(test bool) *Printer {
	return &Printer{Test: test, ids: make(map[*Block]string)}
}

// Print renders prog starting from its root block, discovering every
// other reachable block (function entries via Declare, impl bodies via
// DeclareMethods, branch targets via Branch/CBranch) as it walks.
func (p *Printer) Print(prog *Program) string {
	p.idFor(prog.Block)
	var stanzas []string
	for len(p.queue) > 0 {
		b := p.queue[0]
		p.queue = p.queue[1:]
		stanzas = append(stanzas, p.printBlock(b))
	}
	return strings.Join(stanzas, "\n")
}

// idFor returns the id assigned to b, assigning and enqueueing one the
// first time b is referenced.
func (p *Printer) idFor(b *Block) string {
	if id, ok := p.ids[b]; ok {
		return id
	}
	var id string
	if p.Test {
		p.counter++
		id = strconv.Itoa(p.counter)
	} else {
		id = blockHash(b)
	}
	p.ids[b] = id
	p.queue = append(p.queue, b)
	return id
}

func blockHash(b *Block) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("%p", b)))
	return fmt.Sprintf("%x", sum[:2])
}

func (p *Printer) printBlock(b *Block) string {
	var sb strings.Builder
	sb.WriteString(p.ids[b])
	sb.WriteString(":\n")
	if len(b.Instrs) == 0 {
		sb.WriteString(" [empty]")
		return sb.String()
	}
	lines := make([]string, len(b.Instrs))
	for i, instr := range b.Instrs {
		lines[i] = " " + p.printInstr(instr)
	}
	sb.WriteString(strings.Join(lines, "\n"))
	return sb.String()
}

func (p *Printer) printInstr(instr Instruction) string {
	switch n := instr.(type) {
	case *Declare:
		if fn, ok := n.Ref.(*FunctionRef); ok && fn.Entry != nil {
			head := fmt.Sprintf("DECLARE %s #%s", p.funcSignatureText(fn), p.idFor(fn.Entry))
			return withTypeSuffix(head, fn.Type())
		}
		return "DECLARE " + p.printValue(n.Ref)
	case *Assign:
		return "ASSIGN " + p.printValue(n.Target) + " <- " + p.printValue(n.Val)
	case *Return:
		if n.Val == nil {
			return "RETURN"
		}
		return "RETURN " + p.printValue(n.Val)
	case *Branch:
		return "BRANCH #" + p.idFor(n.Target)
	case *CBranch:
		return fmt.Sprintf("CBRANCH %s #%s #%s", p.printValue(n.Cond), p.idFor(n.True), p.idFor(n.False))
	case *DeclareMethods:
		return fmt.Sprintf("DECLARE_METHODS %s #%s", n.Target.String(), p.idFor(n.Block))
	case ExprInstr:
		return p.printValue(n)
	default:
		return fmt.Sprintf("<unknown instruction %T>", instr)
	}
}

// funcSignatureText renders a FunctionRef the way it appears both as a
// value and in a DECLARE line: name(param, param, ...).
func (p *Printer) funcSignatureText(fn *FunctionRef) string {
	names := make([]string, len(fn.Params))
	for i, param := range fn.Params {
		names[i] = param.Name()
	}
	return fmt.Sprintf("%s(%s)", fn.Name(), strings.Join(names, ", "))
}

// printValue renders any Value, appending " [type]" whenever the value's
// type is fully known (spec §6.2 value grammar).
func (p *Printer) printValue(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return withTypeSuffix(p.printValueBase(v), v.Type())
}

func (p *Printer) printValueBase(v Value) string {
	switch n := v.(type) {
	case *Constant:
		return literalText(n.Val)
	case *Load:
		return "LOAD(" + p.printValue(n.Ref) + ")"
	case *Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = p.printValue(a)
		}
		return fmt.Sprintf("CALL %s(%s)", p.printValue(n.Target), strings.Join(args, ", "))
	case *Unary:
		return n.Op + p.printValue(n.Operand)
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", p.printValue(n.Left), n.Op, p.printValue(n.Right))
	case *Sequence:
		parts := make([]string, len(n.Elements))
		for i, e := range n.Elements {
			parts[i] = p.printValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *StructLiteral:
		parts := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			parts[i] = p.printValue(f)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *FunctionRef:
		return p.funcSignatureText(n)
	case Ref:
		return n.Name()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func withTypeSuffix(base string, t types.Type) string {
	if t != nil && t.Known() {
		return base + " [" + t.String() + "]"
	}
	return base
}

func literalText(v interface{}) string {
	return fmt.Sprintf("%v", v)
}
