// Package compiler is the driver layer: it wires the lexer, parser,
// lowerer, and checker into the single `Translate` entry point external
// callers (the CLI, batch test harnesses) use instead of touching the
// pipeline stages directly.
package compiler

import (
	"github.com/hassan/langcore/internal/check"
	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/lower"
	"github.com/hassan/langcore/internal/parser"
	"github.com/hassan/langcore/internal/parser/ast"
)

// Stage selects how far Translate carries a compilation.
type Stage int

const (
	StageTokenise Stage = iota
	StageParse
	StageMakeIR
	StageTypecheck
)

// Options is the closed option set the driver API exposes.
type Options struct {
	Stage     Stage
	Test      bool           // deterministic, counter-based block identifiers
	ErrorSink func(string)   // callback invoked with each diagnostic string
	EntryName string         // default "main"
	Filename  string         // used to tag token/AST positions
}

// Result holds whichever artifacts Translate produced before stopping at
// the requested stage. Only the fields relevant to Options.Stage are set.
type Result struct {
	Tokens    []lexer.Token
	AST       *ast.Program
	IR        *ir.Program
	Entry     *ir.FunctionRef // the declaration named by Options.EntryName, if found
	PrintedIR string
	Errored   bool
}

// findEntry locates the top-level function declared under name, for
// interpreter/codegen entry-point selection (spec option "entry-name").
func findEntry(prog *ir.Program, name string) *ir.FunctionRef {
	for _, instr := range prog.Block.Instrs {
		d, ok := instr.(*ir.Declare)
		if !ok {
			continue
		}
		if fn, ok := d.Ref.(*ir.FunctionRef); ok && fn.Name() == name {
			return fn
		}
	}
	return nil
}

func (o Options) filename() string {
	if o.Filename == "" {
		return "<input>"
	}
	return o.Filename
}

func (o Options) entryName() string {
	if o.EntryName == "" {
		return "main"
	}
	return o.EntryName
}

// Translate runs source through as many pipeline stages as Options.Stage
// requests, short-circuiting as soon as any stage reports an error.
func Translate(source string, opts Options) Result {
	var res Result
	errored := false
	sink := func(msg string) {
		errored = true
		if opts.ErrorSink != nil {
			opts.ErrorSink(msg)
		}
	}

	lx := lexer.New(source, opts.filename(), sink)
	tokens := lx.Tokenize()
	res.Tokens = tokens
	if opts.Stage == StageTokenise || errored {
		res.Errored = errored
		return res
	}

	p := parser.New(tokens, sink)
	program := p.ParseProgram()
	res.AST = program
	if opts.Stage == StageParse || errored {
		res.Errored = errored
		return res
	}

	l := lower.New(sink)
	irProg := l.Lower(program)
	res.IR = irProg
	res.Entry = findEntry(irProg, opts.entryName())
	if opts.Stage == StageMakeIR || errored {
		res.Errored = errored
		if opts.Stage == StageMakeIR {
			res.PrintedIR = ir.NewPrinter(opts.Test).Print(irProg)
		}
		return res
	}

	c := check.New(sink)
	c.Check(irProg)
	res.Errored = errored || c.Errored()
	res.PrintedIR = ir.NewPrinter(opts.Test).Print(irProg)
	return res
}
