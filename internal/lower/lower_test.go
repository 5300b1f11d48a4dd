package lower

import (
	"testing"

	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/parser"
	"github.com/hassan/langcore/internal/parser/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	lx := lexer.New(src, "test.lang", nil)
	tokens := lx.Tokenize()
	p := parser.New(tokens, nil)
	return p.ParseProgram()
}

func TestLowerEmptyFunction(t *testing.T) {
	prog := parseProgram(t, "fn main() {}\n")
	l := New(nil)
	program := l.Lower(prog)
	require.False(t, l.Errored())

	require.Len(t, program.Block.Instrs, 1)
	decl, ok := program.Block.Instrs[0].(*ir.Declare)
	require.True(t, ok)
	assert.Equal(t, "main", decl.Ref.Name())
	fn := decl.Ref.(*ir.FunctionRef)
	assert.Empty(t, fn.Entry.Instrs)
}

func TestLowerAssignRecordsValue(t *testing.T) {
	prog := parseProgram(t, "fn main() { var a = 5; a = a + 5; }\n")
	l := New(nil)
	program := l.Lower(prog)
	require.False(t, l.Errored())

	fn := program.Block.Instrs[0].(*ir.Declare).Ref.(*ir.FunctionRef)
	require.Len(t, fn.Entry.Instrs, 3) // DECLARE a, ASSIGN a<-5, ASSIGN a<-(a+5)
	assign := fn.Entry.Instrs[2].(*ir.Assign)
	bin, ok := assign.Val.(*ir.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestLowerWhileProducesExpectedBlockCount(t *testing.T) {
	prog := parseProgram(t, "fn main() { var x int; while x > 0 {} }\n")
	l := New(nil)
	program := l.Lower(prog)
	require.False(t, l.Errored())

	reachable := program.Reachable()
	// program root, function entry, cond, loop body, exit = 5
	assert.Len(t, reachable, 5)
}

func TestLowerStructFieldSelector(t *testing.T) {
	prog := parseProgram(t, "struct test { a int; } fn main() { var b test; var c = b.a; }\n")
	l := New(nil)
	program := l.Lower(prog)
	require.False(t, l.Errored())

	fn := program.Block.Instrs[0].(*ir.Declare).Ref.(*ir.FunctionRef)
	// DECLARE b, DECLARE c, ASSIGN c <- LOAD(FieldRef b.a)
	require.Len(t, fn.Entry.Instrs, 3)
	assignC := fn.Entry.Instrs[2].(*ir.Assign)
	load, ok := assignC.Val.(*ir.Load)
	require.True(t, ok)
	field, ok := load.Ref.(*ir.FieldRef)
	require.True(t, ok)
	assert.Equal(t, "a", field.Name())
}

func TestLowerIfWithoutElseMerges(t *testing.T) {
	prog := parseProgram(t, "fn main() { if true return 0; }\n")
	l := New(nil)
	program := l.Lower(prog)
	require.False(t, l.Errored())

	reachable := program.Reachable()
	// program root, function entry, then-block, merge = 4
	assert.Len(t, reachable, 4)
}

func TestLowerUndeclaredNameReportsError(t *testing.T) {
	prog := parseProgram(t, "fn main() { x = 1; }\n")
	var msgs []string
	l := New(func(msg string) { msgs = append(msgs, msg) })
	l.Lower(prog)
	assert.True(t, l.Errored())
	assert.NotEmpty(t, msgs)
}
