package check

import (
	"testing"

	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/lower"
	"github.com/hassan/langcore/internal/parser"
	"github.com/hassan/langcore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lowerProgram(t *testing.T, src string) *ir.Program {
	t.Helper()
	lx := lexer.New(src, "test.lang", nil)
	tokens := lx.Tokenize()
	p := parser.New(tokens, nil)
	ast := p.ParseProgram()
	l := lower.New(nil)
	prog := l.Lower(ast)
	require.False(t, l.Errored())
	return prog
}

func mainFunc(prog *ir.Program) *ir.FunctionRef {
	return prog.Block.Instrs[0].(*ir.Declare).Ref.(*ir.FunctionRef)
}

func TestCheckInfersVarFromLiteral(t *testing.T) {
	prog := lowerProgram(t, "fn main() { var a = 5; }\n")
	c := New(nil)
	c.Check(prog)
	require.False(t, c.Errored())

	fn := mainFunc(prog)
	assign := fn.Entry.Instrs[1].(*ir.Assign)
	assert.True(t, types.IsInt(assign.Target.Type()))
}

func TestCheckBinaryWidensToFloat(t *testing.T) {
	prog := lowerProgram(t, "fn main() { var a = 1; var b = 2.0; var c = a + b; }\n")
	c := New(nil)
	c.Check(prog)
	require.False(t, c.Errored())

	fn := mainFunc(prog)
	assignC := fn.Entry.Instrs[len(fn.Entry.Instrs)-1].(*ir.Assign)
	assert.Equal(t, types.FloatType, assignC.Target.Type())
}

func TestCheckDivisionAlwaysFloat(t *testing.T) {
	prog := lowerProgram(t, "fn main() { var a = 4; var b = 2; var c = a / b; }\n")
	c := New(nil)
	c.Check(prog)
	require.False(t, c.Errored())

	fn := mainFunc(prog)
	assignC := fn.Entry.Instrs[len(fn.Entry.Instrs)-1].(*ir.Assign)
	assert.Equal(t, types.FloatType, assignC.Target.Type())
}

func TestCheckComparisonProducesBool(t *testing.T) {
	prog := lowerProgram(t, "fn main() { var a = 1; var b = a > 0; }\n")
	c := New(nil)
	c.Check(prog)
	require.False(t, c.Errored())

	fn := mainFunc(prog)
	assignB := fn.Entry.Instrs[len(fn.Entry.Instrs)-1].(*ir.Assign)
	assert.Equal(t, types.BoolType, assignB.Target.Type())
}

func TestCheckFunctionParamsInferredFromCallSite(t *testing.T) {
	prog := lowerProgram(t, "fn add(x, y) { return x + y; } fn main() { var r = add(1, 2); }\n")
	c := New(nil)
	c.Check(prog)
	require.False(t, c.Errored())

	add := prog.Block.Instrs[0].(*ir.Declare).Ref.(*ir.FunctionRef)
	sig := add.Type().(*types.Function)
	assert.True(t, types.IsInt(sig.Params[0]))
	assert.True(t, types.IsInt(sig.Params[1]))
	assert.True(t, sig.Return.Known())
}

func TestCheckUndeclaredFieldErrors(t *testing.T) {
	prog := lowerProgram(t, "struct point { x int; y int; } fn main() { var p point; var z = p.missing; }\n")
	var msgs []string
	c := New(func(msg string) { msgs = append(msgs, msg) })
	c.Check(prog)
	assert.True(t, c.Errored())
	assert.NotEmpty(t, msgs)
}

func TestCheckImplConformanceMismatchErrors(t *testing.T) {
	src := `
interface shape {
	area() float;
}
struct square {
	side float;
}
impl shape for square {
	fn area() int { return 1; }
}
fn main() {}
`
	prog := lowerProgram(t, src)
	var msgs []string
	c := New(func(msg string) { msgs = append(msgs, msg) })
	c.Check(prog)
	assert.True(t, c.Errored())
	assert.NotEmpty(t, msgs)
}

func TestCheckImplConformanceMatchSucceeds(t *testing.T) {
	src := `
interface shape {
	area() float;
}
struct square {
	side float;
}
impl shape for square {
	fn area() float { return self.side; }
}
fn main() {}
`
	prog := lowerProgram(t, src)
	c := New(nil)
	c.Check(prog)
	assert.False(t, c.Errored())
}

func TestCheckWhileConditionMustBeBool(t *testing.T) {
	prog := lowerProgram(t, "fn main() { var x = 1; while x {} }\n")
	var msgs []string
	c := New(func(msg string) { msgs = append(msgs, msg) })
	c.Check(prog)
	assert.True(t, c.Errored())
	assert.NotEmpty(t, msgs)
}
