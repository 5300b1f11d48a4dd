package ir

import (
	"testing"

	"github.com/hassan/langcore/internal/lexer"
	"github.com/hassan/langcore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterEmptyFunctionDecl(t *testing.T) {
	prog := NewProgram()
	entry := NewBlock()
	fn := NewFunctionRef("main", nil, lexer.Position{})
	fn.Entry = entry
	fn.SetType(&types.Function{Params: nil, Return: types.NoReturn})
	prog.Block.Emit(&Declare{Ref: fn})

	out := NewPrinter(true).Print(prog)
	assert.Equal(t, "1:\n DECLARE main() #2 [fn () -> nil]\n2:\n [empty]", out)
}

func TestPrinterAssignBinaryLoad(t *testing.T) {
	prog := NewProgram()
	a := NewVariableRef("a", lexer.Position{})
	a.SetType(types.IntType)
	five := &Constant{Val: 5, Typ: types.IntType}
	load := &Load{Ref: a, Typ: types.IntType}
	bin := &Binary{Op: "+", Left: load, Right: five, Typ: types.IntType}
	prog.Block.Emit(&Declare{Ref: a})
	prog.Block.Emit(&Assign{Target: a, Val: bin})

	out := NewPrinter(true).Print(prog)
	want := "1:\n DECLARE a [int]\n ASSIGN a [int] <- (LOAD(a [int]) [int] + 5 [int]) [int]"
	assert.Equal(t, want, out)
}

func TestPrinterBranchAndCBranch(t *testing.T) {
	prog := NewProgram()
	thenB := NewBlock()
	elseB := NewBlock()
	cond := &Constant{Val: true, Typ: types.BoolType}
	prog.Block.Emit(&CBranch{Cond: cond, True: thenB, False: elseB})
	prog.Block.AddDep(thenB)
	prog.Block.AddDep(elseB)
	thenB.Emit(&Branch{Target: elseB})
	elseB.Emit(&Return{})

	out := NewPrinter(true).Print(prog)
	want := "1:\n CBRANCH true [bool] #2 #3\n2:\n BRANCH #3\n3:\n RETURN"
	assert.Equal(t, want, out)
}

func TestPrinterOmitsUnknownTypeSuffix(t *testing.T) {
	prog := NewProgram()
	v := NewVariableRef("x", lexer.Position{})
	prog.Block.Emit(&Declare{Ref: v})
	out := NewPrinter(true).Print(prog)
	assert.Equal(t, "1:\n DECLARE x", out)
}

func TestProgramVerifyDetectsUnterminatedBlock(t *testing.T) {
	prog := NewProgram()
	b := NewBlock()
	prog.Block.AddDep(b)
	b.Emit(&Assign{Target: NewVariableRef("x", lexer.Position{}), Val: &Constant{Val: 1, Typ: types.IntType}})

	errs := prog.Verify()
	require.Len(t, errs, 1)
}

func TestProgramVerifyAcceptsWellFormedCFG(t *testing.T) {
	prog := NewProgram()
	b := NewBlock()
	prog.Block.AddDep(b)
	prog.Block.Emit(&Branch{Target: b})
	b.Emit(&Return{})

	assert.Empty(t, prog.Verify())
}

func TestReachableFollowsFunctionEntry(t *testing.T) {
	prog := NewProgram()
	entry := NewBlock()
	fn := NewFunctionRef("f", nil, lexer.Position{})
	fn.Entry = entry
	prog.Block.Emit(&Declare{Ref: fn})

	reachable := prog.Reachable()
	assert.Contains(t, reachable, entry)
}
