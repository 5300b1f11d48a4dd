package builtin

import (
	"testing"

	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootDeclaresPrimitives(t *testing.T) {
	root := Root()
	ref, ok := root.Lookup("int")
	require.True(t, ok)
	assert.Equal(t, types.IntType, ref.Type())
}

func TestRootDeclaresRangeConstructor(t *testing.T) {
	root := Root()
	ref, ok := root.Lookup(RangeName)
	require.True(t, ok)
	fn, ok := ref.(*ir.FunctionRef)
	require.True(t, ok)
	assert.Len(t, fn.Params, 2)
	sig := fn.Type().(*types.Function)
	assert.Equal(t, types.IntType, sig.Params[0])
	seq := sig.Return.(*types.Sequence)
	assert.Equal(t, types.Array, seq.SeqKind)
}

func TestRootInstancesAreIndependent(t *testing.T) {
	a := Root()
	b := Root()
	refA, _ := a.Lookup("int")
	refB, _ := b.Lookup("int")
	assert.NotSame(t, refA, refB)
}
