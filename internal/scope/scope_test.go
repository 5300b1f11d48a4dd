package scope

import (
	"testing"

	"github.com/hassan/langcore/internal/ir"
	"github.com/hassan/langcore/internal/lexer"
	"github.com/stretchr/testify/assert"
)

func TestDeclareAndLookup(t *testing.T) {
	root := New()
	x := ir.NewVariableRef("x", lexer.Position{})
	root.Declare("x", x)

	got, ok := root.Lookup("x")
	assert.True(t, ok)
	assert.Same(t, x, got)
}

func TestLookupWalksToParent(t *testing.T) {
	root := New()
	x := ir.NewVariableRef("x", lexer.Position{})
	root.Declare("x", x)
	child := root.Child()

	got, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Same(t, x, got)

	_, ok = child.Lookup("missing")
	assert.False(t, ok)
}

func TestStrictLookupIgnoresParent(t *testing.T) {
	root := New()
	root.Declare("x", ir.NewVariableRef("x", lexer.Position{}))
	child := root.Child()

	_, ok := child.StrictLookup("x")
	assert.False(t, ok)
}

func TestChildShadowsParent(t *testing.T) {
	root := New()
	outer := ir.NewVariableRef("x", lexer.Position{})
	root.Declare("x", outer)
	child := root.Child()
	inner := ir.NewVariableRef("x", lexer.Position{})
	child.Declare("x", inner)

	got, _ := child.Lookup("x")
	assert.Same(t, inner, got)

	got, _ = root.Lookup("x")
	assert.Same(t, outer, got)
}
