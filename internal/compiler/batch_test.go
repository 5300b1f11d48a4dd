package compiler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateAllCompilesIndependently(t *testing.T) {
	sources := []string{
		"fn main() { var a = 1; }\n",
		"fn main() { var b = 2.0; }\n",
		"fn main() { x = 1; }\n", // undeclared name, should error in isolation
	}
	results, err := TranslateAll(context.Background(), sources, Options{Stage: StageTypecheck})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.False(t, results[0].Errored)
	assert.False(t, results[1].Errored)
	assert.True(t, results[2].Errored)
}
