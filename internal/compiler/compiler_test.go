package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateTokeniseStage(t *testing.T) {
	res := Translate("fn main() {}\n", Options{Stage: StageTokenise})
	require.False(t, res.Errored)
	assert.NotEmpty(t, res.Tokens)
	assert.Nil(t, res.AST)
}

func TestTranslateParseStage(t *testing.T) {
	res := Translate("fn main() {}\n", Options{Stage: StageParse})
	require.False(t, res.Errored)
	require.NotNil(t, res.AST)
	assert.Len(t, res.AST.Decls, 1)
}

func TestTranslateMakeIRStageProducesDeterministicIDs(t *testing.T) {
	res := Translate("fn main() {}\n", Options{Stage: StageMakeIR, Test: true})
	require.False(t, res.Errored)
	require.NotNil(t, res.IR)
	assert.Contains(t, res.PrintedIR, "1:")
	require.NotNil(t, res.Entry)
	assert.Equal(t, "main", res.Entry.Name())
}

func TestTranslateTypecheckStageResolvesTypes(t *testing.T) {
	res := Translate("fn main() { var a = 5; }\n", Options{Stage: StageTypecheck, Test: true})
	require.False(t, res.Errored)
	assert.Contains(t, res.PrintedIR, "DECLARE")
}

func TestTranslateCollectsErrorsViaSink(t *testing.T) {
	var msgs []string
	res := Translate("fn main() { x = 1; }\n", Options{
		Stage:     StageTypecheck,
		ErrorSink: func(msg string) { msgs = append(msgs, msg) },
	})
	assert.True(t, res.Errored)
	assert.NotEmpty(t, msgs)
}

func TestTranslateStopsAtFirstErroredStage(t *testing.T) {
	res := Translate("fn main( {}\n", Options{Stage: StageTypecheck})
	assert.True(t, res.Errored)
	assert.Nil(t, res.IR)
}

func TestTranslateCustomEntryName(t *testing.T) {
	res := Translate("fn run() {}\n", Options{Stage: StageMakeIR, EntryName: "run"})
	require.False(t, res.Errored)
	require.NotNil(t, res.Entry)
	assert.Equal(t, "run", res.Entry.Name())
}
