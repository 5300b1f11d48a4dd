package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_String(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{
			name:     "valid position",
			pos:      Position{Filename: "test.go", Line: 42, Column: 15, Offset: 100},
			expected: "test.go:42:15",
		},
		{
			name:     "zero position",
			pos:      Position{},
			expected: ":0:0",
		},
		{
			name:     "line 1 column 1",
			pos:      Position{Filename: "main.go", Line: 1, Column: 1},
			expected: "main.go:1:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pos.String())
		})
	}
}

func TestPosition_IsValid(t *testing.T) {
	assert.True(t, Position{Filename: "test.go", Line: 1, Column: 1}.IsValid())
	assert.False(t, Position{Filename: "test.go", Line: 0, Column: 1}.IsValid())
	assert.False(t, Position{Filename: "test.go", Line: -1, Column: 1}.IsValid())
}

func TestPosition_BeforeAfter(t *testing.T) {
	a := Position{Offset: 10}
	b := Position{Offset: 20}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))

	assert.True(t, b.After(a))
	assert.False(t, a.After(b))
	assert.False(t, a.After(a))
}

func TestItoa(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{42, "42"},
		{-10, "-10"},
		{123456, "123456"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, itoa(tt.input))
	}
}

func TestSpan_String(t *testing.T) {
	single := Span{
		Start: Position{Filename: "test.go", Line: 42, Column: 15},
		End:   Position{Filename: "test.go", Line: 42, Column: 23},
	}
	assert.Equal(t, "test.go:42:15-23", single.String())

	multi := Span{
		Start: Position{Filename: "test.go", Line: 42, Column: 15},
		End:   Position{Filename: "test.go", Line: 44, Column: 10},
	}
	assert.Equal(t, "test.go:42:15-44:10", multi.String())
}

func TestSpan_IsValid(t *testing.T) {
	assert.True(t, Span{
		Start: Position{Line: 1, Column: 1, Offset: 0},
		End:   Position{Line: 1, Column: 10, Offset: 9},
	}.IsValid())

	assert.False(t, Span{
		Start: Position{Line: 0, Column: 1, Offset: 0},
		End:   Position{Line: 1, Column: 10, Offset: 9},
	}.IsValid())

	assert.False(t, Span{
		Start: Position{Line: 1, Column: 10, Offset: 9},
		End:   Position{Line: 1, Column: 1, Offset: 0},
	}.IsValid())
}

func TestSpan_Contains(t *testing.T) {
	span := Span{
		Start: Position{Line: 1, Column: 5, Offset: 4},
		End:   Position{Line: 1, Column: 10, Offset: 9},
	}

	assert.True(t, span.Contains(Position{Line: 1, Column: 5, Offset: 4}))
	assert.True(t, span.Contains(Position{Line: 1, Column: 7, Offset: 6}))
	assert.True(t, span.Contains(Position{Line: 1, Column: 10, Offset: 9}))
	assert.False(t, span.Contains(Position{Line: 1, Column: 3, Offset: 2}))
	assert.False(t, span.Contains(Position{Line: 1, Column: 15, Offset: 14}))
}

func TestSpan_Length(t *testing.T) {
	assert.Equal(t, 10, Span{Start: Position{Line: 1, Offset: 10}, End: Position{Line: 1, Offset: 20}}.Length())
	assert.Equal(t, 0, Span{Start: Position{Offset: 10}, End: Position{Offset: 10}}.Length())
	assert.Equal(t, 0, Span{Start: Position{Line: 1, Offset: 20}, End: Position{Line: 0, Offset: 10}}.Length())
}
