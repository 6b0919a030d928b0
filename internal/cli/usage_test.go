package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{
			name:     "simple wrap",
			text:     "hello world",
			width:    5,
			expected: []string{"hello", "world"},
		},
		{
			name:     "no wrap needed",
			text:     "hello",
			width:    10,
			expected: []string{"hello"},
		},
		{
			name:     "multiple wraps",
			text:     "this is a long text that needs wrapping",
			width:    10,
			expected: []string{"this is a", "long text", "that needs", "wrapping"},
		},
		{
			name:     "empty string",
			text:     "",
			width:    10,
			expected: nil,
		},
		{
			name:     "single word longer than width",
			text:     "supercalifragilistic",
			width:    10,
			expected: []string{"supercalifragilistic"},
		},
		{
			name:     "multiple spaces",
			text:     "hello    world",
			width:    20,
			expected: []string{"hello world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := wrapText(tt.text, tt.width)
			assert.EqualValues(t, tt.expected, result, "wrapped text mismatch for input %q with width %d", tt.text, tt.width)
		})
	}
}

func TestDefaultUsage(t *testing.T) {
	t.Parallel()

	s := newTestState()
	s.table.ShortHelp = "Print a truth table"
	s.eval.ShortHelp = "Evaluate an operator"
	require.NoError(t, Parse(s.root, []string{"table", "and"}))

	usage := DefaultUsage(s.table)
	want := "Print a truth table\n" +
		"\n" +
		"Usage:\n" +
		"  calc table [flags]\n" +
		"\n" +
		"Flags:\n" +
		"  -format    output format (default text)\n" +
		"\n" +
		"Global Flags:\n" +
		"  -verbose    enable verbose mode"
	assert.Equal(t, want, usage)

	rootUsage := DefaultUsage(s.root)
	assert.Contains(t, rootUsage, "Available Commands:\n  eval     Evaluate an operator\n  table    Print a truth table\n")
	assert.Contains(t, rootUsage, `Use "calc [command] --help" for more information about a command.`)

	assert.Empty(t, DefaultUsage(nil))
}
