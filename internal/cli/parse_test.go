package cli

import (
	"context"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testState holds a small command tree:
//
//	calc --verbose
//	├── eval --strict
//	└── table --format
type testState struct {
	root, eval, table *Command
}

func newTestState() testState {
	exec := func(ctx context.Context, s *State) error { return errors.New("not implemented") }
	eval := &Command{
		Name: "eval",
		Flags: FlagsFunc(func(fset *flag.FlagSet) {
			fset.Bool("strict", false, "reject extra operands")
		}),
		Args: RangeArgs(2, 3),
		Exec: exec,
	}
	table := &Command{
		Name: "table",
		Flags: FlagsFunc(func(fset *flag.FlagSet) {
			fset.String("format", "text", "output format")
		}),
		Args: ExactArgs(1),
		Exec: exec,
	}
	root := &Command{
		Name: "calc",
		Flags: FlagsFunc(func(fset *flag.FlagSet) {
			fset.Bool("verbose", false, "enable verbose mode")
		}),
		SubCommands: []*Command{eval, table},
	}
	return testState{root: root, eval: eval, table: table}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parsing errors", func(t *testing.T) {
		t.Parallel()

		err := Parse(nil, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "command is nil")

		err = Parse(&Command{}, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "root command has no name")

		err = Parse(&Command{Name: "root", SubCommands: []*Command{{}}}, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), `subcommand in path "root" has no name`)

		err = Parse(&Command{Name: "two words"}, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "contains spaces")
	})
	t.Run("error on parse with no exec", func(t *testing.T) {
		t.Parallel()
		cmd := &Command{
			Name: "foo",
			Exec: func(ctx context.Context, s *State) error { return nil },
			SubCommands: []*Command{
				{Name: "bar"},
			},
		}
		err := Parse(cmd, []string{"bar"})
		require.Error(t, err)
		var noExecErr *NoExecError
		require.ErrorAs(t, err, &noExecErr)
		assert.ErrorContains(t, err, `command "foo bar" has no execution function`)
	})
	t.Run("selects subcommand and positional args", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		err := Parse(s.root, []string{"eval", "and", "1", "0"})
		require.NoError(t, err)
		require.Equal(t, s.eval, s.root.selected)
		assert.Equal(t, []string{"and", "1", "0"}, s.eval.state.Args)
	})
	t.Run("subcommand is case insensitive", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		err := Parse(s.root, []string{"TABLE", "xor"})
		require.NoError(t, err)
		require.Equal(t, s.table, s.root.selected)
		assert.Equal(t, []string{"xor"}, s.table.state.Args)
	})
	t.Run("flags anywhere", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		err := Parse(s.root, []string{"table", "nand", "-format", "json", "--verbose"})
		require.NoError(t, err)
		assert.Equal(t, []string{"nand"}, s.table.state.Args)
		assert.Equal(t, "json", GetFlag[string](s.table.state, "format"))
		assert.True(t, GetFlag[bool](s.table.state, "verbose"))
	})
	t.Run("delimiter passes args through", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		err := Parse(s.root, []string{"eval", "--", "-strict", "1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"-strict", "1"}, s.eval.state.Args)
		assert.False(t, GetFlag[bool](s.eval.state, "strict"))
	})
	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		err := Parse(s.root, []string{"eval", "-bogus", "and", "1", "1"})
		require.Error(t, err)
		assert.ErrorContains(t, err, `command "eval"`)
		assert.ErrorContains(t, err, "bogus")
	})
	t.Run("help flag", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		err := Parse(s.root, []string{"table", "--help"})
		require.ErrorIs(t, err, flag.ErrHelp)
		assert.Equal(t, s.table, s.root.selected)
	})
	t.Run("unknown command with suggestion", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		err := Parse(s.root, []string{"tabel"})
		require.Error(t, err)
		assert.ErrorContains(t, err, `unknown command "tabel". Did you mean one of these?`)
		assert.ErrorContains(t, err, "\ttable")
	})
	t.Run("unknown command without suggestion", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		err := Parse(s.root, []string{"zzzzzz"})
		require.Error(t, err)
		assert.Equal(t, `unknown command "zzzzzz"`, err.Error())
	})
	t.Run("reparse resets state", func(t *testing.T) {
		t.Parallel()
		s := newTestState()
		require.NoError(t, Parse(s.root, []string{"eval", "or", "1", "0"}))
		require.NoError(t, Parse(s.root, []string{"table", "or"}))
		assert.Equal(t, s.table, s.root.selected)
		assert.Equal(t, []string{"or"}, s.table.state.Args)
	})
}

func TestArgs(t *testing.T) {
	t.Parallel()

	require.NoError(t, NoArgs(nil))
	require.ErrorContains(t, NoArgs([]string{"x"}), `unexpected argument "x"`)

	require.NoError(t, ExactArgs(1)([]string{"a"}))
	require.ErrorContains(t, ExactArgs(1)(nil), "accepts 1 arg(s), received 0")

	require.NoError(t, RangeArgs(2, 3)([]string{"a", "b"}))
	require.NoError(t, RangeArgs(2, 3)([]string{"a", "b", "c"}))
	require.ErrorContains(t, RangeArgs(2, 3)([]string{"a"}), "accepts between 2 and 3 arg(s), received 1")
	require.ErrorContains(t, RangeArgs(2, 3)([]string{"a", "b", "c", "d"}), "received 4")
}
