package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/mfridman/boolalg/pkg/suggest"
)

// NoExecError is returned when the selected command has no execution function.
type NoExecError struct {
	Command *Command
}

func (e *NoExecError) Error() string {
	return fmt.Sprintf("command %q has no execution function", e.Command.path())
}

// Command is a node in the command tree.
type Command struct {
	// Name is a single word identifying the command on the command line.
	Name string

	// Usage is the full usage pattern shown in help, e.g. "boolalg eval <operator> <A> [B]". When
	// empty a pattern is derived from the command path.
	Usage string

	// ShortHelp is a one-line description shown in help and in the parent's command list.
	ShortHelp string

	// UsageFunc, if set, replaces [DefaultUsage] for this command.
	UsageFunc func(*Command) string

	// Flags holds the command's flag definitions. Flags of parent commands are visible to
	// children, see [GetFlag].
	Flags *flag.FlagSet

	// Args validates the positional arguments before Exec is called. Nil accepts anything.
	Args ArgsFunc

	// SubCommands are the commands nested under this one.
	SubCommands []*Command

	// Exec runs the command. It may be nil only for commands that have subcommands.
	Exec func(ctx context.Context, s *State) error

	state    *State
	selected *Command
}

// FlagsFunc creates a new [flag.FlagSet] and applies fn to it:
//
//	cmd.Flags = cli.FlagsFunc(func(f *flag.FlagSet) {
//	    f.String("format", "text", "output format")
//	})
func FlagsFunc(fn func(*flag.FlagSet)) *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fn(fset)
	return fset
}

func (c *Command) findSubCommand(name string) *Command {
	for _, sub := range c.SubCommands {
		if strings.EqualFold(sub.Name, name) {
			return sub
		}
	}
	return nil
}

func (c *Command) formatUnknownCommandError(unknownCmd string) error {
	known := make([]string, 0, len(c.SubCommands))
	for _, sub := range c.SubCommands {
		known = append(known, sub.Name)
	}
	if suggestions := suggest.FindSimilar(unknownCmd, known, 3); len(suggestions) > 0 {
		return fmt.Errorf("unknown command %q. Did you mean one of these?\n\t%s",
			unknownCmd,
			strings.Join(suggestions, "\n\t"))
	}
	return fmt.Errorf("unknown command %q", unknownCmd)
}

// path returns the space-separated command path, e.g. "boolalg table". Before parsing it is just
// the command name.
func (c *Command) path() string {
	if c.state == nil || len(c.state.commandPath) == 0 {
		return c.Name
	}
	names := make([]string, 0, len(c.state.commandPath))
	for _, cmd := range c.state.commandPath {
		names = append(names, cmd.Name)
	}
	return strings.Join(names, " ")
}
