package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mfridman/xflag"
)

// Parse resolves the command selected by args, typically os.Args[1:], and parses its flags. Flags
// of every command on the path are accepted anywhere on the line; everything after a "--"
// delimiter is passed through as positional arguments.
//
// A help flag (-h, -help, --help) returns [flag.ErrHelp]. Once Parse succeeds the root command is
// ready for [Run].
func Parse(root *Command, args []string) error {
	if root == nil {
		return errors.New("failed to parse: root command is nil")
	}
	if err := validateCommands(root, nil); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	if root.Flags == nil {
		root.Flags = flag.NewFlagSet(root.Name, flag.ContinueOnError)
	}
	root.state = &State{
		flags:       root.Flags,
		commandPath: []*Command{root},
	}
	root.selected = nil

	argsToParse, passthrough := splitDelimiter(args)

	// First pass resolves the command chain so help requests are seen before any flag error.
	current := root
	chain := []*Command{root}
	for _, arg := range argsToParse {
		if isHelpFlag(arg) {
			root.selected = current
			return flag.ErrHelp
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if len(current.SubCommands) == 0 {
			break
		}
		sub := current.findSubCommand(arg)
		if sub == nil {
			return current.formatUnknownCommandError(arg)
		}
		if sub.Flags == nil {
			sub.Flags = flag.NewFlagSet(sub.Name, flag.ContinueOnError)
		}
		chain = append(chain, sub)
		sub.state = &State{
			flags:       sub.Flags,
			parent:      current.state,
			commandPath: slices.Clone(chain),
		}
		current = sub
	}
	root.selected = current

	if current.Exec == nil && len(current.SubCommands) == 0 {
		return &NoExecError{Command: current}
	}

	// Child flags take precedence over parent flags of the same name.
	combined := flag.NewFlagSet(root.Name, flag.ContinueOnError)
	combined.SetOutput(io.Discard)
	for i := len(chain) - 1; i >= 0; i-- {
		chain[i].Flags.VisitAll(func(f *flag.Flag) {
			if combined.Lookup(f.Name) == nil {
				combined.Var(f.Value, f.Name, f.Usage)
			}
		})
	}
	if err := xflag.ParseToEnd(combined, argsToParse); err != nil {
		return fmt.Errorf("command %q: %w", current.Name, err)
	}

	// The leading positional arguments are the subcommand names consumed above.
	positional := combined.Args()
	if skip := len(chain) - 1; skip <= len(positional) {
		positional = positional[skip:]
	}
	var finalArgs []string
	finalArgs = append(finalArgs, positional...)
	finalArgs = append(finalArgs, passthrough...)
	current.state.Args = finalArgs
	return nil
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "-h", "--h", "-help", "--help":
		return true
	}
	return false
}

// splitDelimiter splits args at the first "--". The delimiter itself is dropped.
func splitDelimiter(args []string) (before, after []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func validateCommands(root *Command, path []string) error {
	if root.Name == "" {
		if len(path) == 0 {
			return errors.New("root command has no name")
		}
		return fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " "))
	}
	if strings.ContainsAny(root.Name, " \t") {
		return fmt.Errorf("command name %q contains spaces", root.Name)
	}
	currentPath := append(slices.Clone(path), root.Name)
	for _, sub := range root.SubCommands {
		if err := validateCommands(sub, currentPath); err != nil {
			return err
		}
	}
	return nil
}
