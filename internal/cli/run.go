package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// ParseAndRun combines [Parse] and [Run]. When help is requested the selected command's usage is
// written to stdout and [flag.ErrHelp] is returned.
func ParseAndRun(
	ctx context.Context,
	root *Command,
	args []string,
	options *RunOptions,
) error {
	if err := Parse(root, args); err != nil {
		if errors.Is(err, flag.ErrHelp) && root != nil && root.selected != nil {
			options = checkAndSetRunOptions(options)
			fmt.Fprintln(options.Stdout, usageOf(root.selected))
		}
		return err
	}
	return Run(ctx, root, options)
}

// RunOptions specifies options for running a command.
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard streams for the command. Nil streams default to
	// [os.Stdin], [os.Stdout] and [os.Stderr].
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run executes the command selected by [Parse]. Positional arguments are validated first; a
// validation failure, or an [*Error] with code [ErrShowHelp] from Exec, also prints the command's
// usage to stderr.
//
// The options parameter may be nil, in which case default values are used.
func Run(ctx context.Context, root *Command, options *RunOptions) error {
	if root == nil || root.selected == nil {
		return errors.New("command has not been parsed")
	}
	options = checkAndSetRunOptions(options)
	cmd := root.selected
	cmd.state.Stdin = options.Stdin
	cmd.state.Stdout = options.Stdout
	cmd.state.Stderr = options.Stderr

	if cmd.Exec == nil {
		fmt.Fprintln(cmd.state.Stderr, usageOf(cmd))
		return NewError(ErrShowHelp, fmt.Errorf("command %q requires a subcommand", cmd.path()))
	}
	if cmd.Args != nil {
		if err := cmd.Args(cmd.state.Args); err != nil {
			fmt.Fprintln(cmd.state.Stderr, usageOf(cmd))
			return NewError(ErrShowHelp, fmt.Errorf("command %q: %w", cmd.path(), err))
		}
	}
	if err := cmd.Exec(ctx, cmd.state); err != nil {
		if cliErr := (*Error)(nil); errors.As(err, &cliErr) && cliErr.Code() == ErrShowHelp {
			fmt.Fprintln(cmd.state.Stderr, usageOf(cmd))
		}
		return err
	}
	return nil
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
