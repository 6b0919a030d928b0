package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/mfridman/boolalg"
	"github.com/mfridman/boolalg/internal/cli"
	"github.com/mfridman/boolalg/internal/logger"
	"github.com/mfridman/boolalg/internal/render"
)

var operatorList = strings.Join(boolalg.OperatorTokens(), ", ")

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:      "boolalg",
		Usage:     "boolalg [flags] <command>",
		ShortHelp: "Boolean algebra CLI: evaluate operators and print truth tables.",
		Flags: cli.FlagsFunc(func(f *flag.FlagSet) {
			f.Bool("verbose", false, "log debug information to stderr")
		}),
		SubCommands: []*cli.Command{
			newEvalCommand(),
			newTableCommand(),
			newAllTablesCommand(),
		},
	}
}

func newEvalCommand() *cli.Command {
	return &cli.Command{
		Name:  "eval",
		Usage: "boolalg eval <operator> <A> [B]",
		ShortHelp: "Evaluate an operation and print 0 or 1. B is required for every operator except " +
			"not. Operators: " + operatorList + ". Values: 1/t/true/y/yes or 0/f/false/n/no.",
		Args: cli.RangeArgs(2, 3),
		Exec: withLogging(execEval),
	}
}

func newTableCommand() *cli.Command {
	return &cli.Command{
		Name:      "table",
		Usage:     "boolalg table <operator> [flags]",
		ShortHelp: "Print the truth table for one operation. Operators: " + operatorList + ".",
		Flags:     formatFlags(),
		Args:      cli.ExactArgs(1),
		Exec:      withLogging(execTable),
	}
}

func newAllTablesCommand() *cli.Command {
	return &cli.Command{
		Name:      "all-tables",
		Usage:     "boolalg all-tables [flags]",
		ShortHelp: "Print truth tables for all operations.",
		Flags:     formatFlags(),
		Args:      cli.NoArgs,
		Exec:      withLogging(execAllTables),
	}
}

func formatFlags() *flag.FlagSet {
	return cli.FlagsFunc(func(f *flag.FlagSet) {
		f.String("format", string(render.Text), "output format: text, json or yaml")
	})
}

func withLogging(exec func(context.Context, *cli.State) error) func(context.Context, *cli.State) error {
	return func(ctx context.Context, s *cli.State) error {
		logger.SetVerbose(cli.GetFlag[bool](s, "verbose"))
		return exec(ctx, s)
	}
}

func execEval(ctx context.Context, s *cli.State) error {
	op, err := boolalg.ParseOperator(s.Args[0])
	if err != nil {
		return err
	}
	a, err := boolalg.ParseValue(s.Args[1])
	if err != nil {
		return fmt.Errorf("operand A: %w", err)
	}
	// NOT takes a single operand; a supplied B is ignored without being parsed.
	var b *bool
	bText := "-"
	if op.Arity() == 2 && len(s.Args) > 2 {
		v, err := boolalg.ParseValue(s.Args[2])
		if err != nil {
			return fmt.Errorf("operand B: %w", err)
		}
		b = &v
		bText = boolalg.FormatValue(v)
	}
	logger.Debug(ctx, "evaluating", "operator", op, "a", boolalg.FormatValue(a), "b", bText)

	result, err := boolalg.Apply(op, a, b)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "evaluated", "operator", op, "result", boolalg.FormatValue(result))
	_, err = fmt.Fprintln(s.Stdout, boolalg.FormatValue(result))
	return err
}

func execTable(ctx context.Context, s *cli.State) error {
	op, err := boolalg.ParseOperator(s.Args[0])
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(cli.GetFlag[string](s, "format"))
	if err != nil {
		return err
	}
	table, err := boolalg.NewTable(op)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "rendering table", "operator", op, "format", format, "rows", len(table.Rows))
	return render.Table(s.Stdout, format, table)
}

func execAllTables(ctx context.Context, s *cli.State) error {
	format, err := render.ParseFormat(cli.GetFlag[string](s, "format"))
	if err != nil {
		return err
	}
	tables := boolalg.AllTables()
	logger.Debug(ctx, "rendering all tables", "count", len(tables), "format", format)
	return render.Tables(s.Stdout, format, tables)
}
