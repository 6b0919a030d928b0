// Command boolalg evaluates Boolean operators and prints their truth tables.
//
//	boolalg eval <operator> <A> [B]
//	boolalg table <operator> [-format text|json|yaml]
//	boolalg all-tables [-format text|json|yaml]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mfridman/boolalg/internal/cli"
	"github.com/mfridman/boolalg/internal/logger"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger.SetOutput(stderr)
	err := cli.ParseAndRun(ctx, newRootCommand(), args, &cli.RunOptions{
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
