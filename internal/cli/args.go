package cli

import "fmt"

// ArgsFunc validates the positional arguments left after flag parsing.
type ArgsFunc func(args []string) error

// NoArgs rejects any positional argument.
func NoArgs(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	return nil
}

// ExactArgs requires exactly n positional arguments.
func ExactArgs(n int) ArgsFunc {
	return func(args []string) error {
		if len(args) != n {
			return fmt.Errorf("accepts %d arg(s), received %d", n, len(args))
		}
		return nil
	}
}

// RangeArgs requires between lo and hi positional arguments, inclusive.
func RangeArgs(lo, hi int) ArgsFunc {
	return func(args []string) error {
		if len(args) < lo || len(args) > hi {
			return fmt.Errorf("accepts between %d and %d arg(s), received %d", lo, hi, len(args))
		}
		return nil
	}
}
