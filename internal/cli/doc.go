// Package cli is the subcommand dispatcher behind the boolalg binary. It resolves a command from
// the argument list, parses flags that may appear anywhere on the line, validates positional
// arguments and runs the selected command with injectable standard streams.
package cli
