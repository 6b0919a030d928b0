package cli

import (
	"flag"
	"fmt"
	"io"
)

// State is handed to a command's Exec. It links to the parent command's state so children can read
// flags defined higher up the tree with [GetFlag].
type State struct {
	// Args contains the positional arguments after flag parsing.
	Args []string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	commandPath []*Command
	flags       *flag.FlagSet
	parent      *State
}

func (s *State) commandName() string {
	if len(s.commandPath) > 0 {
		return s.commandPath[len(s.commandPath)-1].Name
	}
	if s.flags != nil {
		return s.flags.Name()
	}
	return ""
}

// GetFlag retrieves a flag value by name, walking up to parent commands if the current command
// does not define it:
//
//	verbose := cli.GetFlag[bool](s, "verbose")
//	format := cli.GetFlag[string](s, "format")
//
// A missing flag or a type mismatch is a programming error and panics.
func GetFlag[T any](s *State, name string) T {
	if s.flags != nil {
		if f := s.flags.Lookup(name); f != nil {
			if getter, ok := f.Value.(flag.Getter); ok {
				value := getter.Get()
				if v, ok := value.(T); ok {
					return v
				}
				panic(fmt.Errorf("internal error: type mismatch for flag %q in command %q: registered %T, requested %T",
					"-"+name, s.commandName(), value, *new(T)))
			}
		}
	}
	if s.parent != nil {
		return GetFlag[T](s.parent, name)
	}
	panic(fmt.Errorf("internal error: flag %q not found in command %q flag set", "-"+name, s.commandName()))
}
